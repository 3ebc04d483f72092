package timetable

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/bell/internal/domain"
)

// ErrInvalidTimetable wraps every validation failure of a timetable document.
var ErrInvalidTimetable = errors.New("invalid timetable")

// Timetable maps weekdays to their schedules. Weekdays without an entry have
// no school.
type Timetable struct {
	days map[time.Weekday]domain.DaySchedule
}

// New builds a Timetable directly from day schedules.
func New(days map[time.Weekday]domain.DaySchedule) *Timetable {
	cp := make(map[time.Weekday]domain.DaySchedule, len(days))
	for d, s := range days {
		cp[d] = s
	}
	return &Timetable{days: cp}
}

// For returns the schedule for a weekday and whether one is configured.
func (t *Timetable) For(day time.Weekday) (domain.DaySchedule, bool) {
	s, ok := t.days[day]
	if !ok || len(s) == 0 {
		return nil, false
	}
	return s, true
}

// Days returns the configured weekdays, Monday first.
func (t *Timetable) Days() []time.Weekday {
	var out []time.Weekday
	for _, d := range domain.SchoolWeek {
		if _, ok := t.For(d); ok {
			out = append(out, d)
		}
	}
	return out
}

// Convert validates a schema and assembles it into a Timetable.
func Convert(schema *Schema) (*Timetable, error) {
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("%w:\n%w", ErrInvalidTimetable, errors.Join(errs...))
	}

	days := make(map[time.Weekday]domain.DaySchedule, len(schema.Days))
	for key, segments := range schema.Days {
		wd, _ := weekdayFromKey(key)
		blocks, err := assembleDay(segments, schema.Segments)
		if err != nil {
			return nil, fmt.Errorf("%w: days.%s: %w", ErrInvalidTimetable, key, err)
		}
		days[wd] = blocks
	}
	return &Timetable{days: days}, nil
}

// Parse decodes, validates and converts timetable YAML.
func Parse(data []byte) (*Timetable, error) {
	schema, err := DecodeSchema(data)
	if err != nil {
		return nil, err
	}
	return Convert(schema)
}

// Load reads a timetable file. An empty path yields the built-in timetable.
func Load(path string) (*Timetable, error) {
	if path == "" {
		return Default()
	}
	schema, err := LoadSchema(path)
	if err != nil {
		return nil, err
	}
	tt, err := Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tt, nil
}

// Default returns the built-in timetable.
func Default() (*Timetable, error) {
	tt, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in timetable: %w", err)
	}
	return tt, nil
}

func assembleDay(segments []string, defined map[string][]BlockSchema) (domain.DaySchedule, error) {
	var day domain.DaySchedule
	for _, seg := range segments {
		for _, bs := range defined[seg] {
			b, err := domain.ParseBlock(bs.Name, bs.Start, bs.End)
			if err != nil {
				return nil, fmt.Errorf("segment %s: %w", seg, err)
			}
			day = append(day, b)
		}
	}
	return day, nil
}

func weekdayFromKey(key string) (time.Weekday, bool) {
	for _, d := range domain.SchoolWeek {
		if strings.ToLower(d.String()) == key {
			return d, true
		}
	}
	return time.Sunday, false
}
