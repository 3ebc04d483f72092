package domain

import (
	"fmt"
	"strings"
	"time"
)

// DaySchedule is the chronologically ordered list of blocks for one weekday.
type DaySchedule []Block

// CheckOrder reports the first pair of blocks that overlap or are out of
// chronological order. Adjacent blocks may share a boundary.
func (d DaySchedule) CheckOrder() error {
	for i := 1; i < len(d); i++ {
		prev, cur := d[i-1], d[i]
		if cur.Start < prev.End {
			return fmt.Errorf("%w: %q (%s) starts before %q (%s) ends",
				ErrInvalidBlock, cur.Name, cur, prev.Name, prev)
		}
	}
	return nil
}

// SchoolWeek lists weekdays in display order, Monday first.
var SchoolWeek = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ParseWeekday accepts full ("monday") or three-letter ("mon") names in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, d := range SchoolWeek {
		name := strings.ToLower(d.String())
		if key == name || (len(key) == 3 && strings.HasPrefix(name, key)) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
