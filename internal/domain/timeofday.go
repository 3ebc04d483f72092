package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned when a time-of-day string cannot be parsed.
var ErrInvalidTime = errors.New("invalid time of day")

// pmCutoffHour is the first hour read literally. Schedule strings carry no
// AM/PM marker, so earlier hours are afternoon hours.
const pmCutoffHour = 6

// TimeOfDay is an offset from local midnight. It carries no date and no zone.
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from an hour (0-23) and minute (0-59).
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// TimeOfDayFromTime returns the wall-clock time of t in its own location,
// keeping seconds and nanoseconds.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
	return TimeOfDay(d)
}

// ParseTimeOfDay parses an "H:MM" schedule string. Hours before 6 are taken
// as PM, so "1:00" is 13:00 while "7:30" and "12:00" are literal.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hour, minute, err := splitClock(s)
	if err != nil {
		return 0, err
	}
	if hour < pmCutoffHour {
		hour += 12
	}
	return NewTimeOfDay(hour, minute), nil
}

// ParseClock24 parses an "H:MM" string as a literal 24-hour clock value.
// Used for explicit user input such as --at, where no AM/PM guessing applies.
func ParseClock24(s string) (TimeOfDay, error) {
	hour, minute, err := splitClock(s)
	if err != nil {
		return 0, err
	}
	return NewTimeOfDay(hour, minute), nil
}

func splitClock(s string) (int, int, error) {
	raw := strings.TrimSpace(s)
	hs, ms, ok := strings.Cut(raw, ":")
	if !ok || hs == "" || len(ms) != 2 {
		return 0, 0, fmt.Errorf("%w: %q (expected H:MM)", ErrInvalidTime, s)
	}
	hour, err := strconv.Atoi(hs)
	if err != nil || len(hs) > 2 || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q has bad hour", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(ms)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q has bad minute", ErrInvalidTime, s)
	}
	return hour, minute, nil
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int {
	return int(time.Duration(t) / time.Hour)
}

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int {
	return int(time.Duration(t)%time.Hour) / int(time.Minute)
}

// Sub returns the signed duration t - u.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(t) - time.Duration(u)
}

// On places t on the calendar day of date as a wall-clock time in date's
// location. On DST transition days this differs from midnight plus t.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	rest := time.Duration(t) % time.Minute
	return time.Date(y, m, d, t.Hour(), t.Minute(),
		int(rest/time.Second), int(rest%time.Second), date.Location())
}

// String formats t as "15:04".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
