package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/bell/internal/domain"
)

// Reference dates: the week of 2026-10-19 starts on a Monday.
var (
	Monday    = time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local)
	Tuesday   = Monday.AddDate(0, 0, 1)
	Wednesday = Monday.AddDate(0, 0, 2)
	Thursday  = Monday.AddDate(0, 0, 3)
	Friday    = Monday.AddDate(0, 0, 4)
	Saturday  = Monday.AddDate(0, 0, 5)
	Sunday    = Monday.AddDate(0, 0, 6)
)

// At returns day at hour:minute local time.
func At(day time.Time, hour, minute int) time.Time {
	return domain.NewTimeOfDay(hour, minute).On(day)
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// CountingClock returns a clock reporting t and a pointer to its read count.
func CountingClock(t time.Time) (func() time.Time, *int) {
	n := 0
	return func() time.Time {
		n++
		return t
	}, &n
}

// MustBlock parses a block from schedule strings or fails the test.
func MustBlock(t *testing.T, name, start, end string) domain.Block {
	t.Helper()
	b, err := domain.ParseBlock(name, start, end)
	if err != nil {
		t.Fatalf("parsing block %q: %v", name, err)
	}
	return b
}
