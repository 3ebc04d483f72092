package app

import (
	"time"

	"github.com/alexanderramin/bell/internal/domain"
	"github.com/alexanderramin/bell/internal/scheduler"
)

// Terminal messages shown instead of a table.
const (
	MessageNoSchool   = "You don't have school today! Relax!"
	MessageSchoolOver = "School is over!"
)

type TodayRequest struct {
	// Now overrides the clock. Its date picks the weekday unless Weekday is set.
	Now           *time.Time
	Weekday       *time.Weekday
	OnlyRemaining bool
}

func NewTodayRequest() TodayRequest {
	return TodayRequest{}
}

type TodayResponse struct {
	Day   time.Weekday
	Now   domain.TimeOfDay
	State domain.ScheduleState
	// OnlyRemaining echoes the request: Blocks had finished rows dropped.
	OnlyRemaining bool
	// Blocks holds the rows to show, after the remaining filter.
	Blocks []scheduler.ClassifiedBlock
	// TotalBlocks counts every block of the day, shown or not.
	TotalBlocks int
	Message     string
}

// Current returns the block that strictly contains Now, if it is shown.
func (r *TodayResponse) Current() (scheduler.ClassifiedBlock, bool) {
	return scheduler.Current(r.Blocks)
}

// Upcoming returns the first block that has not started, if it is shown.
func (r *TodayResponse) Upcoming() (scheduler.ClassifiedBlock, bool) {
	return scheduler.Upcoming(r.Blocks)
}

type DayView struct {
	Day    time.Weekday
	Blocks domain.DaySchedule
}

type WeekResponse struct {
	Days []DayView
}
