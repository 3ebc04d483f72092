package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bell/internal/app"
	"github.com/alexanderramin/bell/internal/domain"
)

// ScheduleSource supplies the blocks configured for each weekday.
type ScheduleSource interface {
	For(day time.Weekday) (domain.DaySchedule, bool)
	Days() []time.Weekday
}

// Clock returns the current local time.
type Clock func() time.Time

type TodayService interface {
	Today(ctx context.Context, req app.TodayRequest) (*app.TodayResponse, error)
}

type WeekService interface {
	Week(ctx context.Context) (*app.WeekResponse, error)
}
