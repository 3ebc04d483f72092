package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bell/internal/app"
	"github.com/alexanderramin/bell/internal/domain"
	"github.com/alexanderramin/bell/internal/scheduler"
)

type todayService struct {
	schedules ScheduleSource
	clock     Clock
	observer  UseCaseObserver
}

func NewTodayService(schedules ScheduleSource, clock Clock, observers ...UseCaseObserver) TodayService {
	return &todayService{
		schedules: schedules,
		clock:     clockOrDefault(clock),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *todayService) Today(ctx context.Context, req app.TodayRequest) (*app.TodayResponse, error) {
	startedAt := time.Now()

	var now time.Time
	if req.Now != nil {
		now = *req.Now
	} else {
		now = s.clock()
	}
	day := now.Weekday()
	if req.Weekday != nil {
		day = *req.Weekday
	}

	resp := &app.TodayResponse{
		Day:           day,
		Now:           domain.TimeOfDayFromTime(now),
		OnlyRemaining: req.OnlyRemaining,
	}

	schedule, ok := s.schedules.For(day)
	if !ok {
		resp.State = domain.StateNoSchool
		resp.Message = app.MessageNoSchool
	} else {
		classified := scheduler.ClassifyDay(schedule, resp.Now)
		resp.TotalBlocks = len(classified)
		if req.OnlyRemaining {
			classified = scheduler.Remaining(classified)
		}
		resp.Blocks = classified
		resp.State = domain.StateSchedule
		if len(classified) == 0 {
			resp.State = domain.StateSchoolOver
			resp.Message = app.MessageSchoolOver
		}
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "today",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields: map[string]any{
			"day":            day.String(),
			"now":            resp.Now.String(),
			"only_remaining": req.OnlyRemaining,
			"state":          string(resp.State),
			"rows":           len(resp.Blocks),
		},
	})

	return resp, nil
}
