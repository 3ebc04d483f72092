package service

import (
	"context"
	"time"

	"github.com/alexanderramin/bell/internal/app"
)

type weekService struct {
	schedules ScheduleSource
	observer  UseCaseObserver
}

func NewWeekService(schedules ScheduleSource, observers ...UseCaseObserver) WeekService {
	return &weekService{
		schedules: schedules,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *weekService) Week(ctx context.Context) (*app.WeekResponse, error) {
	startedAt := time.Now()

	resp := &app.WeekResponse{}
	for _, day := range s.schedules.Days() {
		blocks, ok := s.schedules.For(day)
		if !ok {
			continue
		}
		resp.Days = append(resp.Days, app.DayView{Day: day, Blocks: blocks})
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "week",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields:    map[string]any{"days": len(resp.Days)},
	})
	return resp, nil
}
