package cli

import (
	"github.com/alexanderramin/bell/internal/app"
	"github.com/alexanderramin/bell/internal/service"
)

func (a *App) todayUseCase() (app.TodayUseCase, error) {
	if a.Today != nil {
		return a.Today, nil
	}
	tt, err := a.loadTimetable()
	if err != nil {
		return nil, err
	}
	a.Today = service.NewTodayService(tt, a.Clock, a.observer())
	return a.Today, nil
}

func (a *App) weekUseCase() (app.WeekUseCase, error) {
	if a.Week != nil {
		return a.Week, nil
	}
	tt, err := a.loadTimetable()
	if err != nil {
		return nil, err
	}
	a.Week = service.NewWeekService(tt, a.observer())
	return a.Week, nil
}
