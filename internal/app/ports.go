package app

import "context"

type TodayUseCase interface {
	Today(ctx context.Context, req TodayRequest) (*TodayResponse, error)
}

type WeekUseCase interface {
	Week(ctx context.Context) (*WeekResponse, error)
}
