package usecase

import (
	"context"

	"skill-summarizer-backend/pkg/apperror"
)

// Pinger is satisfied by the document store handle.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, error)
}

type healthUsecase struct {
	store Pinger
}

func NewHealthUsecase(store Pinger) HealthUsecase {
	return &healthUsecase{store: store}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, error) {
	if err := u.store.Ping(ctx); err != nil {
		return nil, apperror.ServiceUnavailable("Database unreachable", err)
	}
	return map[string]string{
		"status":   "ok",
		"database": "ok",
	}, nil
}
