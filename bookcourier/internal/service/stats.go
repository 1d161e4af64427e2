package service

import (
	"context"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

func (s *Service) SaveEvent(ctx context.Context, event model.Event) error {
	return s.repo.SaveEvent(ctx, event)
}

func (s *Service) Stats(ctx context.Context) (model.StatsInfo, error) {
	return s.repo.GetStats(ctx)
}
