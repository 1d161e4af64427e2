package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/repository"
)

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	publisher Publisher
	now       func() time.Time
}

func NewService(repo repository.Repository, publisher Publisher, log *zap.Logger) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Service{
		log:       log.Named("service"),
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Role resolves the stored role of email, model.RoleNone when unregistered.
func (s *Service) Role(ctx context.Context, email string) (model.Role, error) {
	return s.repo.GetRole(ctx, email)
}

func (s *Service) publish(ctx context.Context, typ model.EventType, entityID, actor string) {
	event := model.Event{
		Type:       typ,
		EntityID:   entityID,
		Actor:      actor,
		OccurredAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish event", zap.String("type", string(typ)), zap.String("entity", entityID), zap.Error(err))
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
