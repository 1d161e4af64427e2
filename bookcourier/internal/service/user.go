package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.InsertResult, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return model.InsertResult{}, errs.Validation("email is required")
	}
	user := model.User{
		Email:     email,
		Name:      strings.TrimSpace(req.Name),
		Role:      model.RoleUser,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.InsertResult{Acknowledged: true, Message: "user already exists"}, nil
		}
		return model.InsertResult{}, err
	}
	s.publish(ctx, model.EventUserCreated, email, email)
	return model.Inserted(email), nil
}
