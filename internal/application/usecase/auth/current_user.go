package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/yun0-0514/dev-blog/internal/domain/user"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type CurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewCurrentUserUseCase(repo user.Repository, log logger.Logger) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: repo, logger: log}
}

type CurrentUserOutput struct {
	UserID string
	Email  string
	Name   string
}

// Execute resolves the actor behind a validated token. Actors that are not
// local users, or were deleted after the token was issued, are unauthorized.
func (uc *CurrentUserUseCase) Execute(ctx context.Context, actorID string) (*CurrentUserOutput, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, apperror.NewUnauthorized("actor is not a known user", err)
	}

	u, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewUnauthorized("actor is not a known user", err)
		}
		return nil, err
	}

	return &CurrentUserOutput{
		UserID: u.ID.String(),
		Email:  u.Email,
		Name:   u.DisplayName(),
	}, nil
}
