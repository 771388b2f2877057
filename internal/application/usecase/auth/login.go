package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/internal/domain/user"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/auth"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

type TokenIssuer interface {
	GenerateToken(actorID, email string) (string, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	tokens   TokenIssuer
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, tokens TokenIssuer, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		tokens:   tokens,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewUnauthorized("email or password is incorrect", nil)
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		err := apperror.NewUnauthorized("email or password is incorrect", nil)
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.tokens.GenerateToken(u.ID.String(), u.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return &LoginOutput{AccessToken: token}, nil
}
