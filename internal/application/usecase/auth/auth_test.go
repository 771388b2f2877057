package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yun0-0514/dev-blog/internal/domain/user"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	pkgauth "github.com/yun0-0514/dev-blog/pkg/auth"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func seededOwner(t *testing.T) *user.User {
	hash, err := pkgauth.HashPassword("correct-horse")
	require.NoError(t, err)
	return &user.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: hash}
}

func TestLogin_IssuesTokenForOwner(t *testing.T) {
	owner := seededOwner(t)
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, owner.Email).Return(owner, nil)
	jwtSvc := pkgauth.NewJWTService("secret", time.Hour)

	out, err := NewLoginUseCase(repo, jwtSvc, logger.NewNopLogger()).
		Execute(context.Background(), LoginInput{Email: owner.Email, Password: "correct-horse"})
	require.NoError(t, err)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, owner.ID.String(), claims.ActorID)
}

func TestLogin_WrongPasswordOrUnknownEmail(t *testing.T) {
	owner := seededOwner(t)
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, owner.Email).Return(owner, nil)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, user.ErrUserNotFound)
	uc := NewLoginUseCase(repo, pkgauth.NewJWTService("secret", time.Hour), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), LoginInput{Email: owner.Email, Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = uc.Execute(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCurrentUser(t *testing.T) {
	name := "Park"
	u := &user.User{ID: uuid.New(), Email: "owner@example.com", Name: &name}
	repo := new(mockUserRepo)
	repo.On("FindByID", mock.Anything, u.ID).Return(u, nil)
	uc := NewCurrentUserUseCase(repo, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, &CurrentUserOutput{UserID: u.ID.String(), Email: u.Email, Name: "Park"}, out)

	_, err = uc.Execute(context.Background(), "user_2xExternal")
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestCurrentUser_StoreFailure(t *testing.T) {
	id := uuid.New()
	repo := new(mockUserRepo)
	repo.On("FindByID", mock.Anything, id).Return(nil, apperror.NewPersistence("boom", errors.New("down")))

	_, err := NewCurrentUserUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), id.String())
	assert.ErrorIs(t, err, apperror.ErrPersistence)
}
