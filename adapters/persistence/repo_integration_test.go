package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/yun0-0514/dev-blog/internal/domain/about"
	"github.com/yun0-0514/dev-blog/internal/domain/category"
	"github.com/yun0-0514/dev-blog/internal/domain/post"
	"github.com/yun0-0514/dev-blog/internal/domain/user"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool       *pgxpool.Pool
	pgContainer  *postgres.PostgresContainer
	testLogger   logger.Logger
	aboutRepo    about.Repository
	postRepo     post.Repository
	categoryRepo category.Repository
	userRepo     user.Repository
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNopLogger()
	s.aboutRepo = NewPostgresAboutRepo(s.dbPool, s.testLogger)
	s.postRepo = NewPostgresPostRepo(s.dbPool, s.testLogger)
	s.categoryRepo = NewPostgresCategoryRepo(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool, s.testLogger)
}

func (s *RepoIntegrationTestSuite) SetupTest() {
	_, err := s.dbPool.Exec(context.Background(), `TRUNCATE about_page, posts, categories, users`)
	s.Require().NoError(err)
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func (s *RepoIntegrationTestSuite) activeCount() int {
	var n int
	err := s.dbPool.QueryRow(context.Background(), `SELECT COUNT(*) FROM about_page WHERE is_active`).Scan(&n)
	s.Require().NoError(err)
	return n
}

func (s *RepoIntegrationTestSuite) Test_FindActive_EmptyTable() {
	_, err := s.aboutRepo.FindActive(context.Background())
	s.ErrorIs(err, about.ErrNoActiveProfile)
}

func (s *RepoIntegrationTestSuite) Test_CreateActive_ReplacesPrevious() {
	ctx := context.Background()

	payload := about.DefaultProfile().Content
	first, err := s.aboutRepo.CreateActive(ctx, "u1", payload)
	s.Require().NoError(err)
	s.True(first.Persisted())
	s.True(first.IsActive)
	s.Equal("u1", first.CreatedBy)
	s.Equal(payload, first.Content)

	second, err := s.aboutRepo.CreateActive(ctx, "u2", about.Content{Name: "B"})
	s.Require().NoError(err)

	active, err := s.aboutRepo.FindActive(ctx)
	s.Require().NoError(err)
	s.Equal(second.ID, active.ID)
	s.Equal("B", active.Name)
	s.Equal("u2", active.CreatedBy)
	s.Equal(1, s.activeCount())
}

func (s *RepoIntegrationTestSuite) Test_UpdateOwned_PartialAndOwnerScoped() {
	ctx := context.Background()

	created, err := s.aboutRepo.CreateActive(ctx, "u1", about.DefaultProfile().Content)
	s.Require().NoError(err)

	_, err = s.aboutRepo.UpdateOwned(ctx, created.ID, "u2", about.Patch{})
	s.ErrorIs(err, apperror.ErrNotFoundOrForbidden)

	_, err = s.aboutRepo.UpdateOwned(ctx, uuid.New(), "u1", about.Patch{})
	s.ErrorIs(err, apperror.ErrNotFoundOrForbidden)

	title := "Backend engineer"
	projects := []about.Project{{Title: "dev-blog", Tech: "Go", Color: "green", Features: []string{"api"}}}
	updated, err := s.aboutRepo.UpdateOwned(ctx, created.ID, "u1", about.Patch{Title: &title, Projects: &projects})
	s.Require().NoError(err)

	want := about.DefaultProfile().Content
	want.Title = title
	want.Projects = projects
	s.Equal(want, updated.Content)
	s.True(updated.IsActive)
	s.False(updated.UpdatedAt.Before(created.UpdatedAt))
}

func (s *RepoIntegrationTestSuite) Test_FindActive_NullColumnsDecodeEmpty() {
	ctx := context.Background()
	_, err := s.dbPool.Exec(ctx, `INSERT INTO about_page (is_active, created_by) VALUES (TRUE, 'u1')`)
	s.Require().NoError(err)

	p, err := s.aboutRepo.FindActive(ctx)
	s.Require().NoError(err)
	s.Equal("", p.Name)
	s.NotNil(p.TechStacks)
	s.Empty(p.TechStacks)
}

func (s *RepoIntegrationTestSuite) Test_ListPublished_WithCategory() {
	ctx := context.Background()

	var catID uuid.UUID
	err := s.dbPool.QueryRow(ctx,
		`INSERT INTO categories (name, slug, color) VALUES ('Go', 'go', '#00add8') RETURNING id`,
	).Scan(&catID)
	s.Require().NoError(err)

	_, err = s.dbPool.Exec(ctx, `
		INSERT INTO posts (title, slug, status, category_id, created_at) VALUES
			('old', 'old', 'published', $1, NOW() - INTERVAL '2 day'),
			('new', 'new', 'published', NULL, NOW() - INTERVAL '1 day'),
			('draft', 'draft', 'draft', $1, NOW())
	`, catID)
	s.Require().NoError(err)

	posts, err := s.postRepo.ListPublished(ctx, 3, 0)
	s.Require().NoError(err)
	s.Require().Len(posts, 2)
	s.Equal("new", posts[0].Slug)
	s.Nil(posts[0].Category)
	s.Equal("old", posts[1].Slug)
	s.Require().NotNil(posts[1].Category)
	s.Equal("Go", posts[1].Category.Name)
}

func (s *RepoIntegrationTestSuite) Test_ListCategories_ByName() {
	ctx := context.Background()
	_, err := s.dbPool.Exec(ctx, `INSERT INTO categories (name, slug) VALUES ('Zig', 'zig'), ('Algo', 'algo'), ('Go', 'go')`)
	s.Require().NoError(err)

	cats, err := s.categoryRepo.ListByName(ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(cats, 2)
	s.Equal("Algo", cats[0].Name)
	s.Equal("Go", cats[1].Name)
}

func (s *RepoIntegrationTestSuite) Test_FindUser() {
	ctx := context.Background()
	id := uuid.New()
	_, err := s.dbPool.Exec(ctx, `INSERT INTO users (id, email, password_hash) VALUES ($1, 'owner@example.com', 'hash')`, id)
	s.Require().NoError(err)

	byEmail, err := s.userRepo.FindByEmail(ctx, "owner@example.com")
	s.Require().NoError(err)
	s.Equal(id, byEmail.ID)

	byID, err := s.userRepo.FindByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("owner@example.com", byID.Email)

	_, err = s.userRepo.FindByEmail(ctx, "missing@example.com")
	s.ErrorIs(err, user.ErrUserNotFound)
}
