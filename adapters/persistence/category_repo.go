package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yun0-0514/dev-blog/internal/domain/category"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type postgresCategoryRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCategoryRepo(db *pgxpool.Pool, logger logger.Logger) category.Repository {
	return &postgresCategoryRepo{db: db, logger: logger}
}

func (r *postgresCategoryRepo) ListByName(ctx context.Context, limit int) ([]*category.Category, error) {
	query, args, err := psql.Select("id", "name", "slug", "color", "description", "created_at", "updated_at").
		From("categories").
		OrderBy("name ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build categories query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewPersistence("failed to list categories", err)
	}
	defer rows.Close()

	categories := make([]*category.Category, 0)
	for rows.Next() {
		c := &category.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Color, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, apperror.NewPersistence("failed to scan category row", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewPersistence("error iterating category rows", err)
	}
	return categories, nil
}
