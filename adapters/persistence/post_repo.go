package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yun0-0514/dev-blog/internal/domain/category"
	"github.com/yun0-0514/dev-blog/internal/domain/post"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type postgresPostRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPostRepo(db *pgxpool.Pool, logger logger.Logger) post.Repository {
	return &postgresPostRepo{db: db, logger: logger}
}

var postWithCategoryColumns = []string{
	"p.id", "p.title", "p.slug", "p.excerpt", "p.content", "p.cover_image_url",
	"p.view_count", "p.status", "p.author_id", "p.category_id", "p.created_at", "p.updated_at",
	"c.id", "c.name", "c.slug", "c.color", "c.description", "c.created_at", "c.updated_at",
}

func scanPostWithCategory(row pgx.Row) (*post.Post, error) {
	p := &post.Post{}
	var catID uuid.NullUUID
	var catName, catSlug, catColor, catDescription sql.NullString
	var catCreatedAt, catUpdatedAt *time.Time

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.CoverImageURL,
		&p.ViewCount,
		&p.Status,
		&p.AuthorID,
		&p.CategoryID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&catID,
		&catName,
		&catSlug,
		&catColor,
		&catDescription,
		&catCreatedAt,
		&catUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan post row: %w", err)
	}

	if catID.Valid {
		c := &category.Category{
			ID:    catID.UUID,
			Name:  catName.String,
			Slug:  catSlug.String,
			Color: catColor.String,
		}
		if catDescription.Valid {
			c.Description = &catDescription.String
		}
		if catCreatedAt != nil {
			c.CreatedAt = *catCreatedAt
		}
		if catUpdatedAt != nil {
			c.UpdatedAt = *catUpdatedAt
		}
		p.Category = c
	}
	return p, nil
}

func (r *postgresPostRepo) ListPublished(ctx context.Context, limit, offset int) ([]*post.Post, error) {
	query, args, err := psql.Select(postWithCategoryColumns...).
		From("posts p").
		LeftJoin("categories c ON c.id = p.category_id").
		Where(sq.Eq{"p.status": string(post.StatusPublished)}).
		OrderBy("p.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build published posts query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewPersistence("failed to list published posts", err)
	}
	defer rows.Close()

	posts := make([]*post.Post, 0)
	for rows.Next() {
		p, err := scanPostWithCategory(rows)
		if err != nil {
			return nil, apperror.NewPersistence("failed to read published posts", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewPersistence("error iterating post rows", err)
	}
	return posts, nil
}
