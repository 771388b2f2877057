package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/internal/domain/about"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

const aboutTable = "about_page"

var aboutColumns = []string{
	"id", "is_active", "created_by", "created_at", "updated_at",
	"name", "title", "school", "location",
	"github_url", "github_username", "notion_url", "email",
	"tech_stacks", "strengths", "projects",
	"education", "education_details", "experience_details",
}

var aboutReturning = "RETURNING " + strings.Join(aboutColumns, ", ")

type postgresAboutRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAboutRepo(db *pgxpool.Pool, logger logger.Logger) about.Repository {
	return &postgresAboutRepo{db: db, logger: logger}
}

func scanAbout(row pgx.Row, l logger.Logger) (*about.Profile, error) {
	p := &about.Profile{}
	var createdBy, name, title, school, location sql.NullString
	var githubURL, githubUsername, notionURL, email, education sql.NullString
	var techStacks, strengths, projects, educationDetails, experienceDetails []byte

	err := row.Scan(
		&p.ID,
		&p.IsActive,
		&createdBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&name,
		&title,
		&school,
		&location,
		&githubURL,
		&githubUsername,
		&notionURL,
		&email,
		&techStacks,
		&strengths,
		&projects,
		&education,
		&educationDetails,
		&experienceDetails,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedBy = createdBy.String
	p.Name = name.String
	p.Title = title.String
	p.School = school.String
	p.Location = location.String
	p.GithubURL = githubURL.String
	p.GithubUsername = githubUsername.String
	p.NotionURL = notionURL.String
	p.Email = email.String
	p.Education = education.String

	id := p.ID.String()
	unmarshalJSONB(l, id, "tech_stacks", techStacks, &p.TechStacks)
	unmarshalJSONB(l, id, "strengths", strengths, &p.Strengths)
	unmarshalJSONB(l, id, "projects", projects, &p.Projects)
	unmarshalJSONB(l, id, "education_details", educationDetails, &p.EducationDetails)
	unmarshalJSONB(l, id, "experience_details", experienceDetails, &p.ExperienceDetails)
	p.Normalize()

	return p, nil
}

// unmarshalJSONB leaves dst untouched on NULL or malformed data.
func unmarshalJSONB(l logger.Logger, profileID, column string, raw []byte, dst any) {
	if len(raw) == 0 {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		l.Warn("Failed to unmarshal about column", zap.String("profile_id", profileID), zap.String("column", column), zap.Error(err))
	}
}

func (r *postgresAboutRepo) FindActive(ctx context.Context) (*about.Profile, error) {
	query, args, err := psql.Select(aboutColumns...).
		From(aboutTable).
		Where(sq.Eq{"is_active": true}).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build active about query", err)
	}

	p, err := scanAbout(r.db.QueryRow(ctx, query, args...), r.logger)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, about.ErrNoActiveProfile
		}
		return nil, apperror.NewPersistence("failed to query active about profile", err)
	}
	return p, nil
}

func (r *postgresAboutRepo) CreateActive(ctx context.Context, actorID string, c about.Content) (*about.Profile, error) {
	values, err := contentValues(c)
	if err != nil {
		return nil, err
	}

	deactivateSQL, deactivateArgs, err := psql.Update(aboutTable).
		Set("is_active", false).
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build deactivate query", err)
	}

	insert := psql.Insert(aboutTable).Columns("is_active", "created_by")
	cols := make([]string, 0, len(values))
	vals := []any{true, actorID}
	for _, kv := range values {
		cols = append(cols, kv.column)
		vals = append(vals, kv.value)
	}
	insertSQL, insertArgs, err := insert.Columns(cols...).Values(vals...).Suffix(aboutReturning).ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build insert about query", err)
	}

	var created *about.Profile
	err = pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, deactivateSQL, deactivateArgs...)
		if err != nil {
			return apperror.NewPersistence("failed to deactivate about profiles", err)
		}
		r.logger.Debug("Deactivated about profiles", zap.Int64("rows", tag.RowsAffected()))

		created, err = scanAbout(tx.QueryRow(ctx, insertSQL, insertArgs...), r.logger)
		if err != nil {
			return apperror.NewPersistence("failed to insert about profile", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperror.ErrPersistence) {
			return nil, err
		}
		return nil, apperror.NewPersistence("about profile transaction failed", err)
	}
	return created, nil
}

func (r *postgresAboutRepo) UpdateOwned(ctx context.Context, id uuid.UUID, actorID string, patch about.Patch) (*about.Profile, error) {
	values, err := patchValues(patch)
	if err != nil {
		return nil, err
	}

	update := psql.Update(aboutTable).Set("updated_at", sq.Expr("NOW()"))
	for _, kv := range values {
		update = update.Set(kv.column, kv.value)
	}
	query, args, err := update.
		Where(sq.Eq{"id": id, "created_by": actorID}).
		Suffix(aboutReturning).
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build update about query", err)
	}

	p, err := scanAbout(r.db.QueryRow(ctx, query, args...), r.logger)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundOrForbidden(aboutTable, id.String())
		}
		return nil, apperror.NewPersistence("failed to update about profile", err)
	}
	return p, nil
}

type columnValue struct {
	column string
	value  any
}

func contentValues(c about.Content) ([]columnValue, error) {
	values := []columnValue{
		{"name", c.Name},
		{"title", c.Title},
		{"school", c.School},
		{"location", c.Location},
		{"github_url", c.GithubURL},
		{"github_username", c.GithubUsername},
		{"notion_url", c.NotionURL},
		{"email", c.Email},
		{"education", c.Education},
	}
	return appendJSONB(values,
		columnValue{"tech_stacks", c.TechStacks},
		columnValue{"strengths", c.Strengths},
		columnValue{"projects", c.Projects},
		columnValue{"education_details", c.EducationDetails},
		columnValue{"experience_details", c.ExperienceDetails},
	)
}

func patchValues(p about.Patch) ([]columnValue, error) {
	var values []columnValue
	strs := []struct {
		column string
		value  *string
	}{
		{"name", p.Name},
		{"title", p.Title},
		{"school", p.School},
		{"location", p.Location},
		{"github_url", p.GithubURL},
		{"github_username", p.GithubUsername},
		{"notion_url", p.NotionURL},
		{"email", p.Email},
		{"education", p.Education},
	}
	for _, s := range strs {
		if s.value != nil {
			values = append(values, columnValue{s.column, *s.value})
		}
	}

	var jsonb []columnValue
	if p.TechStacks != nil {
		jsonb = append(jsonb, columnValue{"tech_stacks", *p.TechStacks})
	}
	if p.Strengths != nil {
		jsonb = append(jsonb, columnValue{"strengths", *p.Strengths})
	}
	if p.Projects != nil {
		jsonb = append(jsonb, columnValue{"projects", *p.Projects})
	}
	if p.EducationDetails != nil {
		jsonb = append(jsonb, columnValue{"education_details", *p.EducationDetails})
	}
	if p.ExperienceDetails != nil {
		jsonb = append(jsonb, columnValue{"experience_details", *p.ExperienceDetails})
	}
	return appendJSONB(values, jsonb...)
}

func appendJSONB(values []columnValue, jsonb ...columnValue) ([]columnValue, error) {
	for _, kv := range jsonb {
		raw, err := json.Marshal(kv.value)
		if err != nil {
			return nil, apperror.NewInternal("failed to marshal "+kv.column, err)
		}
		values = append(values, columnValue{kv.column, raw})
	}
	return values, nil
}
