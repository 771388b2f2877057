package about

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/internal/application/service"
	"github.com/yun0-0514/dev-blog/internal/domain/about"
	"github.com/yun0-0514/dev-blog/pkg/apperror"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

var tracer = otel.Tracer("about_usecase")

type AboutUseCase struct {
	aboutRepo about.Repository
	cache     service.ProfileCache
	events    service.ProfileEventPublisher
	logger    logger.Logger
}

// NewAboutUseCase wires the about page logic. cache and events may be nil.
func NewAboutUseCase(repo about.Repository, cache service.ProfileCache, events service.ProfileEventPublisher, log logger.Logger) *AboutUseCase {
	return &AboutUseCase{
		aboutRepo: repo,
		cache:     cache,
		events:    events,
		logger:    log,
	}
}

type GetAboutOutput struct {
	Profile   *about.Profile
	IsDefault bool
}

// ExecuteGetAbout never fails: a missing or unreadable profile degrades to
// about.DefaultProfile.
func (uc *AboutUseCase) ExecuteGetAbout(ctx context.Context) *GetAboutOutput {
	ctx, span := tracer.Start(ctx, "ExecuteGetAbout")
	defer span.End()

	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warn("About cache read failed", zap.Error(err))
		} else if cached != nil {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return &GetAboutOutput{Profile: cached}
		}
	}

	p, err := uc.aboutRepo.FindActive(ctx)
	if err != nil {
		if !errors.Is(err, about.ErrNoActiveProfile) {
			span.RecordError(err)
			uc.logger.Error("Failed to read active about profile, serving default", err)
		}
		return &GetAboutOutput{Profile: about.DefaultProfile(), IsDefault: true}
	}

	if uc.cache != nil {
		if _, err := uc.cache.SetIfAbsent(ctx, p); err != nil {
			uc.logger.Warn("About cache write failed", zap.String("profile_id", p.ID.String()), zap.Error(err))
		}
	}
	return &GetAboutOutput{Profile: p}
}

type CreateAboutInput struct {
	ActorID string
	Content about.Content
}

type CreateAboutOutput struct {
	Profile *about.Profile
}

func (uc *AboutUseCase) ExecuteCreateAbout(ctx context.Context, input CreateAboutInput) (*CreateAboutOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteCreateAbout")
	defer span.End()

	if strings.TrimSpace(input.ActorID) == "" {
		return nil, apperror.NewUnauthorized("actor id is required to create an about profile", nil)
	}
	span.SetAttributes(attribute.String("actor_id", input.ActorID))

	content := input.Content
	content.Normalize()

	p, err := uc.aboutRepo.CreateActive(ctx, input.ActorID, content)
	if err != nil {
		span.RecordError(err)
		return nil, asWriteError(err, "create about profile failed")
	}

	uc.logger.Info("About profile created", zap.String("profile_id", p.ID.String()), zap.String("actor_id", input.ActorID))
	uc.afterWrite(ctx, p, about.EventProfileCreated)
	return &CreateAboutOutput{Profile: p}, nil
}

type UpdateAboutInput struct {
	ActorID   string
	ProfileID uuid.UUID
	Patch     about.Patch
}

type UpdateAboutOutput struct {
	Profile *about.Profile
}

func (uc *AboutUseCase) ExecuteUpdateAbout(ctx context.Context, input UpdateAboutInput) (*UpdateAboutOutput, error) {
	ctx, span := tracer.Start(ctx, "ExecuteUpdateAbout")
	defer span.End()

	if strings.TrimSpace(input.ActorID) == "" {
		return nil, apperror.NewUnauthorized("actor id is required to update an about profile", nil)
	}
	span.SetAttributes(
		attribute.String("actor_id", input.ActorID),
		attribute.String("profile_id", input.ProfileID.String()),
	)

	p, err := uc.aboutRepo.UpdateOwned(ctx, input.ProfileID, input.ActorID, input.Patch)
	if err != nil {
		span.RecordError(err)
		return nil, asWriteError(err, "update about profile failed")
	}
	p.Normalize()

	uc.logger.Info("About profile updated", zap.String("profile_id", p.ID.String()), zap.String("actor_id", input.ActorID))
	uc.afterWrite(ctx, p, about.EventProfileUpdated)
	return &UpdateAboutOutput{Profile: p}, nil
}

// WarmCache reloads the active profile into the cache, or clears it when no
// profile is active.
func (uc *AboutUseCase) WarmCache(ctx context.Context) error {
	if uc.cache == nil {
		return nil
	}
	p, err := uc.aboutRepo.FindActive(ctx)
	if errors.Is(err, about.ErrNoActiveProfile) {
		return uc.cache.Invalidate(ctx)
	}
	if err != nil {
		return err
	}
	return uc.cache.Set(ctx, p)
}

func (uc *AboutUseCase) afterWrite(ctx context.Context, p *about.Profile, eventType about.EventType) {
	// An update to an inactive revision must not displace the active one.
	if uc.cache != nil && p.IsActive {
		if err := uc.cache.Set(ctx, p); err != nil {
			uc.logger.Warn("Failed to refresh about cache, dropping entry", zap.String("profile_id", p.ID.String()), zap.Error(err))
			if err := uc.cache.Invalidate(ctx); err != nil {
				uc.logger.Warn("Failed to invalidate about cache", zap.String("profile_id", p.ID.String()), zap.Error(err))
			}
		}
	}

	if uc.events == nil {
		return
	}
	evt := about.Event{
		EventType:  eventType,
		ProfileID:  p.ID,
		ActorID:    p.CreatedBy,
		OccurredAt: time.Now().UTC(),
	}
	go func() {
		if err := uc.events.PublishProfileEvent(context.Background(), evt); err != nil {
			uc.logger.Error("Failed to publish about event", err, zap.String("event_type", string(evt.EventType)), zap.String("profile_id", evt.ProfileID.String()))
		}
	}()
}

func asWriteError(err error, details string) error {
	if errors.Is(err, apperror.ErrPersistence) ||
		errors.Is(err, apperror.ErrNotFoundOrForbidden) ||
		errors.Is(err, apperror.ErrUnauthorized) {
		return err
	}
	return apperror.NewPersistence(details, err)
}
