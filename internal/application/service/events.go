package service

import (
	"context"

	"github.com/yun0-0514/dev-blog/internal/domain/about"
)

type ProfileEventPublisher interface {
	PublishProfileEvent(ctx context.Context, e about.Event) error
}
