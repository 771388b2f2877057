package service

import (
	"context"

	"github.com/yun0-0514/dev-blog/internal/domain/about"
)

// ProfileCache holds the active about profile. Get returns (nil, nil) on a miss.
//
// Set keeps whichever of the cached and the given profile has the later
// UpdatedAt, matching the store's own "newest active row wins" rule.
// SetIfAbsent only fills an empty cache, so a reader holding an older row
// never replaces an entry written after a newer commit.
type ProfileCache interface {
	Get(ctx context.Context) (*about.Profile, error)
	Set(ctx context.Context, p *about.Profile) error
	SetIfAbsent(ctx context.Context, p *about.Profile) (bool, error)
	Invalidate(ctx context.Context) error
}
