package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yun0-0514/dev-blog/internal/application/service"
	"github.com/yun0-0514/dev-blog/internal/domain/about"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

// The active profile lives in one hash: "profile" holds the JSON record and
// "version" its updated_at in microseconds.
const (
	activeAboutKey    = "about:active"
	aboutFieldProfile = "profile"
	aboutFieldVersion = "version"
)

// KEYS[1] key; ARGV[1] version; ARGV[2] profile json; ARGV[3] ttl ms.
var setNewerScript = redis.NewScript(`
local cur = redis.call('HGET', KEYS[1], 'version')
if cur and tonumber(cur) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'profile', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

var setIfAbsentScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return 0
end
redis.call('HSET', KEYS[1], 'version', ARGV[1], 'profile', ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[3])
return 1
`)

type redisAboutCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewRedisAboutCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) service.ProfileCache {
	return &redisAboutCache{rdb: rdb, ttl: ttl, logger: log}
}

func (c *redisAboutCache) Get(ctx context.Context) (*about.Profile, error) {
	raw, err := c.rdb.HGet(ctx, activeAboutKey, aboutFieldProfile).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis hget %s: %w", activeAboutKey, err)
	}

	p := &about.Profile{}
	if err := json.Unmarshal(raw, p); err != nil {
		// Treated as a miss; the next write replaces it.
		c.logger.Warn("Corrupt about cache entry", zap.String("key", activeAboutKey), zap.Int("bytes", len(raw)), zap.Error(err))
		return nil, nil
	}
	return p, nil
}

func (c *redisAboutCache) Set(ctx context.Context, p *about.Profile) error {
	_, err := c.run(ctx, setNewerScript, p)
	return err
}

func (c *redisAboutCache) SetIfAbsent(ctx context.Context, p *about.Profile) (bool, error) {
	return c.run(ctx, setIfAbsentScript, p)
}

func (c *redisAboutCache) run(ctx context.Context, script *redis.Script, p *about.Profile) (bool, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return false, fmt.Errorf("marshal about profile: %w", err)
	}
	stored, err := script.Run(ctx, c.rdb, []string{activeAboutKey},
		p.UpdatedAt.UnixMicro(), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("redis store %s: %w", activeAboutKey, err)
	}
	if stored == 0 {
		c.logger.Debug("About cache kept newer entry", zap.String("profile_id", p.ID.String()))
	}
	return stored == 1, nil
}

func (c *redisAboutCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, activeAboutKey).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", activeAboutKey, err)
	}
	return nil
}
