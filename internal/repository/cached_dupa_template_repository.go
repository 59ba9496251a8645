package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/redis/go-redis/v9"
)

const dupaTemplateKeyPrefix = "dupa_template:"

// Cache is the subset of *redis.Client used for template caching.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedDUPATemplateRepository wraps a DUPATemplateRepository with a
// read-through Redis cache on GetByID. Cache failures fall through to next.
type CachedDUPATemplateRepository struct {
	next  DUPATemplateRepository
	cache Cache
	ttl   time.Duration
}

// NewCachedDUPATemplateRepository returns a caching decorator around next.
func NewCachedDUPATemplateRepository(next DUPATemplateRepository, cache Cache, ttl time.Duration) *CachedDUPATemplateRepository {
	return &CachedDUPATemplateRepository{next: next, cache: cache, ttl: ttl}
}

func dupaTemplateKey(id string) string { return dupaTemplateKeyPrefix + id }

// List is not cached.
func (r *CachedDUPATemplateRepository) List(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error) {
	return r.next.List(ctx, f)
}

// GetByID serves from cache when possible and populates it on a miss.
func (r *CachedDUPATemplateRepository) GetByID(ctx context.Context, id string) (*model.DUPATemplate, error) {
	key := dupaTemplateKey(id)
	raw, err := r.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var t model.DUPATemplate
		if err := json.Unmarshal(raw, &t); err == nil {
			return &t, nil
		}
		slog.WarnContext(ctx, "discarding undecodable cached template", "key", key)
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "template cache read failed", "key", key, "error", err)
	}

	t, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(t); err == nil {
		if err := r.cache.Set(ctx, key, b, r.ttl).Err(); err != nil {
			slog.WarnContext(ctx, "template cache write failed", "key", key, "error", err)
		}
	}
	return t, nil
}

// Create does not touch the cache.
func (r *CachedDUPATemplateRepository) Create(ctx context.Context, t *model.DUPATemplate) error {
	return r.next.Create(ctx, t)
}

// Update writes through and invalidates the cached copy.
func (r *CachedDUPATemplateRepository) Update(ctx context.Context, t *model.DUPATemplate) error {
	if err := r.next.Update(ctx, t); err != nil {
		return err
	}
	r.invalidate(ctx, t.ID)
	return nil
}

// Delete removes the template and its cached copy.
func (r *CachedDUPATemplateRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedDUPATemplateRepository) invalidate(ctx context.Context, id string) {
	if err := r.cache.Del(ctx, dupaTemplateKey(id)).Err(); err != nil {
		slog.WarnContext(ctx, "template cache invalidation failed", "id", id, "error", err)
	}
}
