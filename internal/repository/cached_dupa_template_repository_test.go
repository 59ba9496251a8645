package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kyrhyl/cost-estimate-application-sub000/internal/model"
	"github.com/redis/go-redis/v9"
)

// fakeCache is an in-memory Cache. failAll makes every call return an error.
type fakeCache struct {
	data    map[string]string
	sets    int
	dels    []string
	failAll bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

var errCacheDown = errors.New("connection refused")

func (c *fakeCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if c.failAll {
		return redis.NewStringResult("", errCacheDown)
	}
	v, ok := c.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (c *fakeCache) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if c.failAll {
		return redis.NewStatusResult("", errCacheDown)
	}
	c.sets++
	c.data[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if c.failAll {
		return redis.NewIntResult(0, errCacheDown)
	}
	c.dels = append(c.dels, keys...)
	for _, k := range keys {
		delete(c.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

// mockTemplateRepo counts GetByID calls.
type mockTemplateRepo struct {
	templates map[string]*model.DUPATemplate
	gets      int
	updateErr error
}

func (m *mockTemplateRepo) List(ctx context.Context, f model.DUPATemplateFilter) ([]*model.DUPATemplate, error) {
	return nil, nil
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id string) (*model.DUPATemplate, error) {
	m.gets++
	t, ok := m.templates[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockTemplateRepo) Create(ctx context.Context, t *model.DUPATemplate) error { return nil }

func (m *mockTemplateRepo) Update(ctx context.Context, t *model.DUPATemplate) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.templates[t.ID] = t
	return nil
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.templates[id]; !ok {
		return ErrNotFound
	}
	delete(m.templates, id)
	return nil
}

func newTemplateFixture() (*mockTemplateRepo, *fakeCache, *CachedDUPATemplateRepository) {
	next := &mockTemplateRepo{templates: map[string]*model.DUPATemplate{
		"t1": {ID: "t1", PayItemNumber: "801(1)", Description: "Clearing and Grubbing", Unit: "ha",
			Labor: []model.LaborEntry{{Designation: model.DesignationForeman, NoOfPersons: 1, NoOfHours: 8}}},
	}}
	cache := newFakeCache()
	return next, cache, NewCachedDUPATemplateRepository(next, cache, time.Minute)
}

func TestCachedDUPATemplate_GetByID_ReadThrough(t *testing.T) {
	next, cache, repo := newTemplateFixture()
	ctx := context.Background()

	first, err := repo.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	second, err := repo.GetByID(ctx, "t1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if next.gets != 1 {
		t.Errorf("underlying GetByID calls = %d, want 1", next.gets)
	}
	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
	if second.PayItemNumber != first.PayItemNumber || len(second.Labor) != 1 {
		t.Errorf("cached template = %+v, want %+v", second, first)
	}
	if second.Labor[0].Designation != model.DesignationForeman {
		t.Errorf("cached designation = %q", second.Labor[0].Designation)
	}
}

func TestCachedDUPATemplate_GetByID_NotFoundIsNotCached(t *testing.T) {
	_, cache, repo := newTemplateFixture()

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrNotFound", err)
	}
	if cache.sets != 0 {
		t.Errorf("cache sets = %d, want 0", cache.sets)
	}
}

func TestCachedDUPATemplate_CacheDownFallsThrough(t *testing.T) {
	next, cache, repo := newTemplateFixture()
	cache.failAll = true

	for i := 0; i < 2; i++ {
		if _, err := repo.GetByID(context.Background(), "t1"); err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
	}
	if next.gets != 2 {
		t.Errorf("underlying GetByID calls = %d, want 2", next.gets)
	}
}

func TestCachedDUPATemplate_UpdateInvalidates(t *testing.T) {
	next, cache, repo := newTemplateFixture()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	updated := &model.DUPATemplate{ID: "t1", PayItemNumber: "801(1)", Description: "Clearing", Unit: "ha"}
	if err := repo.Update(ctx, updated); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if _, ok := cache.data[dupaTemplateKey("t1")]; ok {
		t.Error("cache entry survived Update")
	}

	got, err := repo.GetByID(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Description != "Clearing" {
		t.Errorf("Description = %q, want Clearing", got.Description)
	}
	if next.gets != 2 {
		t.Errorf("underlying GetByID calls = %d, want 2", next.gets)
	}
}

func TestCachedDUPATemplate_FailedUpdateKeepsCache(t *testing.T) {
	next, cache, repo := newTemplateFixture()
	ctx := context.Background()
	next.updateErr = ErrNotFound

	if _, err := repo.GetByID(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Update(ctx, &model.DUPATemplate{ID: "t1"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
	if len(cache.dels) != 0 {
		t.Errorf("cache dels = %v, want none", cache.dels)
	}
}

func TestCachedDUPATemplate_DeleteInvalidates(t *testing.T) {
	_, cache, repo := newTemplateFixture()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, "t1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(cache.dels) != 1 || cache.dels[0] != "dupa_template:t1" {
		t.Errorf("cache dels = %v, want [dupa_template:t1]", cache.dels)
	}
	if _, err := repo.GetByID(ctx, "t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() after Delete error = %v, want ErrNotFound", err)
	}
}
