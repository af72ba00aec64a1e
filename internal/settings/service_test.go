package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	values map[string]string
	gets   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{values: make(map[string]string)}
}

func (r *fakeRepository) Get(_ context.Context, key string) (*Setting, error) {
	r.gets++
	v, ok := r.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &Setting{Key: key, Value: v, UpdatedAt: time.Now().UTC()}, nil
}

func (r *fakeRepository) ListAll(_ context.Context) ([]*Setting, error) {
	out := make([]*Setting, 0, len(r.values))
	for k, v := range r.values {
		out = append(out, &Setting{Key: k, Value: v})
	}
	return out, nil
}

func (r *fakeRepository) Upsert(_ context.Context, key, value string) (*Setting, error) {
	r.values[key] = value
	return &Setting{Key: key, Value: value, UpdatedAt: time.Now().UTC()}, nil
}

func (r *fakeRepository) Delete(_ context.Context, key string) error {
	if _, ok := r.values[key]; !ok {
		return ErrNotFound
	}
	delete(r.values, key)
	return nil
}

func TestServiceCachesReads(t *testing.T) {
	repo := newFakeRepository()
	repo.values[KeyCabinName] = "Alpenhütte"

	svc := NewService(repo)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		got, err := svc.Get(ctx, KeyCabinName)
		require.NoError(t, err)
		assert.Equal(t, "Alpenhütte", got.Value)
	}

	assert.Equal(t, 1, repo.gets, "repeated reads must be served from cache")
}

func TestServiceSetUpdatesCache(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Set(ctx, KeyMaxGuests, "8")
	require.NoError(t, err)

	assert.Equal(t, 8, svc.GetInt(ctx, KeyMaxGuests, 0))
	assert.Zero(t, repo.gets, "Set must prime the cache")

	_, err = svc.Set(ctx, KeyMaxGuests, "10")
	require.NoError(t, err)
	assert.Equal(t, 10, svc.GetInt(ctx, KeyMaxGuests, 0))
}

func TestServiceFallbacks(t *testing.T) {
	repo := newFakeRepository()
	repo.values[KeyBookingNotice] = "not a number"

	svc := NewService(repo)
	ctx := context.Background()

	assert.Equal(t, "fallback", svc.GetString(ctx, "missing", "fallback"))
	assert.Equal(t, 7, svc.GetInt(ctx, KeyBookingNotice, 7))
}

func TestServiceDeleteInvalidates(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Set(ctx, KeyCabinName, "Berghaus")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, KeyCabinName))

	_, err = svc.Get(ctx, KeyCabinName)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServiceEmptyKey(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Get(ctx, "  ")
	assert.ErrorIs(t, err, ErrKeyRequired)

	_, err = svc.Set(ctx, "", "value")
	assert.ErrorIs(t, err, ErrKeyRequired)
}
