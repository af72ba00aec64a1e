package settings

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

type Service interface {
	Get(ctx context.Context, key string) (*Setting, error)
	// GetString returns the value for key, or fallback when the key is unset.
	GetString(ctx context.Context, key, fallback string) string
	// GetInt returns the value for key parsed as int, or fallback when the
	// key is unset or not a number.
	GetInt(ctx context.Context, key string, fallback int) int
	ListAll(ctx context.Context) ([]*Setting, error)
	Set(ctx context.Context, key, value string) (*Setting, error)
	Delete(ctx context.Context, key string) error
}

// service caches settings in memory; the cabin has a handful of settings
// that are read on nearly every page, so reads should not hit the database.
// Writes go through Set/Delete which invalidate the cached entry.
type service struct {
	repo Repository

	mu    sync.RWMutex
	cache map[string]Setting
}

func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		cache: make(map[string]Setting),
	}
}

func (s *service) Get(ctx context.Context, key string) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrKeyRequired
	}

	s.mu.RLock()
	if cached, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		cp := cached
		return &cp, nil
	}
	s.mu.RUnlock()

	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = *setting
	s.mu.Unlock()

	return setting, nil
}

func (s *service) GetString(ctx context.Context, key, fallback string) string {
	setting, err := s.Get(ctx, key)
	if err != nil {
		return fallback
	}
	return setting.Value
}

func (s *service) GetInt(ctx context.Context, key string, fallback int) int {
	setting, err := s.Get(ctx, key)
	if err != nil {
		return fallback
	}
	v, err := strconv.Atoi(strings.TrimSpace(setting.Value))
	if err != nil {
		return fallback
	}
	return v
}

func (s *service) ListAll(ctx context.Context) ([]*Setting, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Set(ctx context.Context, key, value string) (*Setting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrKeyRequired
	}

	setting, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[key] = *setting
	s.mu.Unlock()

	return setting, nil
}

func (s *service) Delete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrKeyRequired
	}

	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	return nil
}
