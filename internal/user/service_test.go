package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	byID map[string]*User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]*User)}
}

func (r *fakeRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *fakeRepository) Create(ctx context.Context, u *User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now().UTC()
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *fakeRepository) UpdateLastLogin(ctx context.Context, id string, t time.Time) error {
	if u, ok := r.byID[id]; ok {
		u.LastLoginAt = &t
	}
	return nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range r.byID {
		clone := *u
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(ctx context.Context, u *User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func TestServiceRegister(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, fakeHasher{})
	ctx := context.Background()

	u, err := svc.Register(ctx, "Anna@Example.com", "supersecret", "Anna")
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", u.Email)
	require.NotNil(t, u.DisplayName)
	assert.Equal(t, "Anna", *u.DisplayName)
	assert.True(t, u.IsActive)

	t.Run("whitespace-only display name is stored as unset", func(t *testing.T) {
		u, err := svc.Register(ctx, "ben@example.com", "supersecret", "   ")
		require.NoError(t, err)
		assert.Nil(t, u.DisplayName)
	})

	t.Run("short password is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "carl@example.com", "short", "Carl")
		assert.Error(t, err)
	})
}

func TestServiceUpdateDisplayName(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, fakeHasher{})
	ctx := context.Background()

	u, err := svc.Register(ctx, "anna@example.com", "supersecret", "Anna")
	require.NoError(t, err)

	t.Run("empty string clears the name", func(t *testing.T) {
		empty := ""
		updated, err := svc.Update(ctx, u.ID, UpdateRequest{DisplayName: &empty})
		require.NoError(t, err)
		assert.Nil(t, updated.DisplayName)

		stored, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.DisplayName)
	})

	t.Run("new name is trimmed and persisted", func(t *testing.T) {
		name := "  Anna B.  "
		updated, err := svc.Update(ctx, u.ID, UpdateRequest{DisplayName: &name})
		require.NoError(t, err)
		require.NotNil(t, updated.DisplayName)
		assert.Equal(t, "Anna B.", *updated.DisplayName)
	})
}

func TestServiceLogin(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, fakeHasher{})
	ctx := context.Background()

	u, err := svc.Register(ctx, "anna@example.com", "supersecret", "Anna")
	require.NoError(t, err)

	logged, err := svc.Login(ctx, "anna@example.com", "supersecret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "anna@example.com", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		inactive := false
		_, err := svc.Update(ctx, u.ID, UpdateRequest{IsActive: &inactive})
		require.NoError(t, err)

		_, err = svc.Login(ctx, "anna@example.com", "supersecret")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}
