package category

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name  string
	Color string
}

type UpdateRequest struct {
	Name  *string
	Color *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Category, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	ListAll(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Category, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

const defaultColor = "#6b7280"

func (s *service) Create(ctx context.Context, req CreateRequest) (*Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = defaultColor
	}

	cat := &Category{
		Name:  name,
		Color: color,
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListAll(ctx context.Context) ([]*Category, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		cat.Name = name
	}
	if req.Color != nil {
		cat.Color = strings.TrimSpace(*req.Color)
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
