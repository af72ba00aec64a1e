package todo

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	UserID      string
	CategoryID  *string
	Title       string
	Description string
	DueDate     *time.Time
}

type UpdateRequest struct {
	CategoryID  *string
	Title       *string
	Description *string
	Status      *string
	DueDate     *time.Time
	ClearDue    bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Todo, error)
	GetByID(ctx context.Context, id string) (*Todo, error)
	List(ctx context.Context, filter Filter) ([]*Todo, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Todo, error)
	Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error

	AddComment(ctx context.Context, todoID, userID, content string) (*Comment, error)
	ListComments(ctx context.Context, todoID string) ([]*Comment, error)
	DeleteComment(ctx context.Context, commentID, deleterUserID string, isAdmin bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Todo, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	t := &Todo{
		UserID:      req.UserID,
		CategoryID:  req.CategoryID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      StatusOpen,
		DueDate:     req.DueDate,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Todo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Todo, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Marking a todo done is open to everyone in the household; all other
	// edits belong to the creator or an admin.
	statusOnly := req.Title == nil && req.Description == nil &&
		req.CategoryID == nil && req.DueDate == nil && !req.ClearDue
	if !statusOnly && t.UserID != updaterUserID && !isAdmin {
		return nil, ErrPermissionDenied
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		t.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			t.CategoryID = nil
		} else {
			t.CategoryID = req.CategoryID
		}
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	} else if req.ClearDue {
		t.DueDate = nil
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusOpen && st != StatusDone {
			return nil, ErrInvalidStatus
		}
		t.Status = st
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if t.UserID != deleterUserID && !isAdmin {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) AddComment(ctx context.Context, todoID, userID, content string) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentRequired
	}

	// The todo must exist; comments hang one level below it.
	if _, err := s.repo.GetByID(ctx, todoID); err != nil {
		return nil, err
	}

	c := &Comment{
		TodoID:  todoID,
		UserID:  userID,
		Content: strings.TrimSpace(content),
	}

	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListComments(ctx context.Context, todoID string) ([]*Comment, error) {
	if _, err := s.repo.GetByID(ctx, todoID); err != nil {
		return nil, err
	}
	return s.repo.ListComments(ctx, todoID)
}

func (s *service) DeleteComment(ctx context.Context, commentID, deleterUserID string, isAdmin bool) error {
	c, err := s.repo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}

	if c.UserID != deleterUserID && !isAdmin {
		return ErrPermissionDenied
	}

	return s.repo.DeleteComment(ctx, commentID)
}
