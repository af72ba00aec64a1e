package photo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/storage"
)

const (
	maxUploadBytes  = 10 << 20
	thumbnailWidth  = 400
	thumbnailHeight = 400
)

// UploadInput carries the multipart upload together with its metadata.
type UploadInput struct {
	FileHeader *multipart.FileHeader
	UserID     string
	Caption    string
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*Photo, error)
	Get(ctx context.Context, id string) (*Photo, error)
	List(ctx context.Context, page, pageSize int) ([]*Photo, int, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	UpdateCaption(ctx context.Context, id, actorID string, actorIsAdmin bool, caption string) (*Photo, error)
	Delete(ctx context.Context, id, actorID string, actorIsAdmin bool) error
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*Photo, error) {
	if in.FileHeader.Size > maxUploadBytes {
		return nil, ErrTooLarge
	}

	contentType := in.FileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, err := in.FileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	// Buffer the whole image so it can be read twice: once for the
	// original, once for the thumbnail.
	fileBytes, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}
	if int64(len(fileBytes)) > maxUploadBytes {
		return nil, ErrTooLarge
	}

	photoID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(in.FileHeader.Filename))

	// Sharding path: photos/ab/UUID.ext
	shard := photoID[:2]
	storagePath := fmt.Sprintf("photos/%s/%s%s", shard, photoID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("save photo to storage failed: %w", err)
	}

	// Thumbnail failure does not fail the upload.
	var thumbnailPath *string
	if thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), thumbnailWidth, thumbnailHeight); err == nil {
		tPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            photoID,
		UserID:        in.UserID,
		Caption:       in.Caption,
		Filename:      in.FileHeader.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          int64(len(fileBytes)),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (*Photo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, page, pageSize int) ([]*Photo, int, error) {
	return s.repo.List(ctx, page, pageSize)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve photo from storage failed: %w", err)
	}
	return stream, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.ThumbnailPath == nil {
		return nil, nil, ErrNotFound
	}

	stream, err := s.storage.Get(ctx, *p.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail from storage failed: %w", err)
	}
	return stream, p, nil
}

func (s *service) UpdateCaption(ctx context.Context, id, actorID string, actorIsAdmin bool, caption string) (*Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != actorID && !actorIsAdmin {
		return nil, ErrPermissionDenied
	}

	if err := s.repo.UpdateCaption(ctx, id, caption); err != nil {
		return nil, err
	}
	p.Caption = caption
	return p, nil
}

func (s *service) Delete(ctx context.Context, id, actorID string, actorIsAdmin bool) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != actorID && !actorIsAdmin {
		return ErrPermissionDenied
	}

	// Best effort storage cleanup; the DB row is the source of truth.
	_ = s.storage.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *p.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
