package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/storage"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryService handles photo galleries
type GalleryService struct {
	repo      repository.GalleryRepositoryInterface
	files     storage.Store
	validator *validator.Validate
}

// NewGalleryService creates a new gallery service
func NewGalleryService(repo repository.GalleryRepositoryInterface, files storage.Store, validator *validator.Validate) *GalleryService {
	return &GalleryService{
		repo:      repo,
		files:     files,
		validator: validator,
	}
}

// GalleryRequest represents the request to create or update a gallery
type GalleryRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	EventDate   string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Published   bool   `json:"published"`
}

// ReorderPhotosRequest lists every photo of the gallery in the new order
type ReorderPhotosRequest struct {
	PhotoIDs []uuid.UUID `json:"photo_ids" validate:"required,min=1"`
}

func (r *GalleryRequest) apply(g *models.Gallery) error {
	eventDate, err := parseOptionalDate("event_date", r.EventDate)
	if err != nil {
		return err
	}
	g.Title = strings.TrimSpace(r.Title)
	g.Description = r.Description
	g.EventDate = eventDate
	g.Published = r.Published
	return nil
}

// Create creates a gallery
func (s *GalleryService) Create(ctx context.Context, req *GalleryRequest) (*models.Gallery, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	gallery := &models.Gallery{}
	if err := req.apply(gallery); err != nil {
		return nil, err
	}
	gallery.CreatedBy = actor(ctx)
	gallery.UpdatedBy = gallery.CreatedBy

	if err := s.repo.Create(gallery); err != nil {
		return nil, fmt.Errorf("failed to create gallery: %w", err)
	}
	gallery.Photos = []models.Photo{}
	return gallery, nil
}

// GetByID retrieves a gallery with its photos in order
func (s *GalleryService) GetByID(id uuid.UUID) (*models.Gallery, error) {
	gallery, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrGalleryNotFound, "gallery")
	}
	return gallery, nil
}

// GetPublished retrieves a gallery only if it is published
func (s *GalleryService) GetPublished(id uuid.UUID) (*models.Gallery, error) {
	gallery, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !gallery.Published {
		return nil, apperrors.ErrGalleryNotFound
	}
	return gallery, nil
}

// List returns a page of galleries, latest event first
func (s *GalleryService) List(publishedOnly bool, page, pageSize int) (*ListResponse[models.Gallery], error) {
	page, pageSize = NormalizePage(page, pageSize)
	galleries, total, err := s.repo.List(publishedOnly, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	return newList(galleries, total, page, pageSize), nil
}

// Update updates a gallery
func (s *GalleryService) Update(ctx context.Context, id uuid.UUID, req *GalleryRequest) (*models.Gallery, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	gallery, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrGalleryNotFound, "gallery")
	}
	if err := req.apply(gallery); err != nil {
		return nil, err
	}
	gallery.UpdatedBy = actor(ctx)
	if err := s.repo.Update(gallery); err != nil {
		return nil, fmt.Errorf("failed to update gallery: %w", err)
	}
	return gallery, nil
}

// Delete removes a gallery and its photo files
func (s *GalleryService) Delete(ctx context.Context, id uuid.UUID) error {
	gallery, err := s.repo.GetByID(id)
	if err != nil {
		return lookup(err, apperrors.ErrGalleryNotFound, "gallery")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete gallery: %w", err)
	}
	for _, photo := range gallery.Photos {
		if err := s.files.Delete(photo.Path); err != nil {
			logger.WithContext(ctx).WithError(err).WithField("path", photo.Path).Warn("failed to remove photo file")
		}
	}
	return nil
}

// AddPhoto stores an image and appends it to the gallery
func (s *GalleryService) AddPhoto(ctx context.Context, galleryID uuid.UUID, filename, caption string, r io.Reader) (*models.Photo, error) {
	if _, err := s.repo.GetByID(galleryID); err != nil {
		return nil, lookup(err, apperrors.ErrGalleryNotFound, "gallery")
	}
	if len([]rune(caption)) > 300 {
		return nil, apperrors.NewValidationError("caption", "must be at most 300")
	}

	position, err := s.repo.NextPhotoPosition(galleryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo position: %w", err)
	}
	path, err := s.files.Save(storage.CategoryImages, filename, r)
	if err != nil {
		return nil, err
	}

	photo := &models.Photo{
		GalleryID: galleryID,
		Path:      path,
		Caption:   strings.TrimSpace(caption),
		Position:  position,
	}
	photo.CreatedBy = actor(ctx)
	photo.UpdatedBy = photo.CreatedBy
	if err := s.repo.AddPhoto(photo); err != nil {
		_ = s.files.Delete(path)
		return nil, fmt.Errorf("failed to add photo: %w", err)
	}
	return photo, nil
}

// DeletePhoto removes a photo and its file
func (s *GalleryService) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	photo, err := s.repo.GetPhoto(photoID)
	if err != nil {
		return lookup(err, apperrors.ErrPhotoNotFound, "photo")
	}
	if err := s.repo.DeletePhoto(photoID); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	if err := s.files.Delete(photo.Path); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("path", photo.Path).Warn("failed to remove photo file")
	}
	return nil
}

// ReorderPhotos sets the photo order. The request must list each photo of
// the gallery exactly once.
func (s *GalleryService) ReorderPhotos(ctx context.Context, galleryID uuid.UUID, req *ReorderPhotosRequest) (*models.Gallery, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	gallery, err := s.repo.GetByID(galleryID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrGalleryNotFound, "gallery")
	}

	current := make(map[uuid.UUID]bool, len(gallery.Photos))
	for _, p := range gallery.Photos {
		current[p.ID] = true
	}
	seen := make(map[uuid.UUID]bool, len(req.PhotoIDs))
	for _, id := range req.PhotoIDs {
		if !current[id] || seen[id] {
			return nil, apperrors.NewValidationError("photo_ids", "must list each photo of the gallery exactly once")
		}
		seen[id] = true
	}
	if len(seen) != len(current) {
		return nil, apperrors.NewValidationError("photo_ids", "must list each photo of the gallery exactly once")
	}

	if err := s.repo.ReorderPhotos(galleryID, req.PhotoIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to reorder photos: %w", err)
	}
	logger.WithContext(ctx).WithField("gallery_id", galleryID).Info("gallery photos reordered")
	return s.GetByID(galleryID)
}
