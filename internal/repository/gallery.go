package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GalleryRepository handles database operations for galleries and photos
type GalleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

// Create creates a new gallery
func (r *GalleryRepository) Create(gallery *models.Gallery) error {
	return r.db.Omit(clause.Associations).Create(gallery).Error
}

// GetByID retrieves a gallery with its photos in display order
func (r *GalleryRepository) GetByID(id uuid.UUID) (*models.Gallery, error) {
	var gallery models.Gallery
	err := r.db.Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("position, created_at")
	}).First(&gallery, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &gallery, nil
}

// List retrieves galleries, latest events first
func (r *GalleryRepository) List(publishedOnly bool, limit, offset int) ([]models.Gallery, int64, error) {
	var galleries []models.Gallery
	var total int64

	query := r.db.Model(&models.Gallery{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("event_date DESC NULLS LAST, created_at DESC").
		Limit(limit).Offset(offset).Find(&galleries).Error
	if err != nil {
		return nil, 0, err
	}

	return galleries, total, nil
}

// Update updates a gallery (photos are managed separately)
func (r *GalleryRepository) Update(gallery *models.Gallery) error {
	return r.db.Omit(clause.Associations).Save(gallery).Error
}

// Delete deletes a gallery and its photos
func (r *GalleryRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gallery_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Gallery{}, "id = ?", id).Error
	})
}

// AddPhoto adds a photo to a gallery
func (r *GalleryRepository) AddPhoto(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

// GetPhoto retrieves a photo by ID
func (r *GalleryRepository) GetPhoto(id uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	if err := r.db.First(&photo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

// DeletePhoto deletes a photo
func (r *GalleryRepository) DeletePhoto(id uuid.UUID) error {
	return r.db.Delete(&models.Photo{}, "id = ?", id).Error
}

// NextPhotoPosition returns the position after the last photo of a gallery
func (r *GalleryRepository) NextPhotoPosition(galleryID uuid.UUID) (int, error) {
	var max int
	err := r.db.Model(&models.Photo{}).
		Select("COALESCE(MAX(position), -1)").
		Where("gallery_id = ?", galleryID).
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// ReorderPhotos sets each photo's position to its index in order
func (r *GalleryRepository) ReorderPhotos(galleryID uuid.UUID, order []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, photoID := range order {
			res := tx.Model(&models.Photo{}).
				Where("id = ? AND gallery_id = ?", photoID, galleryID).
				Update("position", i)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
