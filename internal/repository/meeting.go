package repository

import (
	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingRepository handles database operations for meetings
type MeetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// Create creates a new meeting
func (r *MeetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

// GetByID retrieves a meeting by ID
func (r *MeetingRepository) GetByID(id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	if err := r.db.First(&meeting, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &meeting, nil
}

// List retrieves meetings; upcoming ones ascending, past ones descending
func (r *MeetingRepository) List(filter MeetingFilter, limit, offset int) ([]models.Meeting, int64, error) {
	var meetings []models.Meeting
	var total int64

	query := r.db.Model(&models.Meeting{})
	order := "date DESC"
	if filter.Upcoming != nil {
		if *filter.Upcoming {
			query = query.Where("date >= ?", filter.Now)
			order = "date ASC"
		} else {
			query = query.Where("date < ?", filter.Now)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order(order).Limit(limit).Offset(offset).Find(&meetings).Error
	if err != nil {
		return nil, 0, err
	}

	return meetings, total, nil
}

// Update updates a meeting
func (r *MeetingRepository) Update(meeting *models.Meeting) error {
	return r.db.Save(meeting).Error
}

// Delete deletes a meeting
func (r *MeetingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Meeting{}, "id = ?", id).Error
}
