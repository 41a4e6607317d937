package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/storage"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MeetingService handles council meetings and their minutes
type MeetingService struct {
	repo      repository.MeetingRepositoryInterface
	files     storage.Store
	validator *validator.Validate
	now       func() time.Time
}

// NewMeetingService creates a new meeting service
func NewMeetingService(repo repository.MeetingRepositoryInterface, files storage.Store, validator *validator.Validate) *MeetingService {
	return &MeetingService{
		repo:      repo,
		files:     files,
		validator: validator,
		now:       time.Now,
	}
}

// MeetingRequest represents the request to create or update a meeting
type MeetingRequest struct {
	Title    string    `json:"title" validate:"required,max=200"`
	Kind     string    `json:"kind" validate:"omitempty,oneof=ordinary extraordinary"`
	Date     time.Time `json:"date" validate:"required" example:"2024-05-10T14:00:00-03:00"`
	Location string    `json:"location" validate:"max=200"`
	Agenda   string    `json:"agenda"`
	Status   string    `json:"status" validate:"omitempty,oneof=scheduled held cancelled"`
}

func (r *MeetingRequest) apply(m *models.Meeting) {
	m.Title = strings.TrimSpace(r.Title)
	m.Kind = models.MeetingKind(r.Kind)
	if m.Kind == "" {
		m.Kind = models.MeetingKindOrdinary
	}
	m.Date = r.Date
	m.Location = r.Location
	m.Agenda = r.Agenda
	if r.Status != "" {
		m.Status = models.MeetingStatus(r.Status)
	}
}

// Create schedules a meeting
func (s *MeetingService) Create(ctx context.Context, req *MeetingRequest) (*models.Meeting, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	meeting := &models.Meeting{Status: models.MeetingStatusScheduled}
	req.apply(meeting)
	meeting.CreatedBy = actor(ctx)
	meeting.UpdatedBy = meeting.CreatedBy

	if err := s.repo.Create(meeting); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return meeting, nil
}

// GetByID retrieves a meeting by ID
func (s *MeetingService) GetByID(id uuid.UUID) (*models.Meeting, error) {
	meeting, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrMeetingNotFound, "meeting")
	}
	return meeting, nil
}

// List returns meetings; upcoming selects future (true) or past (false)
// meetings, nil lists all of them
func (s *MeetingService) List(upcoming *bool, page, pageSize int) (*ListResponse[models.Meeting], error) {
	page, pageSize = NormalizePage(page, pageSize)
	filter := repository.MeetingFilter{Upcoming: upcoming, Now: s.now()}
	meetings, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return newList(meetings, total, page, pageSize), nil
}

// Update updates a meeting
func (s *MeetingService) Update(ctx context.Context, id uuid.UUID, req *MeetingRequest) (*models.Meeting, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	meeting, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrMeetingNotFound, "meeting")
	}
	req.apply(meeting)
	meeting.UpdatedBy = actor(ctx)

	if err := s.repo.Update(meeting); err != nil {
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	return meeting, nil
}

// Delete removes a meeting and its minutes file
func (s *MeetingService) Delete(ctx context.Context, id uuid.UUID) error {
	meeting, err := s.repo.GetByID(id)
	if err != nil {
		return lookup(err, apperrors.ErrMeetingNotFound, "meeting")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	if err := s.files.Delete(meeting.MinutesPath); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("path", meeting.MinutesPath).Warn("failed to remove minutes file")
	}
	return nil
}

// UploadMinutes stores the minutes (ata) PDF of a meeting, replacing any
// previous file
func (s *MeetingService) UploadMinutes(ctx context.Context, id uuid.UUID, filename string, r io.Reader) (*models.Meeting, error) {
	meeting, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrMeetingNotFound, "meeting")
	}

	path, err := s.files.Save(storage.CategoryDocuments, filename, r)
	if err != nil {
		return nil, err
	}

	old := meeting.MinutesPath
	meeting.MinutesPath = path
	meeting.UpdatedBy = actor(ctx)
	if err := s.repo.Update(meeting); err != nil {
		_ = s.files.Delete(path)
		return nil, fmt.Errorf("failed to update meeting: %w", err)
	}
	if err := s.files.Delete(old); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("path", old).Warn("failed to remove previous minutes file")
	}
	return meeting, nil
}
