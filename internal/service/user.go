package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasswordHasher turns a plain password into the stored hash
type PasswordHasher func(password string) (string, error)

// UserService handles back-office account administration
type UserService struct {
	repo         repository.UserRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	hash         PasswordHasher
	validator    *validator.Validate
}

// NewUserService creates a new user service. hash is normally auth.HashPassword.
func NewUserService(repo repository.UserRepositoryInterface, employeeRepo repository.EmployeeRepositoryInterface, hash PasswordHasher, validator *validator.Validate) *UserService {
	return &UserService{
		repo:         repo,
		employeeRepo: employeeRepo,
		hash:         hash,
		validator:    validator,
	}
}

// CreateUserRequest represents the data needed to provision an account.
// Accounts without a password can only sign in through gov.br.
type CreateUserRequest struct {
	Email      string     `json:"email" validate:"required,email,max=255"`
	FullName   string     `json:"full_name" validate:"required,min=3,max=200"`
	Password   string     `json:"password" validate:"omitempty,min=8,max=72"`
	Role       string     `json:"role" validate:"required,oneof=admin hr finance procurement governance communications inventory credentialing viewer" example:"viewer"`
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
}

// UpdateUserRequest changes role, activation and the linked employee
type UpdateUserRequest struct {
	FullName   string     `json:"full_name" validate:"required,min=3,max=200"`
	Role       string     `json:"role" validate:"required,oneof=admin hr finance procurement governance communications inventory credentialing viewer"`
	IsActive   *bool      `json:"is_active" validate:"required"`
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
}

// ResetPasswordRequest sets a new local password
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateUser provisions a back-office account
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}
	if err := s.checkEmployee(req.EmployeeID); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:      email,
		FullName:   strings.TrimSpace(req.FullName),
		Role:       models.Role(req.Role),
		IsActive:   true,
		EmployeeID: req.EmployeeID,
	}
	if req.Password != "" {
		hash, err := s.hash(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.CreatedBy = actor(ctx)
	user.UpdatedBy = user.CreatedBy

	if err := s.repo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user": user.Email,
		"role": user.Role,
	}).Info("user created")
	return user, nil
}

func (s *UserService) checkEmployee(id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.employeeRepo.GetByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("employee_id", "employee does not exist")
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUserNotFound, "user")
	}
	return user, nil
}

// ListUsers returns a page of users
func (s *UserService) ListUsers(page, pageSize int) (*ListResponse[models.User], error) {
	page, pageSize = NormalizePage(page, pageSize)
	users, total, err := s.repo.GetAll(pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return newList(users, total, page, pageSize), nil
}

// UpdateUser changes a user's role and activation. Admins cannot demote or
// deactivate themselves.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*models.User, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrUserNotFound, "user")
	}
	role := models.Role(req.Role)
	if user.Email == actor(ctx) && (role != user.Role || !*req.IsActive) {
		return nil, apperrors.NewConflictError("you cannot change your own role or deactivate yourself")
	}
	if err := s.checkEmployee(req.EmployeeID); err != nil {
		return nil, err
	}

	user.FullName = strings.TrimSpace(req.FullName)
	user.Role = role
	user.IsActive = *req.IsActive
	user.EmployeeID = req.EmployeeID
	user.UpdatedBy = actor(ctx)
	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ResetPassword replaces a user's local password
func (s *UserService) ResetPassword(ctx context.Context, id uuid.UUID, req *ResetPasswordRequest) error {
	if err := validation.Struct(s.validator, req); err != nil {
		return err
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return lookup(err, apperrors.ErrUserNotFound, "user")
	}
	hash, err := s.hash(req.Password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedBy = actor(ctx)
	if err := s.repo.Update(user); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	logger.WithContext(ctx).WithField("user", user.Email).Info("password reset")
	return nil
}
