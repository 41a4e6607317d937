package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this CPF"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Fields carries per-field
// messages when the failure came from struct validation.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents a request that is valid but not allowed in the
// current state of the entity (e.g. editing a closed payroll run)
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrUnitNotFound            = &NotFoundError{Entity: "unit"}
	ErrPositionNotFound        = &NotFoundError{Entity: "position"}
	ErrEmployeeNotFound        = &NotFoundError{Entity: "employee"}
	ErrAssignmentNotFound      = &NotFoundError{Entity: "assignment"}
	ErrPayrollRunNotFound      = &NotFoundError{Entity: "payroll run"}
	ErrPayrollEntryNotFound    = &NotFoundError{Entity: "payroll entry"}
	ErrProcurementNotFound     = &NotFoundError{Entity: "procurement case"}
	ErrChecklistItemNotFound   = &NotFoundError{Entity: "checklist item"}
	ErrMeetingNotFound         = &NotFoundError{Entity: "meeting"}
	ErrPortariaNotFound        = &NotFoundError{Entity: "portaria"}
	ErrNewsNotFound            = &NotFoundError{Entity: "news article"}
	ErrGalleryNotFound         = &NotFoundError{Entity: "gallery"}
	ErrPhotoNotFound           = &NotFoundError{Entity: "photo"}
	ErrPageNotFound            = &NotFoundError{Entity: "page"}
	ErrAssetNotFound           = &NotFoundError{Entity: "asset"}
	ErrFederationNotFound      = &NotFoundError{Entity: "federation"}
	ErrSchoolNotFound          = &NotFoundError{Entity: "school"}
	ErrPreRegistrationNotFound = &NotFoundError{Entity: "pre-registration"}
	ErrSchoolManagerNotFound   = &NotFoundError{Entity: "school manager"}
	ErrFileNotFound            = &NotFoundError{Entity: "file"}
)

// Already Exists Errors
var (
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrUnitExists            = &AlreadyExistsError{Entity: "unit", Context: "with this code"}
	ErrPositionExists        = &AlreadyExistsError{Entity: "position", Context: "with this code"}
	ErrEmployeeExists        = &AlreadyExistsError{Entity: "employee", Context: "with this CPF or registration number"}
	ErrPayrollRunExists      = &AlreadyExistsError{Entity: "payroll run", Context: "for this period and kind"}
	ErrPayrollEntryExists    = &AlreadyExistsError{Entity: "payroll entry", Context: "for this employee in the run"}
	ErrProcurementExists     = &AlreadyExistsError{Entity: "procurement case", Context: "with this process number"}
	ErrPortariaExists        = &AlreadyExistsError{Entity: "portaria", Context: "with this number in the year"}
	ErrNewsExists            = &AlreadyExistsError{Entity: "news article", Context: "with this slug"}
	ErrPageExists            = &AlreadyExistsError{Entity: "page", Context: "with this slug"}
	ErrAssetExists           = &AlreadyExistsError{Entity: "asset", Context: "with this tag"}
	ErrFederationExists      = &AlreadyExistsError{Entity: "federation", Context: "with this acronym"}
	ErrSchoolExists          = &AlreadyExistsError{Entity: "school", Context: "with this INEP code"}
	ErrPreRegistrationExists = &AlreadyExistsError{Entity: "pre-registration", Context: "pending for this CPF"}
	ErrSchoolManagerExists   = &AlreadyExistsError{Entity: "school manager", Context: "with this CPF"}
)

// Business Logic Errors
var (
	ErrInvalidStatusTransition = &ConflictError{Message: "invalid status transition"}
	ErrPayrollRunNotEditable   = &ConflictError{Message: "payroll run entries can only change while the run is open or reopened"}
	ErrPortariaNotEditable     = &ConflictError{Message: "only draft portarias can be edited"}
	ErrChecklistIncomplete     = &ConflictError{Message: "all required checklist items must be done"}
	ErrProcurementNotEditable  = &ConflictError{Message: "checklist can only change while the case is in progress"}
	ErrAssetWrittenOff         = &ConflictError{Message: "asset has been written off"}
	ErrUnitHasAssignments      = &ConflictError{Message: "unit has active assignments"}
	ErrUnitCycle               = &ConflictError{Message: "unit cannot be placed under itself or one of its descendants"}
	ErrNoActiveAssignment      = &ConflictError{Message: "employee has no active assignment"}
	ErrPreRegistrationReviewed = &ConflictError{Message: "pre-registration has already been reviewed"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrUnsupportedFileType     = errors.New("unsupported file type")
	ErrFileTooLarge            = errors.New("file exceeds the maximum upload size")
	ErrInvalidPath             = errors.New("invalid file path")
	ErrDirectoryDisabled       = &ConfigurationError{Message: "directory search is not configured"}
	ErrProviderNotConfigured   = &ConfigurationError{Message: "provider is not configured"}
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidRefreshToken = &AuthenticationError{Message: "invalid refresh token"}
	ErrRefreshTokenExpired = &AuthenticationError{Message: "refresh token has expired"}
	ErrTokenRevoked        = &AuthenticationError{Message: "token has been revoked"}
	ErrInvalidOAuthState   = &AuthenticationError{Message: "invalid oauth state"}
	ErrAccountNotLinked    = &AuthorizationError{Message: "no active account is linked to this identity"}
	ErrPermissionDenied    = &AuthorizationError{Message: "permission denied"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewFieldsValidationError creates a ValidationError carrying per-field messages
func NewFieldsValidationError(fields map[string]string) error {
	return &ValidationError{Message: "request has invalid fields", Fields: fields}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
