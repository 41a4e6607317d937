package repository

import (
	"time"

	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Count() (int64, error)
}

// UnitRepositoryInterface defines the interface for unit repository operations
type UnitRepositoryInterface interface {
	Create(unit *models.Unit) error
	GetByID(id uuid.UUID) (*models.Unit, error)
	GetByCode(code string) (*models.Unit, error)
	GetAll() ([]models.Unit, error)
	Update(unit *models.Unit) error
	Delete(id uuid.UUID) error
	CountActiveAssignments(unitID uuid.UUID) (int64, error)
}

// PositionRepositoryInterface defines the interface for position repository operations
type PositionRepositoryInterface interface {
	Create(position *models.Position) error
	GetByID(id uuid.UUID) (*models.Position, error)
	GetByCode(code string) (*models.Position, error)
	GetAll(limit, offset int) ([]models.Position, int64, error)
	Update(position *models.Position) error
	Delete(id uuid.UUID) error
}

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByCPF(cpf string) (*models.Employee, error)
	GetByRegistrationNumber(number string) (*models.Employee, error)
	GetByRegistrationNumbers(numbers []string) ([]models.Employee, error)
	List(filter EmployeeFilter, limit, offset int) ([]models.Employee, int64, error)
	Update(employee *models.Employee) error
	Delete(id uuid.UUID) error
	CountByStatus(status models.EmployeeStatus) (int64, error)
}

// AssignmentRepositoryInterface defines the interface for assignment (lotação) operations
type AssignmentRepositoryInterface interface {
	GetActiveByEmployee(employeeID uuid.UUID) (*models.Assignment, error)
	GetHistory(employeeID uuid.UUID) ([]models.Assignment, error)
	Assign(next *models.Assignment, closeDate time.Time) error
	End(employeeID uuid.UUID, endDate time.Time) error
}

// PayrollRunRepositoryInterface defines the interface for payroll run operations
type PayrollRunRepositoryInterface interface {
	Create(run *models.PayrollRun) error
	GetByID(id uuid.UUID) (*models.PayrollRun, error)
	GetByPeriod(year, month int, kind models.PayrollKind) (*models.PayrollRun, error)
	List(filter PayrollRunFilter, limit, offset int) ([]models.PayrollRun, int64, error)
	ListClosedByYear(year int) ([]models.PayrollRun, error)
	Update(run *models.PayrollRun) error
	Delete(id uuid.UUID) error
	CountByStatus(statuses ...models.PayrollStatus) (int64, error)
}

// PayrollEntryRepositoryInterface defines the interface for payroll entry operations
type PayrollEntryRepositoryInterface interface {
	Create(entry *models.PayrollEntry) error
	CreateBatch(entries []models.PayrollEntry) error
	GetByID(id uuid.UUID) (*models.PayrollEntry, error)
	GetByRunAndEmployee(runID, employeeID uuid.UUID) (*models.PayrollEntry, error)
	ListByRun(runID uuid.UUID, limit, offset int) ([]models.PayrollEntry, int64, error)
	ListAllByRun(runID uuid.UUID) ([]models.PayrollEntry, error)
	EmployeeIDsInRun(runID uuid.UUID) ([]uuid.UUID, error)
	Update(entry *models.PayrollEntry) error
	Delete(id uuid.UUID) error
	Totals(runID uuid.UUID) (*EntryTotals, error)
	UnitBreakdown(runID uuid.UUID) ([]UnitTotals, error)
}

// ProcurementRepositoryInterface defines the interface for procurement case operations
type ProcurementRepositoryInterface interface {
	Create(c *models.ProcurementCase) error
	GetByID(id uuid.UUID) (*models.ProcurementCase, error)
	GetByProcessNumber(number string) (*models.ProcurementCase, error)
	List(filter ProcurementFilter, limit, offset int) ([]models.ProcurementCase, int64, error)
	Update(c *models.ProcurementCase) error
	Delete(id uuid.UUID) error
	GetItem(id uuid.UUID) (*models.ChecklistItem, error)
	UpdateItem(item *models.ChecklistItem) error
	CountByStatus(status models.ProcurementStatus) (int64, error)
}

// MeetingRepositoryInterface defines the interface for meeting operations
type MeetingRepositoryInterface interface {
	Create(meeting *models.Meeting) error
	GetByID(id uuid.UUID) (*models.Meeting, error)
	List(filter MeetingFilter, limit, offset int) ([]models.Meeting, int64, error)
	Update(meeting *models.Meeting) error
	Delete(id uuid.UUID) error
}

// PortariaRepositoryInterface defines the interface for portaria operations
type PortariaRepositoryInterface interface {
	Create(portaria *models.Portaria) error
	GetByID(id uuid.UUID) (*models.Portaria, error)
	GetByNumber(number, year int) (*models.Portaria, error)
	NextNumber(year int) (int, error)
	List(filter PortariaFilter, limit, offset int) ([]models.Portaria, int64, error)
	Update(portaria *models.Portaria) error
	Delete(id uuid.UUID) error
	CountByStatus(status models.PortariaStatus) (int64, error)
}

// NewsRepositoryInterface defines the interface for news article operations
type NewsRepositoryInterface interface {
	Create(article *models.NewsArticle) error
	GetByID(id uuid.UUID) (*models.NewsArticle, error)
	GetBySlug(slug string) (*models.NewsArticle, error)
	List(filter NewsFilter, limit, offset int) ([]models.NewsArticle, int64, error)
	Update(article *models.NewsArticle) error
	Delete(id uuid.UUID) error
}

// GalleryRepositoryInterface defines the interface for gallery and photo operations
type GalleryRepositoryInterface interface {
	Create(gallery *models.Gallery) error
	GetByID(id uuid.UUID) (*models.Gallery, error)
	List(publishedOnly bool, limit, offset int) ([]models.Gallery, int64, error)
	Update(gallery *models.Gallery) error
	Delete(id uuid.UUID) error
	AddPhoto(photo *models.Photo) error
	GetPhoto(id uuid.UUID) (*models.Photo, error)
	DeletePhoto(id uuid.UUID) error
	NextPhotoPosition(galleryID uuid.UUID) (int, error)
	ReorderPhotos(galleryID uuid.UUID, order []uuid.UUID) error
}

// PageRepositoryInterface defines the interface for institutional page operations
type PageRepositoryInterface interface {
	Create(page *models.Page) error
	GetByID(id uuid.UUID) (*models.Page, error)
	GetBySlug(slug string) (*models.Page, error)
	List(publishedOnly bool) ([]models.Page, error)
	Update(page *models.Page) error
	Delete(id uuid.UUID) error
}

// AssetRepositoryInterface defines the interface for asset inventory operations
type AssetRepositoryInterface interface {
	Create(asset *models.Asset) error
	GetByID(id uuid.UUID) (*models.Asset, error)
	GetByTag(tag string) (*models.Asset, error)
	List(filter AssetFilter, limit, offset int) ([]models.Asset, int64, error)
	Update(asset *models.Asset) error
	Delete(id uuid.UUID) error
	Transfer(asset *models.Asset, transfer *models.AssetTransfer) error
	ListTransfers(assetID uuid.UUID) ([]models.AssetTransfer, error)
	Summary() ([]AssetSummaryRow, error)
	CountByStatus(status models.AssetStatus) (int64, error)
}

// FederationRepositoryInterface defines the interface for federation operations
type FederationRepositoryInterface interface {
	Create(federation *models.Federation) error
	GetByID(id uuid.UUID) (*models.Federation, error)
	GetByAcronym(acronym string) (*models.Federation, error)
	GetAll() ([]models.Federation, error)
	Update(federation *models.Federation) error
	Delete(id uuid.UUID) error
}

// SchoolRepositoryInterface defines the interface for school operations
type SchoolRepositoryInterface interface {
	Create(school *models.School) error
	CreateBatch(schools []models.School) error
	GetByID(id uuid.UUID) (*models.School, error)
	GetByINEP(inep string) (*models.School, error)
	ExistingINEPs(ineps []string) ([]string, error)
	List(filter SchoolFilter, limit, offset int) ([]models.School, int64, error)
	Update(school *models.School) error
	Delete(id uuid.UUID) error
}

// PreRegistrationRepositoryInterface defines the interface for pre-registration operations
type PreRegistrationRepositoryInterface interface {
	Create(reg *models.PreRegistration) error
	GetByID(id uuid.UUID) (*models.PreRegistration, error)
	GetByProtocol(protocol string) (*models.PreRegistration, error)
	FindPending(cpf string, kind models.PreRegistrationKind) (*models.PreRegistration, error)
	List(filter PreRegistrationFilter, limit, offset int) ([]models.PreRegistration, int64, error)
	Update(reg *models.PreRegistration) error
	ApproveWithManager(reg *models.PreRegistration, manager *models.SchoolManager) error
	CountByStatus(status models.PreRegistrationStatus) (int64, error)
}

// SchoolManagerRepositoryInterface defines the interface for school manager operations
type SchoolManagerRepositoryInterface interface {
	Create(manager *models.SchoolManager) error
	GetByID(id uuid.UUID) (*models.SchoolManager, error)
	GetByCPF(cpf string) (*models.SchoolManager, error)
	List(filter SchoolManagerFilter, limit, offset int) ([]models.SchoolManager, int64, error)
	Update(manager *models.SchoolManager) error
	Delete(id uuid.UUID) error
	NextCredentialSequence(year int) (int, error)
}
