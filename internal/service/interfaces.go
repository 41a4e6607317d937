package service

import (
	"context"
	"io"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for account administration
type UserServiceInterface interface {
	CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	ListUsers(page, pageSize int) (*ListResponse[models.User], error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*models.User, error)
	ResetPassword(ctx context.Context, id uuid.UUID, req *ResetPasswordRequest) error
}

// DirectoryServiceInterface defines the interface for directory search
type DirectoryServiceInterface interface {
	Enabled() bool
	Search(term string) ([]DirectoryPerson, error)
}

// EmployeeServiceInterface defines the interface for employee records
type EmployeeServiceInterface interface {
	Create(ctx context.Context, req *CreateEmployeeRequest) (*models.Employee, error)
	GetByID(id uuid.UUID) (*models.Employee, error)
	List(filter repository.EmployeeFilter, page, pageSize int) (*ListResponse[models.Employee], error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(w io.Writer, filter repository.EmployeeFilter) error
}

// PayrollServiceInterface defines the interface for payroll runs and entries
type PayrollServiceInterface interface {
	CreateRun(ctx context.Context, req *CreateRunRequest) (*models.PayrollRun, error)
	GetRun(id uuid.UUID) (*models.PayrollRun, error)
	ListRuns(filter repository.PayrollRunFilter, page, pageSize int) (*ListResponse[models.PayrollRun], error)
	DeleteRun(ctx context.Context, id uuid.UUID) error
	Transition(ctx context.Context, id uuid.UUID, req *TransitionRequest) (*models.PayrollRun, error)
	AddEntry(ctx context.Context, runID uuid.UUID, req *EntryRequest) (*models.PayrollEntry, error)
	UpdateEntry(ctx context.Context, entryID uuid.UUID, req *UpdateEntryRequest) (*models.PayrollEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	ListEntries(runID uuid.UUID, page, pageSize int) (*ListResponse[models.PayrollEntry], error)
	Summary(runID uuid.UUID) (*RunSummary, error)
	YearSummary(year int) (*YearSummary, error)
	ImportEntries(ctx context.Context, runID uuid.UUID, r io.Reader) (*ImportResult, error)
	ExportRun(w io.Writer, runID uuid.UUID) error
}

// ProcurementServiceInterface defines the interface for procurement cases
type ProcurementServiceInterface interface {
	Create(ctx context.Context, req *CreateCaseRequest) (*CaseDetail, error)
	GetByID(id uuid.UUID) (*CaseDetail, error)
	List(filter repository.ProcurementFilter, page, pageSize int) (*ListResponse[models.ProcurementCase], error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCaseRequest) (*CaseDetail, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Start(ctx context.Context, id uuid.UUID) (*CaseDetail, error)
	ToggleItem(ctx context.Context, itemID uuid.UUID, req *ToggleItemRequest) (*models.ChecklistItem, error)
	Complete(ctx context.Context, id uuid.UUID, req *CompleteCaseRequest) (*CaseDetail, error)
	Cancel(ctx context.Context, id uuid.UUID, req *CancelCaseRequest) (*CaseDetail, error)
}

// SchoolServiceInterface defines the interface for schools
type SchoolServiceInterface interface {
	Create(ctx context.Context, req *SchoolRequest) (*models.School, error)
	GetByID(id uuid.UUID) (*models.School, error)
	GetByINEP(inep string) (*models.School, error)
	List(filter repository.SchoolFilter, page, pageSize int) (*ListResponse[models.School], error)
	Update(ctx context.Context, id uuid.UUID, req *SchoolRequest) (*models.School, error)
	Delete(id uuid.UUID) error
	ImportXLSX(ctx context.Context, r io.Reader) (*ImportResult, error)
}

// PreRegistrationServiceInterface defines the interface for the pre-cadastro
type PreRegistrationServiceInterface interface {
	Submit(ctx context.Context, req *SubmitPreRegistrationRequest) (*SubmitPreRegistrationResponse, error)
	Status(protocol, cpf string) (*PreRegistrationStatusResponse, error)
	GetByID(id uuid.UUID) (*models.PreRegistration, error)
	List(filter repository.PreRegistrationFilter, page, pageSize int) (*ListResponse[models.PreRegistration], error)
	Approve(ctx context.Context, id uuid.UUID) (*ApprovalResult, error)
	Reject(ctx context.Context, id uuid.UUID, req *RejectPreRegistrationRequest) (*models.PreRegistration, error)
}

// TransparencyServiceInterface defines the interface for the public portal
type TransparencyServiceInterface interface {
	Payroll(year int) (*YearSummary, error)
	Procurement(year int, status string, page, pageSize int) (*ListResponse[PublicProcurement], error)
	Portarias(year int, query string, page, pageSize int) (*ListResponse[PublicPortaria], error)
	Export(w io.Writer, dataset string, year int, format string) error
}

// DashboardServiceInterface defines the interface for the home dashboard
type DashboardServiceInterface interface {
	Get(ctx context.Context, role string) (*Dashboard, error)
}
