package testutils

import (
	"fmt"
	"sync/atomic"
	"time"

	"institute-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var seq int64

// next returns a process-wide sequence number so unique columns never clash
func next() int64 {
	return atomic.AddInt64(&seq, 1)
}

// UnitFactory provides methods to create test Unit data
type UnitFactory struct{}

// NewUnitFactory creates a new UnitFactory
func NewUnitFactory() *UnitFactory {
	return &UnitFactory{}
}

// Create creates a test Unit with default values
func (f *UnitFactory) Create() *models.Unit {
	n := next()
	return &models.Unit{
		Code:     fmt.Sprintf("U%04d", n),
		Name:     fmt.Sprintf("Coordenação %d", n),
		Acronym:  fmt.Sprintf("C%d", n),
		IsActive: true,
	}
}

// WithParent creates a test Unit below parentID
func (f *UnitFactory) WithParent(parentID uuid.UUID) *models.Unit {
	u := f.Create()
	u.ParentID = &parentID
	return u
}

// PositionFactory provides methods to create test Position data
type PositionFactory struct{}

// NewPositionFactory creates a new PositionFactory
func NewPositionFactory() *PositionFactory {
	return &PositionFactory{}
}

// Create creates a test Position with default values
func (f *PositionFactory) Create() *models.Position {
	n := next()
	return &models.Position{
		Code:  fmt.Sprintf("P%04d", n),
		Title: "Analista Administrativo",
		Kind:  models.PositionKindEffective,
		Level: "A1",
	}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates an active test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	n := next()
	return &models.Employee{
		RegistrationNumber: fmt.Sprintf("%07d", n),
		FullName:           fmt.Sprintf("Servidor Teste %d", n),
		CPF:                fmt.Sprintf("%011d", n),
		Email:              fmt.Sprintf("servidor%d@instituto.gov.br", n),
		HireDate:           time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:             models.EmployeeStatusActive,
	}
}

// WithUnit creates a test Employee currently assigned to unitID
func (f *EmployeeFactory) WithUnit(unitID uuid.UUID) *models.Employee {
	e := f.Create()
	e.CurrentUnitID = &unitID
	return e
}

// WithStatus creates a test Employee with the given status
func (f *EmployeeFactory) WithStatus(status models.EmployeeStatus) *models.Employee {
	e := f.Create()
	e.Status = status
	return e
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active viewer account
func (f *UserFactory) Create() *models.User {
	n := next()
	return &models.User{
		Email:    fmt.Sprintf("usuario%d@instituto.gov.br", n),
		FullName: fmt.Sprintf("Usuário %d", n),
		Role:     models.RoleViewer,
		IsActive: true,
	}
}

// WithRole creates a test User with the given role
func (f *UserFactory) WithRole(role models.Role) *models.User {
	u := f.Create()
	u.Role = role
	return u
}

// PayrollFactory provides methods to create payroll runs and entries
type PayrollFactory struct{}

// NewPayrollFactory creates a new PayrollFactory
func NewPayrollFactory() *PayrollFactory {
	return &PayrollFactory{}
}

// Run creates an open monthly run for the competence
func (f *PayrollFactory) Run(year, month int) *models.PayrollRun {
	return &models.PayrollRun{
		Year:     year,
		Month:    month,
		Kind:     models.PayrollKindMonthly,
		Status:   models.PayrollStatusOpen,
		OpenedAt: time.Date(year, time.Month(month), 1, 8, 0, 0, 0, time.UTC),
	}
}

// Entry creates an entry of runID for employeeID with net = gross - deductions
func (f *PayrollFactory) Entry(runID, employeeID uuid.UUID, gross, deductions string) *models.PayrollEntry {
	g := decimal.RequireFromString(gross)
	d := decimal.RequireFromString(deductions)
	return &models.PayrollEntry{
		RunID:       runID,
		EmployeeID:  employeeID,
		GrossAmount: g,
		Deductions:  d,
		NetAmount:   g.Sub(d),
	}
}

// PortariaFactory provides methods to create test Portaria data
type PortariaFactory struct{}

// NewPortariaFactory creates a new PortariaFactory
func NewPortariaFactory() *PortariaFactory {
	return &PortariaFactory{}
}

// Create creates a draft portaria with the given number
func (f *PortariaFactory) Create(number, year int) *models.Portaria {
	return &models.Portaria{
		Number:  number,
		Year:    year,
		Subject: fmt.Sprintf("Portaria %d/%d", number, year),
		Status:  models.PortariaStatusDraft,
	}
}

// SchoolFactory provides methods to create schools and federations
type SchoolFactory struct{}

// NewSchoolFactory creates a new SchoolFactory
func NewSchoolFactory() *SchoolFactory {
	return &SchoolFactory{}
}

// Federation creates a test Federation with a unique acronym
func (f *SchoolFactory) Federation() *models.Federation {
	n := next()
	return &models.Federation{
		Name:    fmt.Sprintf("Federação %d", n),
		Acronym: fmt.Sprintf("FED%d", n),
		State:   "RJ",
	}
}

// Create creates a state school with a unique INEP code
func (f *SchoolFactory) Create() *models.School {
	n := next()
	return &models.School{
		INEP:    fmt.Sprintf("%08d", 33000000+n),
		Name:    fmt.Sprintf("Colégio Estadual %d", n),
		City:    "Niterói",
		State:   "RJ",
		Network: models.SchoolNetworkState,
	}
}

// PreRegistration creates a pending pre-registration for cpf
func (f *SchoolFactory) PreRegistration(cpf string, kind models.PreRegistrationKind) *models.PreRegistration {
	n := next()
	return &models.PreRegistration{
		Protocol: fmt.Sprintf("20240101-%06d", n),
		Kind:     kind,
		FullName: "Requerente Teste",
		CPF:      cpf,
		Email:    fmt.Sprintf("requerente%d@example.com", n),
		Status:   models.PreRegistrationStatusPending,
	}
}

// AssetFactory provides methods to create test Asset data
type AssetFactory struct{}

// NewAssetFactory creates a new AssetFactory
func NewAssetFactory() *AssetFactory {
	return &AssetFactory{}
}

// Create creates an active asset of unitID
func (f *AssetFactory) Create(unitID uuid.UUID, category, value string) *models.Asset {
	n := next()
	return &models.Asset{
		Tag:              fmt.Sprintf("PAT-%06d", n),
		Description:      fmt.Sprintf("Bem %d", n),
		Category:         category,
		UnitID:           unitID,
		AcquisitionDate:  time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
		AcquisitionValue: decimal.RequireFromString(value),
		Status:           models.AssetStatusActive,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Unit     *UnitFactory
	Position *PositionFactory
	Employee *EmployeeFactory
	User     *UserFactory
	Payroll  *PayrollFactory
	Portaria *PortariaFactory
	School   *SchoolFactory
	Asset    *AssetFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Unit:     NewUnitFactory(),
		Position: NewPositionFactory(),
		Employee: NewEmployeeFactory(),
		User:     NewUserFactory(),
		Payroll:  NewPayrollFactory(),
		Portaria: NewPortariaFactory(),
		School:   NewSchoolFactory(),
		Asset:    NewAssetFactory(),
	}
}
