package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/spreadsheet"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// PayrollService handles payroll runs (folhas) and their entries
type PayrollService struct {
	runRepo      repository.PayrollRunRepositoryInterface
	entryRepo    repository.PayrollEntryRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	validator    *validator.Validate
	now          func() time.Time
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	runRepo repository.PayrollRunRepositoryInterface,
	entryRepo repository.PayrollEntryRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	validator *validator.Validate,
) *PayrollService {
	return &PayrollService{
		runRepo:      runRepo,
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		validator:    validator,
		now:          time.Now,
	}
}

// CreateRunRequest represents the request to open a payroll run
type CreateRunRequest struct {
	Year  int    `json:"year" validate:"required,min=2000,max=2100"`
	Month int    `json:"month" validate:"required,min=1,max=12"`
	Kind  string `json:"kind" validate:"omitempty,oneof=monthly thirteenth supplementary"`
}

// TransitionRequest represents a status change of a payroll run
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=open processing closed reopened"`
	Reason string `json:"reason" validate:"max=500"`
}

// EntryRequest represents an employee's line in a run
type EntryRequest struct {
	EmployeeID  uuid.UUID       `json:"employee_id" validate:"required"`
	GrossAmount decimal.Decimal `json:"gross_amount" swaggertype:"string" example:"5432.10"`
	Deductions  decimal.Decimal `json:"deductions" swaggertype:"string" example:"812.40"`
	Notes       string          `json:"notes" validate:"max=500"`
}

// UpdateEntryRequest represents new amounts for an existing entry
type UpdateEntryRequest struct {
	GrossAmount decimal.Decimal `json:"gross_amount" swaggertype:"string" example:"5432.10"`
	Deductions  decimal.Decimal `json:"deductions" swaggertype:"string" example:"812.40"`
	Notes       string          `json:"notes" validate:"max=500"`
}

// RunSummary is the totals of a run with the deduction share and the
// breakdown by unit
type RunSummary struct {
	Run                 *models.PayrollRun      `json:"run"`
	TotalGross          decimal.Decimal         `json:"total_gross"`
	TotalDeductions     decimal.Decimal         `json:"total_deductions"`
	TotalNet            decimal.Decimal         `json:"total_net"`
	EntryCount          int                     `json:"entry_count"`
	DeductionPercentage decimal.Decimal         `json:"deduction_percentage"`
	Units               []repository.UnitTotals `json:"units"`
}

// MonthTotals sums the closed runs of one month
type MonthTotals struct {
	Month      int             `json:"month"`
	Runs       int             `json:"runs"`
	Entries    int             `json:"entries"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}

// YearSummary sums the closed runs of a year month by month
type YearSummary struct {
	Year       int             `json:"year"`
	Months     []MonthTotals   `json:"months"`
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}

// CreateRun opens a new payroll run for a competence
func (s *PayrollService) CreateRun(ctx context.Context, req *CreateRunRequest) (*models.PayrollRun, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	kind := models.PayrollKind(req.Kind)
	if kind == "" {
		kind = models.PayrollKindMonthly
	}

	existing, err := s.runRepo.GetByPeriod(req.Year, req.Month, kind)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing run: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPayrollRunExists
	}

	run := &models.PayrollRun{
		Year:            req.Year,
		Month:           req.Month,
		Kind:            kind,
		Status:          models.PayrollStatusOpen,
		OpenedAt:        s.now(),
		TotalGross:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNet:        decimal.Zero,
	}
	run.CreatedBy = actor(ctx)
	run.UpdatedBy = run.CreatedBy

	if err := s.runRepo.Create(run); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPayrollRunExists
		}
		return nil, fmt.Errorf("failed to create payroll run: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"year": run.Year, "month": run.Month, "kind": run.Kind,
	}).Info("payroll run opened")
	return run, nil
}

// GetRun retrieves a payroll run by ID
func (s *PayrollService) GetRun(id uuid.UUID) (*models.PayrollRun, error) {
	run, err := s.runRepo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPayrollRunNotFound, "payroll run")
	}
	return run, nil
}

// ListRuns returns a page of runs, newest competence first
func (s *PayrollService) ListRuns(filter repository.PayrollRunFilter, page, pageSize int) (*ListResponse[models.PayrollRun], error) {
	page, pageSize = NormalizePage(page, pageSize)
	runs, total, err := s.runRepo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	return newList(runs, total, page, pageSize), nil
}

// DeleteRun removes a run that was never processed
func (s *PayrollService) DeleteRun(ctx context.Context, id uuid.UUID) error {
	run, err := s.runRepo.GetByID(id)
	if err != nil {
		return lookup(err, apperrors.ErrPayrollRunNotFound, "payroll run")
	}
	if run.Status != models.PayrollStatusOpen || run.ClosedAt != nil {
		return apperrors.NewConflictError("only open runs that were never closed can be deleted")
	}
	if err := s.runRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete payroll run: %w", err)
	}
	logger.WithContext(ctx).WithField("run_id", id).Info("payroll run deleted")
	return nil
}

// Transition moves a run to another status following the run state machine:
// open -> processing -> closed -> reopened -> processing, and processing ->
// open to cancel processing.
func (s *PayrollService) Transition(ctx context.Context, id uuid.UUID, req *TransitionRequest) (*models.PayrollRun, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}

	run, err := s.runRepo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPayrollRunNotFound, "payroll run")
	}

	next := models.PayrollStatus(req.Status)
	if !run.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	now := s.now()
	switch next {
	case models.PayrollStatusProcessing:
		run.ProcessingAt = &now
	case models.PayrollStatusOpen:
		run.ProcessingAt = nil
	case models.PayrollStatusClosed:
		if err := s.applyTotals(run); err != nil {
			return nil, err
		}
		run.ClosedAt = &now
	case models.PayrollStatusReopened:
		reason := strings.TrimSpace(req.Reason)
		if reason == "" {
			return nil, apperrors.NewValidationError("reason", "is required to reopen a run")
		}
		run.ReopenedAt = &now
		run.ReopenReason = reason
	}

	previous := run.Status
	run.Status = next
	run.UpdatedBy = actor(ctx)
	if err := s.runRepo.Update(run); err != nil {
		return nil, fmt.Errorf("failed to update payroll run: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"run_id": run.ID, "from": previous, "to": next,
	}).Info("payroll run status changed")
	return run, nil
}

// StartProcessing moves an open or reopened run to processing
func (s *PayrollService) StartProcessing(ctx context.Context, id uuid.UUID) (*models.PayrollRun, error) {
	return s.Transition(ctx, id, &TransitionRequest{Status: string(models.PayrollStatusProcessing)})
}

// CancelProcessing moves a processing run back to open
func (s *PayrollService) CancelProcessing(ctx context.Context, id uuid.UUID) (*models.PayrollRun, error) {
	return s.Transition(ctx, id, &TransitionRequest{Status: string(models.PayrollStatusOpen)})
}

// Close freezes the totals of a processing run
func (s *PayrollService) Close(ctx context.Context, id uuid.UUID) (*models.PayrollRun, error) {
	return s.Transition(ctx, id, &TransitionRequest{Status: string(models.PayrollStatusClosed)})
}

// Reopen reopens a closed run; reason is mandatory
func (s *PayrollService) Reopen(ctx context.Context, id uuid.UUID, reason string) (*models.PayrollRun, error) {
	return s.Transition(ctx, id, &TransitionRequest{Status: string(models.PayrollStatusReopened), Reason: reason})
}

// editableRun loads a run and checks that its entries may change
func (s *PayrollService) editableRun(runID uuid.UUID) (*models.PayrollRun, error) {
	run, err := s.runRepo.GetByID(runID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPayrollRunNotFound, "payroll run")
	}
	if !run.Status.AcceptsEntries() {
		return nil, apperrors.ErrPayrollRunNotEditable
	}
	return run, nil
}

// applyTotals copies the sums of the run's entries onto the run
func (s *PayrollService) applyTotals(run *models.PayrollRun) error {
	totals, err := s.entryRepo.Totals(run.ID)
	if err != nil {
		return fmt.Errorf("failed to compute payroll totals: %w", err)
	}
	run.TotalGross = totals.Gross.Round(2)
	run.TotalDeductions = totals.Deductions.Round(2)
	run.TotalNet = totals.Net.Round(2)
	run.EntryCount = int(totals.Count)
	return nil
}

func (s *PayrollService) recompute(ctx context.Context, run *models.PayrollRun) error {
	if err := s.applyTotals(run); err != nil {
		return err
	}
	run.UpdatedBy = actor(ctx)
	if err := s.runRepo.Update(run); err != nil {
		return fmt.Errorf("failed to update payroll totals: %w", err)
	}
	return nil
}

// checkAmounts rounds amounts to cents and enforces 0 <= deductions <= gross
func checkAmounts(gross, deductions decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	gross = gross.Round(2)
	deductions = deductions.Round(2)
	if gross.IsNegative() {
		return gross, deductions, apperrors.NewValidationError("gross_amount", "must not be negative")
	}
	if deductions.IsNegative() {
		return gross, deductions, apperrors.NewValidationError("deductions", "must not be negative")
	}
	if deductions.GreaterThan(gross) {
		return gross, deductions, apperrors.NewValidationError("deductions", "must not exceed the gross amount")
	}
	return gross, deductions, nil
}

// AddEntry adds an employee's line to an open or reopened run
func (s *PayrollService) AddEntry(ctx context.Context, runID uuid.UUID, req *EntryRequest) (*models.PayrollEntry, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	gross, deductions, err := checkAmounts(req.GrossAmount, req.Deductions)
	if err != nil {
		return nil, err
	}

	run, err := s.editableRun(runID)
	if err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(req.EmployeeID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrEmployeeNotFound, "employee")
	}

	existing, err := s.entryRepo.GetByRunAndEmployee(runID, req.EmployeeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing entry: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPayrollEntryExists
	}

	entry := &models.PayrollEntry{
		RunID:       runID,
		EmployeeID:  employee.ID,
		GrossAmount: gross,
		Deductions:  deductions,
		NetAmount:   gross.Sub(deductions),
		Notes:       req.Notes,
	}
	entry.CreatedBy = actor(ctx)
	entry.UpdatedBy = entry.CreatedBy

	if err := s.entryRepo.Create(entry); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrPayrollEntryExists
		}
		return nil, fmt.Errorf("failed to create payroll entry: %w", err)
	}
	if err := s.recompute(ctx, run); err != nil {
		return nil, err
	}
	entry.Employee = employee
	return entry, nil
}

// UpdateEntry changes the amounts of an entry
func (s *PayrollService) UpdateEntry(ctx context.Context, entryID uuid.UUID, req *UpdateEntryRequest) (*models.PayrollEntry, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	gross, deductions, err := checkAmounts(req.GrossAmount, req.Deductions)
	if err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.GetByID(entryID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPayrollEntryNotFound, "payroll entry")
	}
	run, err := s.editableRun(entry.RunID)
	if err != nil {
		return nil, err
	}

	entry.GrossAmount = gross
	entry.Deductions = deductions
	entry.NetAmount = gross.Sub(deductions)
	entry.Notes = req.Notes
	entry.UpdatedBy = actor(ctx)

	if err := s.entryRepo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update payroll entry: %w", err)
	}
	if err := s.recompute(ctx, run); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry removes an entry from an open or reopened run
func (s *PayrollService) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	entry, err := s.entryRepo.GetByID(entryID)
	if err != nil {
		return lookup(err, apperrors.ErrPayrollEntryNotFound, "payroll entry")
	}
	run, err := s.editableRun(entry.RunID)
	if err != nil {
		return err
	}
	if err := s.entryRepo.Delete(entryID); err != nil {
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}
	return s.recompute(ctx, run)
}

// ListEntries returns a page of the run's entries ordered by employee name
func (s *PayrollService) ListEntries(runID uuid.UUID, page, pageSize int) (*ListResponse[models.PayrollEntry], error) {
	if _, err := s.runRepo.GetByID(runID); err != nil {
		return nil, lookup(err, apperrors.ErrPayrollRunNotFound, "payroll run")
	}
	page, pageSize = NormalizePage(page, pageSize)
	entries, total, err := s.entryRepo.ListByRun(runID, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	return newList(entries, total, page, pageSize), nil
}

// Summary returns the run totals, the deduction percentage and the totals
// per unit
func (s *PayrollService) Summary(runID uuid.UUID) (*RunSummary, error) {
	run, err := s.runRepo.GetByID(runID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrPayrollRunNotFound, "payroll run")
	}
	units, err := s.entryRepo.UnitBreakdown(runID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute unit breakdown: %w", err)
	}
	if units == nil {
		units = []repository.UnitTotals{}
	}

	return &RunSummary{
		Run:                 run,
		TotalGross:          run.TotalGross,
		TotalDeductions:     run.TotalDeductions,
		TotalNet:            run.TotalNet,
		EntryCount:          run.EntryCount,
		DeductionPercentage: percentage(run.TotalDeductions, run.TotalGross),
		Units:               units,
	}, nil
}

// percentage returns part/whole*100 rounded to two places; zero when whole is zero
func percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(whole).Round(2)
}

// YearSummary sums the closed runs of a year by month. Months without a
// closed run are omitted.
func (s *PayrollService) YearSummary(year int) (*YearSummary, error) {
	if year < 2000 || year > 2100 {
		return nil, apperrors.NewValidationError("year", "must be between 2000 and 2100")
	}
	runs, err := s.runRepo.ListClosedByYear(year)
	if err != nil {
		return nil, fmt.Errorf("failed to list closed runs: %w", err)
	}

	summary := &YearSummary{
		Year:       year,
		Months:     []MonthTotals{},
		Gross:      decimal.Zero,
		Deductions: decimal.Zero,
		Net:        decimal.Zero,
	}
	byMonth := map[int]int{}
	for _, run := range runs {
		idx, ok := byMonth[run.Month]
		if !ok {
			summary.Months = append(summary.Months, MonthTotals{
				Month: run.Month, Gross: decimal.Zero, Deductions: decimal.Zero, Net: decimal.Zero,
			})
			idx = len(summary.Months) - 1
			byMonth[run.Month] = idx
		}
		m := &summary.Months[idx]
		m.Runs++
		m.Entries += run.EntryCount
		m.Gross = m.Gross.Add(run.TotalGross)
		m.Deductions = m.Deductions.Add(run.TotalDeductions)
		m.Net = m.Net.Add(run.TotalNet)

		summary.Gross = summary.Gross.Add(run.TotalGross)
		summary.Deductions = summary.Deductions.Add(run.TotalDeductions)
		summary.Net = summary.Net.Add(run.TotalNet)
	}
	return summary, nil
}

// payroll import columns, as normalized header keys
const (
	colRegistration = "matricula"
	colGross        = "bruto"
	colDeductions   = "descontos"
	colNotes        = "observacao"
)

// ImportEntries reads entries from an XLSX sheet with the columns
// Matrícula, Bruto, Descontos and Observação. Rows with an unknown
// registration or bad amounts are reported as invalid; rows for employees
// already in the run (or earlier in the file) as duplicates.
func (s *PayrollService) ImportEntries(ctx context.Context, runID uuid.UUID, r io.Reader) (*ImportResult, error) {
	run, err := s.editableRun(runID)
	if err != nil {
		return nil, err
	}

	rows, err := spreadsheet.ReadFirstSheet(r, colRegistration, colGross, colDeductions)
	if err != nil {
		return nil, sheetError(err)
	}
	result := newImportResult(len(rows))

	numbers := make([]string, 0, len(rows))
	for _, row := range rows {
		if n := row.Get(colRegistration); n != "" {
			numbers = append(numbers, n)
		}
	}
	employees, err := s.employeeRepo.GetByRegistrationNumbers(numbers)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	byNumber := make(map[string]models.Employee, len(employees))
	for _, e := range employees {
		byNumber[e.RegistrationNumber] = e
	}

	inRun, err := s.entryRepo.EmployeeIDsInRun(runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load run entries: %w", err)
	}
	taken := make(map[uuid.UUID]bool, len(inRun))
	for _, id := range inRun {
		taken[id] = true
	}

	who := actor(ctx)
	var batch []models.PayrollEntry
	for _, row := range rows {
		number := row.Get(colRegistration)
		if number == "" {
			result.invalid(row.Line, number, "registration number is required")
			continue
		}
		employee, ok := byNumber[number]
		if !ok {
			result.invalid(row.Line, number, "no employee with this registration number")
			continue
		}

		if row.Get(colGross) == "" {
			result.invalid(row.Line, number, "gross amount is required")
			continue
		}
		gross, err := spreadsheet.ParseDecimal(row.Get(colGross))
		if err != nil {
			result.invalid(row.Line, number, "gross amount: "+err.Error())
			continue
		}
		deductions := decimal.Zero
		if raw := row.Get(colDeductions); raw != "" {
			if deductions, err = spreadsheet.ParseDecimal(raw); err != nil {
				result.invalid(row.Line, number, "deductions: "+err.Error())
				continue
			}
		}
		gross, deductions, err = checkAmounts(gross, deductions)
		if err != nil {
			result.invalid(row.Line, number, err.Error())
			continue
		}

		if taken[employee.ID] {
			result.duplicate(row.Line, number, "employee already has an entry in this run")
			continue
		}
		taken[employee.ID] = true

		entry := models.PayrollEntry{
			RunID:       runID,
			EmployeeID:  employee.ID,
			GrossAmount: gross,
			Deductions:  deductions,
			NetAmount:   gross.Sub(deductions),
			Notes:       truncate(row.Get(colNotes), 500),
		}
		entry.CreatedBy = who
		entry.UpdatedBy = who
		batch = append(batch, entry)
	}

	if len(batch) > 0 {
		if err := s.entryRepo.CreateBatch(batch); err != nil {
			return nil, fmt.Errorf("failed to insert payroll entries: %w", err)
		}
		if err := s.recompute(ctx, run); err != nil {
			return nil, err
		}
	}
	result.Inserted = len(batch)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"run_id":     runID,
		"total":      result.Total,
		"inserted":   result.Inserted,
		"duplicates": len(result.Duplicates),
		"invalid":    len(result.Invalid),
	}).Info("payroll entries imported")
	return result, nil
}

// ExportRun writes the run's entries as an XLSX workbook with a totals row
func (s *PayrollService) ExportRun(w io.Writer, runID uuid.UUID) error {
	run, err := s.runRepo.GetByID(runID)
	if err != nil {
		return lookup(err, apperrors.ErrPayrollRunNotFound, "payroll run")
	}
	entries, err := s.entryRepo.ListAllByRun(runID)
	if err != nil {
		return fmt.Errorf("failed to list payroll entries: %w", err)
	}

	table := spreadsheet.Table{
		Sheet:   fmt.Sprintf("Folha %02d-%d", run.Month, run.Year),
		Headers: []string{"Matrícula", "Nome", "CPF", "Bruto", "Descontos", "Líquido", "Observação"},
		Widths:  []float64{14, 40, 16, 14, 14, 14, 40},
	}
	for _, e := range entries {
		number, name, cpf := "", "", ""
		if e.Employee != nil {
			number, name, cpf = e.Employee.RegistrationNumber, e.Employee.FullName, validation.FormatCPF(e.Employee.CPF)
		}
		table.Rows = append(table.Rows, []interface{}{number, name, cpf, e.GrossAmount, e.Deductions, e.NetAmount, e.Notes})
	}
	table.Rows = append(table.Rows, []interface{}{"", "TOTAL", "", run.TotalGross, run.TotalDeductions, run.TotalNet, ""})

	return spreadsheet.WriteXLSX(w, table)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
