package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func actorCtx(email string) context.Context {
	return context.WithValue(context.Background(), logger.ContextKeyEmail, email) //nolint:staticcheck
}

// PayrollServiceTestSuite defines the test suite for PayrollService
type PayrollServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	runs      *mocks.MockPayrollRunRepositoryInterface
	entries   *mocks.MockPayrollEntryRepositoryInterface
	employees *mocks.MockEmployeeRepositoryInterface
	svc       *service.PayrollService
	now       time.Time
	ctx       context.Context
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.runs = mocks.NewMockPayrollRunRepositoryInterface(suite.ctrl)
	suite.entries = mocks.NewMockPayrollEntryRepositoryInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.svc = service.NewPayrollService(suite.runs, suite.entries, suite.employees, validation.New())
	suite.now = time.Date(2024, 6, 28, 15, 0, 0, 0, time.UTC)
	suite.svc.SetClock(func() time.Time { return suite.now })
	suite.ctx = actorCtx("folha@instituto.gov.br")
}

func (suite *PayrollServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PayrollServiceTestSuite) run(status models.PayrollStatus) *models.PayrollRun {
	run := &models.PayrollRun{Year: 2024, Month: 6, Kind: models.PayrollKindMonthly, Status: status}
	run.ID = uuid.New()
	return run
}

func (suite *PayrollServiceTestSuite) TestCreateRunDefaultsToMonthly() {
	suite.runs.EXPECT().GetByPeriod(2024, 6, models.PayrollKindMonthly).Return(nil, gorm.ErrRecordNotFound)
	suite.runs.EXPECT().Create(gomock.Any()).DoAndReturn(func(run *models.PayrollRun) error {
		assert.Equal(suite.T(), models.PayrollStatusOpen, run.Status)
		assert.Equal(suite.T(), "folha@instituto.gov.br", run.CreatedBy)
		return nil
	})

	run, err := suite.svc.CreateRun(suite.ctx, &service.CreateRunRequest{Year: 2024, Month: 6})
	suite.Require().NoError(err)
	suite.Equal(models.PayrollKindMonthly, run.Kind)
	suite.Equal(suite.now, run.OpenedAt)
	suite.True(run.TotalNet.IsZero())
}

func (suite *PayrollServiceTestSuite) TestCreateRunDuplicatePeriod() {
	suite.runs.EXPECT().GetByPeriod(2024, 6, models.PayrollKindThirteenth).Return(suite.run(models.PayrollStatusOpen), nil)

	_, err := suite.svc.CreateRun(suite.ctx, &service.CreateRunRequest{Year: 2024, Month: 6, Kind: "thirteenth"})
	suite.ErrorIs(err, apperrors.ErrPayrollRunExists)
}

func (suite *PayrollServiceTestSuite) TestCreateRunValidation() {
	_, err := suite.svc.CreateRun(suite.ctx, &service.CreateRunRequest{Year: 2024, Month: 13})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PayrollServiceTestSuite) TestCloseFromProcessingRecordsTotalsAndTimestamp() {
	run := suite.run(models.PayrollStatusProcessing)
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.entries.EXPECT().Totals(run.ID).Return(&repository.EntryTotals{
		Gross: dec("10000.005"), Deductions: dec("2750.5"), Net: dec("7249.505"), Count: 3,
	}, nil)
	suite.runs.EXPECT().Update(run).Return(nil)

	closed, err := suite.svc.Close(suite.ctx, run.ID)
	suite.Require().NoError(err)
	suite.Equal(models.PayrollStatusClosed, closed.Status)
	suite.Require().NotNil(closed.ClosedAt)
	suite.Equal(suite.now, *closed.ClosedAt)
	suite.Equal("10000.01", closed.TotalGross.StringFixed(2))
	suite.Equal("2750.50", closed.TotalDeductions.StringFixed(2))
	suite.Equal(3, closed.EntryCount)
}

func (suite *PayrollServiceTestSuite) TestCloseOnlyFromProcessing() {
	for _, status := range []models.PayrollStatus{models.PayrollStatusOpen, models.PayrollStatusReopened, models.PayrollStatusClosed} {
		run := suite.run(status)
		suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)

		_, err := suite.svc.Close(suite.ctx, run.ID)
		suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition, "status %s", status)
		suite.Equal(status, run.Status)
	}
}

func (suite *PayrollServiceTestSuite) TestReopenRequiresReason() {
	run := suite.run(models.PayrollStatusClosed)
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)

	_, err := suite.svc.Reopen(suite.ctx, run.ID, "  ")
	suite.True(apperrors.IsValidation(err))
	suite.Equal(models.PayrollStatusClosed, run.Status)
}

func (suite *PayrollServiceTestSuite) TestReopen() {
	run := suite.run(models.PayrollStatusClosed)
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.runs.EXPECT().Update(run).Return(nil)

	reopened, err := suite.svc.Reopen(suite.ctx, run.ID, "correção de descontos")
	suite.Require().NoError(err)
	suite.Equal(models.PayrollStatusReopened, reopened.Status)
	suite.Equal("correção de descontos", reopened.ReopenReason)
	suite.NotNil(reopened.ReopenedAt)
}

func (suite *PayrollServiceTestSuite) TestCancelProcessingClearsTimestamp() {
	run := suite.run(models.PayrollStatusProcessing)
	started := suite.now.Add(-time.Hour)
	run.ProcessingAt = &started
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.runs.EXPECT().Update(run).Return(nil)

	out, err := suite.svc.CancelProcessing(suite.ctx, run.ID)
	suite.Require().NoError(err)
	suite.Equal(models.PayrollStatusOpen, out.Status)
	suite.Nil(out.ProcessingAt)
}

func (suite *PayrollServiceTestSuite) TestAddEntryRejectsClosedRun() {
	run := suite.run(models.PayrollStatusClosed)
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)

	_, err := suite.svc.AddEntry(suite.ctx, run.ID, &service.EntryRequest{
		EmployeeID: uuid.New(), GrossAmount: dec("1000"), Deductions: dec("100"),
	})
	suite.ErrorIs(err, apperrors.ErrPayrollRunNotEditable)
}

func (suite *PayrollServiceTestSuite) TestAddEntryDeductionsAboveGross() {
	_, err := suite.svc.AddEntry(suite.ctx, uuid.New(), &service.EntryRequest{
		EmployeeID: uuid.New(), GrossAmount: dec("1000"), Deductions: dec("1000.01"),
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PayrollServiceTestSuite) TestAddEntryComputesNetAndTotals() {
	run := suite.run(models.PayrollStatusOpen)
	employee := &models.Employee{FullName: "Ana Souza"}
	employee.ID = uuid.New()

	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.employees.EXPECT().GetByID(employee.ID).Return(employee, nil)
	suite.entries.EXPECT().GetByRunAndEmployee(run.ID, employee.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.entries.EXPECT().Create(gomock.Any()).Return(nil)
	suite.entries.EXPECT().Totals(run.ID).Return(&repository.EntryTotals{
		Gross: dec("5432.10"), Deductions: dec("1234.56"), Net: dec("4197.54"), Count: 1,
	}, nil)
	suite.runs.EXPECT().Update(run).Return(nil)

	entry, err := suite.svc.AddEntry(suite.ctx, run.ID, &service.EntryRequest{
		EmployeeID: employee.ID, GrossAmount: dec("5432.104"), Deductions: dec("1234.555"),
	})
	suite.Require().NoError(err)
	suite.Equal("5432.10", entry.GrossAmount.StringFixed(2))
	suite.Equal("1234.56", entry.Deductions.StringFixed(2))
	suite.Equal("4197.54", entry.NetAmount.StringFixed(2))
	suite.Equal("4197.54", run.TotalNet.StringFixed(2))
	suite.Equal(1, run.EntryCount)
}

func (suite *PayrollServiceTestSuite) TestAddEntryDuplicateEmployee() {
	run := suite.run(models.PayrollStatusReopened)
	employee := &models.Employee{}
	employee.ID = uuid.New()
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.employees.EXPECT().GetByID(employee.ID).Return(employee, nil)
	suite.entries.EXPECT().GetByRunAndEmployee(run.ID, employee.ID).Return(&models.PayrollEntry{}, nil)

	_, err := suite.svc.AddEntry(suite.ctx, run.ID, &service.EntryRequest{
		EmployeeID: employee.ID, GrossAmount: dec("1000"), Deductions: decimal.Zero,
	})
	suite.ErrorIs(err, apperrors.ErrPayrollEntryExists)
}

func (suite *PayrollServiceTestSuite) TestDeleteRunOnlyWhenNeverClosed() {
	run := suite.run(models.PayrollStatusReopened)
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.True(apperrors.IsConflict(suite.svc.DeleteRun(suite.ctx, run.ID)))

	open := suite.run(models.PayrollStatusOpen)
	suite.runs.EXPECT().GetByID(open.ID).Return(open, nil)
	suite.runs.EXPECT().Delete(open.ID).Return(nil)
	suite.NoError(suite.svc.DeleteRun(suite.ctx, open.ID))
}

func (suite *PayrollServiceTestSuite) TestSummaryDeductionPercentage() {
	run := suite.run(models.PayrollStatusClosed)
	run.TotalGross = dec("8000")
	run.TotalDeductions = dec("2000")
	run.TotalNet = dec("6000")
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.entries.EXPECT().UnitBreakdown(run.ID).Return(nil, nil)

	summary, err := suite.svc.Summary(run.ID)
	suite.Require().NoError(err)
	suite.Equal("25.00", summary.DeductionPercentage.StringFixed(2))
	suite.NotNil(summary.Units)
}

func (suite *PayrollServiceTestSuite) TestYearSummaryGroupsByMonth() {
	mk := func(month int, gross, deductions string) models.PayrollRun {
		g, d := dec(gross), dec(deductions)
		return models.PayrollRun{Month: month, TotalGross: g, TotalDeductions: d, TotalNet: g.Sub(d), EntryCount: 2}
	}
	suite.runs.EXPECT().ListClosedByYear(2024).Return([]models.PayrollRun{
		mk(1, "1000", "100"), mk(1, "500", "50"), mk(2, "2000", "200"),
	}, nil)

	summary, err := suite.svc.YearSummary(2024)
	suite.Require().NoError(err)
	suite.Require().Len(summary.Months, 2)
	suite.Equal(2, summary.Months[0].Runs)
	suite.Equal(4, summary.Months[0].Entries)
	suite.Equal("1350.00", summary.Months[0].Net.StringFixed(2))
	suite.Equal("3150.00", summary.Net.StringFixed(2))
}

func (suite *PayrollServiceTestSuite) TestYearSummaryRejectsOutOfRangeYear() {
	_, err := suite.svc.YearSummary(1999)
	suite.True(apperrors.IsValidation(err))
}

func payrollSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Matrícula", "Bruto", "Descontos", "Observação"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func (suite *PayrollServiceTestSuite) TestImportEntriesFlagsDuplicatesAndInvalidRows() {
	run := suite.run(models.PayrollStatusOpen)
	known := &models.Employee{RegistrationNumber: "1001"}
	known.ID = uuid.New()
	already := &models.Employee{RegistrationNumber: "1002"}
	already.ID = uuid.New()

	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.employees.EXPECT().GetByRegistrationNumbers(gomock.Any()).Return([]models.Employee{*known, *already}, nil)
	suite.entries.EXPECT().EmployeeIDsInRun(run.ID).Return([]uuid.UUID{already.ID}, nil)
	suite.entries.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(entries []models.PayrollEntry) error {
		require.Len(suite.T(), entries, 1)
		assert.Equal(suite.T(), known.ID, entries[0].EmployeeID)
		assert.Equal(suite.T(), "4000.00", entries[0].NetAmount.StringFixed(2))
		return nil
	})
	suite.entries.EXPECT().Totals(run.ID).Return(&repository.EntryTotals{Count: 2}, nil)
	suite.runs.EXPECT().Update(run).Return(nil)

	file := payrollSheet(suite.T(), [][]interface{}{
		{"1001", "5000,00", "1000,00", ""},
		{"1002", "3000", "300", ""},
		{"1001", "5000", "1000", "repetida"},
		{"9999", "1000", "0", ""},
		{"1003", "abc", "0", ""},
	})

	result, err := suite.svc.ImportEntries(suite.ctx, run.ID, file)
	suite.Require().NoError(err)
	suite.Equal(5, result.Total)
	suite.Equal(1, result.Inserted)
	suite.Len(result.Duplicates, 2)
	suite.Len(result.Invalid, 2)
}

func (suite *PayrollServiceTestSuite) TestImportEntriesAmountsAndBlankGross() {
	run := suite.run(models.PayrollStatusOpen)
	first := &models.Employee{RegistrationNumber: "1001"}
	first.ID = uuid.New()
	second := &models.Employee{RegistrationNumber: "1002"}
	second.ID = uuid.New()
	third := &models.Employee{RegistrationNumber: "1003"}
	third.ID = uuid.New()

	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)
	suite.employees.EXPECT().GetByRegistrationNumbers(gomock.Any()).Return([]models.Employee{*first, *second, *third}, nil)
	suite.entries.EXPECT().EmployeeIDsInRun(run.ID).Return(nil, nil)
	suite.entries.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(entries []models.PayrollEntry) error {
		require.Len(suite.T(), entries, 2)
		assert.Equal(suite.T(), second.ID, entries[0].EmployeeID)
		assert.Equal(suite.T(), "1500.00", entries[0].GrossAmount.StringFixed(2))
		assert.Equal(suite.T(), third.ID, entries[1].EmployeeID)
		assert.Equal(suite.T(), "1500.00", entries[1].GrossAmount.StringFixed(2))
		assert.Equal(suite.T(), "150.00", entries[1].Deductions.StringFixed(2))
		return nil
	})
	suite.entries.EXPECT().Totals(run.ID).Return(&repository.EntryTotals{Count: 2}, nil)
	suite.runs.EXPECT().Update(run).Return(nil)

	file := payrollSheet(suite.T(), [][]interface{}{
		{"1001", "", "100", "sem bruto"},
		{"1002", 1500, 0, ""},
		{"1003", "1.500", "150", ""},
	})

	result, err := suite.svc.ImportEntries(suite.ctx, run.ID, file)
	suite.Require().NoError(err)
	suite.Equal(2, result.Inserted)
	suite.Require().Len(result.Invalid, 1)
	suite.Equal(2, result.Invalid[0].Line)
	suite.Equal("gross amount is required", result.Invalid[0].Reason)
}

func (suite *PayrollServiceTestSuite) TestImportEntriesMissingColumns() {
	run := suite.run(models.PayrollStatusOpen)
	suite.runs.EXPECT().GetByID(run.ID).Return(run, nil)

	f := excelize.NewFile()
	defer f.Close()
	suite.Require().NoError(f.SetSheetRow(f.GetSheetName(0), "A1", &[]interface{}{"Matrícula", "Valor"}))
	suite.Require().NoError(f.SetSheetRow(f.GetSheetName(0), "A2", &[]interface{}{"1001", "10"}))
	buf, err := f.WriteToBuffer()
	suite.Require().NoError(err)

	_, err = suite.svc.ImportEntries(suite.ctx, run.ID, buf)
	suite.True(apperrors.IsValidation(err))
}

func (suite *PayrollServiceTestSuite) TestGetRunNotFound() {
	id := uuid.New()
	suite.runs.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)
	_, err := suite.svc.GetRun(id)
	suite.ErrorIs(err, apperrors.ErrPayrollRunNotFound)

	suite.runs.EXPECT().GetByID(id).Return(nil, errors.New("connection reset"))
	_, err = suite.svc.GetRun(id)
	suite.Error(err)
	suite.False(apperrors.IsNotFound(err))
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
