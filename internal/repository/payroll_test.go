//go:build integration
// +build integration

package repository

import (
	"testing"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PayrollRepositoryTestSuite tests the payroll run and entry repositories
type PayrollRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	runs          *PayrollRunRepository
	entries       *PayrollEntryRepository
	employees     *EmployeeRepository
	units         *UnitRepository
	factories     *testutils.FactorySet
}

func (suite *PayrollRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.runs = NewPayrollRunRepository(db)
	suite.entries = NewPayrollEntryRepository(db)
	suite.employees = NewEmployeeRepository(db)
	suite.units = NewUnitRepository(db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *PayrollRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *PayrollRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *PayrollRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PayrollRepositoryTestSuite) run(year, month int, status models.PayrollStatus) *models.PayrollRun {
	r := suite.factories.Payroll.Run(year, month)
	r.Status = status
	suite.Require().NoError(suite.runs.Create(r))
	return r
}

func (suite *PayrollRepositoryTestSuite) employeeIn(unitID uuid.UUID) *models.Employee {
	e := suite.factories.Employee.WithUnit(unitID)
	suite.Require().NoError(suite.employees.Create(e))
	return e
}

func (suite *PayrollRepositoryTestSuite) TestGetByPeriod() {
	r := suite.run(2024, 3, models.PayrollStatusOpen)

	found, err := suite.runs.GetByPeriod(2024, 3, models.PayrollKindMonthly)
	suite.Require().NoError(err)
	suite.Equal(r.ID, found.ID)

	_, err = suite.runs.GetByPeriod(2024, 3, models.PayrollKindThirteenth)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestOnePeriodPerKind tests the unique index on year, month and kind
func (suite *PayrollRepositoryTestSuite) TestOnePeriodPerKind() {
	suite.run(2024, 3, models.PayrollStatusOpen)

	dup := suite.factories.Payroll.Run(2024, 3)
	suite.True(IsUniqueViolation(suite.runs.Create(dup)))

	extra := suite.factories.Payroll.Run(2024, 3)
	extra.Kind = models.PayrollKindSupplementary
	suite.NoError(suite.runs.Create(extra))
}

func (suite *PayrollRepositoryTestSuite) TestListClosedByYearAndCounts() {
	suite.run(2024, 2, models.PayrollStatusClosed)
	suite.run(2024, 1, models.PayrollStatusClosed)
	suite.run(2024, 3, models.PayrollStatusProcessing)
	suite.run(2023, 12, models.PayrollStatusClosed)

	closed, err := suite.runs.ListClosedByYear(2024)
	suite.Require().NoError(err)
	suite.Require().Len(closed, 2)
	suite.Equal(1, closed[0].Month)
	suite.Equal(2, closed[1].Month)

	open, err := suite.runs.CountByStatus(models.PayrollStatusOpen, models.PayrollStatusProcessing)
	suite.Require().NoError(err)
	suite.Equal(int64(1), open)

	list, total, err := suite.runs.List(PayrollRunFilter{Year: 2024}, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(list, 2)
	suite.Equal(3, list[0].Month)
}

func (suite *PayrollRepositoryTestSuite) TestEntriesTotalsAndBreakdown() {
	unit := suite.factories.Unit.Create()
	suite.Require().NoError(suite.units.Create(unit))
	a, b := suite.employeeIn(unit.ID), suite.employeeIn(unit.ID)
	r := suite.run(2024, 4, models.PayrollStatusOpen)

	suite.Require().NoError(suite.entries.CreateBatch([]models.PayrollEntry{
		*suite.factories.Payroll.Entry(r.ID, a.ID, "5432.10", "1200.35"),
		*suite.factories.Payroll.Entry(r.ID, b.ID, "3100.00", "410.90"),
	}))

	totals, err := suite.entries.Totals(r.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), totals.Count)
	suite.Equal("8532.10", totals.Gross.StringFixed(2))
	suite.Equal("1611.25", totals.Deductions.StringFixed(2))
	suite.Equal("6920.85", totals.Net.StringFixed(2))

	breakdown, err := suite.entries.UnitBreakdown(r.ID)
	suite.Require().NoError(err)
	suite.Require().Len(breakdown, 1)
	suite.Equal(unit.Name, breakdown[0].UnitName)

	ids, err := suite.entries.EmployeeIDsInRun(r.ID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]uuid.UUID{a.ID, b.ID}, ids)

	entry, err := suite.entries.GetByRunAndEmployee(r.ID, a.ID)
	suite.Require().NoError(err)
	suite.Equal("4231.75", entry.NetAmount.StringFixed(2))
}

// TestOneEntryPerEmployee tests the unique index on run and employee
func (suite *PayrollRepositoryTestSuite) TestOneEntryPerEmployee() {
	unit := suite.factories.Unit.Create()
	suite.Require().NoError(suite.units.Create(unit))
	e := suite.employeeIn(unit.ID)
	r := suite.run(2024, 5, models.PayrollStatusOpen)

	suite.Require().NoError(suite.entries.Create(suite.factories.Payroll.Entry(r.ID, e.ID, "1000", "100")))
	err := suite.entries.Create(suite.factories.Payroll.Entry(r.ID, e.ID, "2000", "200"))

	suite.True(IsUniqueViolation(err))
}

func (suite *PayrollRepositoryTestSuite) TestEmptyRunTotals() {
	r := suite.run(2024, 6, models.PayrollStatusOpen)

	totals, err := suite.entries.Totals(r.ID)
	suite.Require().NoError(err)
	suite.Zero(totals.Count)
	suite.True(totals.Net.IsZero())
}

func TestPayrollRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollRepositoryTestSuite))
}
