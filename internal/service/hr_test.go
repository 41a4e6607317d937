package service_test

import (
	"testing"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func unitWith(code string, parent *uuid.UUID) models.Unit {
	u := models.Unit{Code: code, Name: code, ParentID: parent, IsActive: true}
	u.ID = uuid.New()
	return u
}

func TestBuildUnitTree(t *testing.T) {
	root := unitWith("01", nil)
	b := unitWith("01.02", &root.ID)
	a := unitWith("01.01", &root.ID)
	leaf := unitWith("01.01.01", &a.ID)
	missing := uuid.New()
	orphan := unitWith("99", &missing)

	tree := service.BuildUnitTree([]models.Unit{leaf, b, orphan, a, root})

	require.Len(t, tree, 2)
	assert.Equal(t, "01", tree[0].Code)
	assert.Equal(t, "99", tree[1].Code, "units whose parent is unknown become roots")
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "01.01", tree[0].Children[0].Code)
	assert.Equal(t, "01.02", tree[0].Children[1].Code)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "01.01.01", tree[0].Children[0].Children[0].Code)
	assert.NotNil(t, tree[1].Children)
}

// UnitServiceTestSuite defines the test suite for UnitService
type UnitServiceTestSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	units *mocks.MockUnitRepositoryInterface
	svc   *service.UnitService
}

func (suite *UnitServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.units = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.svc = service.NewUnitService(suite.units, validation.New())
}

func (suite *UnitServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UnitServiceTestSuite) TestUpdateRejectsMovingUnderDescendant() {
	root := unitWith("01", nil)
	child := unitWith("01.01", &root.ID)
	grandchild := unitWith("01.01.01", &child.ID)

	suite.units.EXPECT().GetByID(root.ID).Return(&root, nil)
	suite.units.EXPECT().GetAll().Return([]models.Unit{root, child, grandchild}, nil)

	_, err := suite.svc.Update(actorCtx("rh@instituto.gov.br"), root.ID, &service.UpdateUnitRequest{
		Name: "Diretoria", ParentID: &grandchild.ID, IsActive: true,
	})
	suite.ErrorIs(err, apperrors.ErrUnitCycle)
}

func (suite *UnitServiceTestSuite) TestUpdateRejectsSelfParent() {
	root := unitWith("01", nil)
	suite.units.EXPECT().GetByID(root.ID).Return(&root, nil)
	suite.units.EXPECT().GetAll().Return([]models.Unit{root}, nil)

	_, err := suite.svc.Update(actorCtx("rh@instituto.gov.br"), root.ID, &service.UpdateUnitRequest{
		Name: "Diretoria", ParentID: &root.ID, IsActive: true,
	})
	suite.ErrorIs(err, apperrors.ErrUnitCycle)
}

func (suite *UnitServiceTestSuite) TestUpdateMovesUnderSibling() {
	root := unitWith("01", nil)
	a := unitWith("01.01", &root.ID)
	b := unitWith("01.02", &root.ID)

	suite.units.EXPECT().GetByID(b.ID).Return(&b, nil)
	suite.units.EXPECT().GetAll().Return([]models.Unit{root, a, b}, nil)
	suite.units.EXPECT().Update(gomock.Any()).Return(nil)

	out, err := suite.svc.Update(actorCtx("rh@instituto.gov.br"), b.ID, &service.UpdateUnitRequest{
		Name: "Coordenação", ParentID: &a.ID, IsActive: true,
	})
	suite.Require().NoError(err)
	suite.Equal(a.ID, *out.ParentID)
	suite.Equal("rh@instituto.gov.br", out.UpdatedBy)
}

func (suite *UnitServiceTestSuite) TestDeleteWithActiveAssignments() {
	u := unitWith("01", nil)
	suite.units.EXPECT().GetByID(u.ID).Return(&u, nil)
	suite.units.EXPECT().CountActiveAssignments(u.ID).Return(int64(3), nil)

	err := suite.svc.Delete(actorCtx("rh@instituto.gov.br"), u.ID)
	suite.ErrorIs(err, apperrors.ErrUnitHasAssignments)
}

func (suite *UnitServiceTestSuite) TestDeleteWithChildren() {
	root := unitWith("01", nil)
	child := unitWith("01.01", &root.ID)
	suite.units.EXPECT().GetByID(root.ID).Return(&root, nil)
	suite.units.EXPECT().CountActiveAssignments(root.ID).Return(int64(0), nil)
	suite.units.EXPECT().GetAll().Return([]models.Unit{root, child}, nil)

	err := suite.svc.Delete(actorCtx("rh@instituto.gov.br"), root.ID)
	suite.True(apperrors.IsConflict(err))
}

func TestUnitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UnitServiceTestSuite))
}

// AssignmentServiceTestSuite defines the test suite for AssignmentService
type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	assignments *mocks.MockAssignmentRepositoryInterface
	employees   *mocks.MockEmployeeRepositoryInterface
	units       *mocks.MockUnitRepositoryInterface
	positions   *mocks.MockPositionRepositoryInterface
	svc         *service.AssignmentService

	employee *models.Employee
	unit     models.Unit
	position *models.Position
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.assignments = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.units = mocks.NewMockUnitRepositoryInterface(suite.ctrl)
	suite.positions = mocks.NewMockPositionRepositoryInterface(suite.ctrl)
	suite.svc = service.NewAssignmentService(suite.assignments, suite.employees, suite.units, suite.positions, validation.New())

	suite.employee = &models.Employee{FullName: "Ana Souza", Status: models.EmployeeStatusActive}
	suite.employee.ID = uuid.New()
	suite.unit = unitWith("02", nil)
	suite.position = &models.Position{Code: "ANL", Title: "Analista"}
	suite.position.ID = uuid.New()
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentServiceTestSuite) request(start string) *service.AssignRequest {
	return &service.AssignRequest{UnitID: suite.unit.ID, PositionID: suite.position.ID, StartDate: start}
}

func (suite *AssignmentServiceTestSuite) TestAssignClosesPreviousTheDayBefore() {
	current := &models.Assignment{EmployeeID: suite.employee.ID, StartDate: time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC), IsActive: true}

	suite.employees.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
	suite.units.EXPECT().GetByID(suite.unit.ID).Return(&suite.unit, nil)
	suite.positions.EXPECT().GetByID(suite.position.ID).Return(suite.position, nil)
	suite.assignments.EXPECT().GetActiveByEmployee(suite.employee.ID).Return(current, nil)
	suite.assignments.EXPECT().Assign(gomock.Any(), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)).
		DoAndReturn(func(next *models.Assignment, _ time.Time) error {
			assert.True(suite.T(), next.IsActive)
			assert.Equal(suite.T(), suite.unit.ID, next.UnitID)
			return nil
		})

	next, err := suite.svc.Assign(actorCtx("rh@instituto.gov.br"), suite.employee.ID, suite.request("2024-03-01"))
	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), next.StartDate)
}

func (suite *AssignmentServiceTestSuite) TestAssignStartMustFollowCurrent() {
	current := &models.Assignment{StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), IsActive: true}

	suite.employees.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
	suite.units.EXPECT().GetByID(suite.unit.ID).Return(&suite.unit, nil)
	suite.positions.EXPECT().GetByID(suite.position.ID).Return(suite.position, nil)
	suite.assignments.EXPECT().GetActiveByEmployee(suite.employee.ID).Return(current, nil)

	_, err := suite.svc.Assign(actorCtx("rh@instituto.gov.br"), suite.employee.ID, suite.request("2024-03-01"))
	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestAssignFirstAssignment() {
	suite.employees.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
	suite.units.EXPECT().GetByID(suite.unit.ID).Return(&suite.unit, nil)
	suite.positions.EXPECT().GetByID(suite.position.ID).Return(suite.position, nil)
	suite.assignments.EXPECT().GetActiveByEmployee(suite.employee.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.assignments.EXPECT().Assign(gomock.Any(), gomock.Any()).Return(nil)

	_, err := suite.svc.Assign(actorCtx("rh@instituto.gov.br"), suite.employee.ID, suite.request("2024-03-01"))
	suite.NoError(err)
}

func (suite *AssignmentServiceTestSuite) TestAssignTerminatedEmployee() {
	suite.employee.Status = models.EmployeeStatusTerminated
	suite.employees.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)

	_, err := suite.svc.Assign(actorCtx("rh@instituto.gov.br"), suite.employee.ID, suite.request("2024-03-01"))
	suite.True(apperrors.IsConflict(err))
}

func (suite *AssignmentServiceTestSuite) TestAssignInactiveUnit() {
	suite.unit.IsActive = false
	suite.employees.EXPECT().GetByID(suite.employee.ID).Return(suite.employee, nil)
	suite.units.EXPECT().GetByID(suite.unit.ID).Return(&suite.unit, nil)

	_, err := suite.svc.Assign(actorCtx("rh@instituto.gov.br"), suite.employee.ID, suite.request("2024-03-01"))
	suite.True(apperrors.IsValidation(err))
}

func (suite *AssignmentServiceTestSuite) TestEndWithoutActiveAssignment() {
	suite.assignments.EXPECT().GetActiveByEmployee(suite.employee.ID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.End(actorCtx("rh@instituto.gov.br"), suite.employee.ID, &service.EndAssignmentRequest{EndDate: "2024-03-01"})
	suite.ErrorIs(err, apperrors.ErrNoActiveAssignment)
}

func (suite *AssignmentServiceTestSuite) TestEndBeforeStart() {
	current := &models.Assignment{StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), IsActive: true}
	suite.assignments.EXPECT().GetActiveByEmployee(suite.employee.ID).Return(current, nil)

	err := suite.svc.End(actorCtx("rh@instituto.gov.br"), suite.employee.ID, &service.EndAssignmentRequest{EndDate: "2024-02-28"})
	suite.True(apperrors.IsValidation(err))
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
