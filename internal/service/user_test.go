package service_test

import (
	"context"
	"errors"
	"testing"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func fakeHash(password string) (string, error) {
	return "hashed:" + password, nil
}

func boolPtr(b bool) *bool { return &b }

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	mockEmpRepo  *mocks.MockEmployeeRepositoryInterface
	userService  *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockEmpRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockEmpRepo, fakeHash, validation.New())
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) user(email string, role models.Role) *models.User {
	u := &models.User{Email: email, FullName: "Joana Lima", Role: role, IsActive: true}
	u.ID = uuid.New()
	return u
}

// TestCreateUser tests provisioning an account with a local password
func (suite *UserServiceTestSuite) TestCreateUser() {
	req := &service.CreateUserRequest{
		Email:    " Joana.Lima@Instituto.gov.br ",
		FullName: "Joana Lima",
		Password: "s3nha-forte",
		Role:     "finance",
	}
	suite.mockUserRepo.EXPECT().GetByEmail("joana.lima@instituto.gov.br").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(suite.T(), "hashed:s3nha-forte", u.PasswordHash)
		return nil
	})

	u, err := suite.userService.CreateUser(actorCtx("admin@instituto.gov.br"), req)
	suite.Require().NoError(err)
	suite.Equal("joana.lima@instituto.gov.br", u.Email)
	suite.Equal(models.RoleFinance, u.Role)
	suite.True(u.IsActive)
	suite.Equal("admin@instituto.gov.br", u.CreatedBy)
}

// TestCreateUserWithoutPassword keeps gov.br-only accounts without a hash
func (suite *UserServiceTestSuite) TestCreateUserWithoutPassword() {
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil)

	u, err := suite.userService.CreateUser(context.Background(), &service.CreateUserRequest{
		Email: "ana@instituto.gov.br", FullName: "Ana Reis", Role: "viewer",
	})
	suite.Require().NoError(err)
	suite.Empty(u.PasswordHash)
}

func (suite *UserServiceTestSuite) TestCreateUserValidation() {
	_, err := suite.userService.CreateUser(context.Background(), &service.CreateUserRequest{
		Email: "not-an-email", FullName: "Ana Reis", Role: "superuser", Password: "short",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestCreateUserDuplicateEmail() {
	suite.mockUserRepo.EXPECT().GetByEmail("ana@instituto.gov.br").Return(suite.user("ana@instituto.gov.br", models.RoleViewer), nil)

	_, err := suite.userService.CreateUser(context.Background(), &service.CreateUserRequest{
		Email: "ana@instituto.gov.br", FullName: "Ana Reis", Role: "viewer",
	})
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestCreateUserUnknownEmployee() {
	empID := uuid.New()
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)
	suite.mockEmpRepo.EXPECT().GetByID(empID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.CreateUser(context.Background(), &service.CreateUserRequest{
		Email: "ana@instituto.gov.br", FullName: "Ana Reis", Role: "hr", EmployeeID: &empID,
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestCreateUserHashFailure() {
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockEmpRepo,
		func(string) (string, error) { return "", errors.New("bcrypt failed") }, validation.New())
	suite.mockUserRepo.EXPECT().GetByEmail(gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.CreateUser(context.Background(), &service.CreateUserRequest{
		Email: "ana@instituto.gov.br", FullName: "Ana Reis", Role: "viewer", Password: "s3nha-forte",
	})
	suite.EqualError(err, "bcrypt failed")
}

// TestGetUserByID tests the not found mapping
func (suite *UserServiceTestSuite) TestGetUserByID() {
	id := uuid.New()
	suite.mockUserRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.userService.GetUserByID(id)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestListUsersNormalizesPage() {
	suite.mockUserRepo.EXPECT().GetAll(20, 0).Return(nil, int64(0), nil)

	out, err := suite.userService.ListUsers(-1, 1000)
	suite.Require().NoError(err)
	suite.Equal(1, out.Page)
	suite.Equal(20, out.PageSize)
	suite.NotNil(out.Items)
}

func (suite *UserServiceTestSuite) TestUpdateUserCannotDemoteSelf() {
	me := suite.user("admin@instituto.gov.br", models.RoleAdmin)
	suite.mockUserRepo.EXPECT().GetByID(me.ID).Return(me, nil).Times(2)

	ctx := actorCtx("admin@instituto.gov.br")
	_, err := suite.userService.UpdateUser(ctx, me.ID, &service.UpdateUserRequest{
		FullName: "Admin", Role: "viewer", IsActive: boolPtr(true),
	})
	suite.True(apperrors.IsConflict(err))

	_, err = suite.userService.UpdateUser(ctx, me.ID, &service.UpdateUserRequest{
		FullName: "Admin", Role: "admin", IsActive: boolPtr(false),
	})
	suite.True(apperrors.IsConflict(err))
}

func (suite *UserServiceTestSuite) TestUpdateUserDeactivatesOther() {
	other := suite.user("ana@instituto.gov.br", models.RoleHR)
	suite.mockUserRepo.EXPECT().GetByID(other.ID).Return(other, nil)
	suite.mockUserRepo.EXPECT().Update(other).Return(nil)

	out, err := suite.userService.UpdateUser(actorCtx("admin@instituto.gov.br"), other.ID, &service.UpdateUserRequest{
		FullName: "Ana Reis", Role: "viewer", IsActive: boolPtr(false),
	})
	suite.Require().NoError(err)
	suite.False(out.IsActive)
	suite.Equal(models.RoleViewer, out.Role)
	suite.Equal("admin@instituto.gov.br", out.UpdatedBy)
}

func (suite *UserServiceTestSuite) TestUpdateUserRequiresIsActive() {
	_, err := suite.userService.UpdateUser(context.Background(), uuid.New(), &service.UpdateUserRequest{
		FullName: "Ana Reis", Role: "viewer",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestResetPassword() {
	u := suite.user("ana@instituto.gov.br", models.RoleViewer)
	suite.mockUserRepo.EXPECT().GetByID(u.ID).Return(u, nil)
	suite.mockUserRepo.EXPECT().Update(u).Return(nil)

	err := suite.userService.ResetPassword(context.Background(), u.ID, &service.ResetPasswordRequest{Password: "nova-senha-123"})
	suite.Require().NoError(err)
	suite.Equal("hashed:nova-senha-123", u.PasswordHash)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
