package handlers

import (
	"context"
	"net/http"
	"testing"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.mockUserService)
	suite.httpSuite = testutils.SignedIn("admin", "admin@instituto.gov.br")

	users := suite.httpSuite.Router.Group("/api/v1/admin/users")
	{
		users.POST("", suite.handler.CreateUser)
		users.GET("", suite.handler.ListUsers)
		users.GET("/:id", suite.handler.GetUser)
		users.PUT("/:id", suite.handler.UpdateUser)
		users.POST("/:id/password", suite.handler.ResetPassword)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUser tests that the signed-in admin reaches the service as actor
func (suite *UserHandlerTestSuite) TestCreateUser() {
	suite.mockUserService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *service.CreateUserRequest) (*models.User, error) {
			assert.Equal(suite.T(), "admin@instituto.gov.br", ctx.Value(logger.ContextKeyEmail))
			assert.Equal(suite.T(), "hr", req.Role)
			return &models.User{Email: req.Email, FullName: req.FullName, Role: models.RoleHR, IsActive: true}, nil
		})

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/users", map[string]interface{}{
		"email":     "ana@instituto.gov.br",
		"full_name": "Ana Reis",
		"role":      "hr",
		"password":  "s3nha-forte",
	})

	var user models.User
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &user)
	suite.Equal("ana@instituto.gov.br", user.Email)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *UserHandlerTestSuite) TestCreateUserMalformedBody() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/users", []string{"not", "an", "object"})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid request body")
}

func (suite *UserHandlerTestSuite) TestCreateUserDuplicate() {
	suite.mockUserService.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/users", map[string]string{
		"email": "ana@instituto.gov.br", "full_name": "Ana Reis", "role": "viewer",
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "")
}

func (suite *UserHandlerTestSuite) TestGetUser() {
	id := uuid.New()
	suite.mockUserService.EXPECT().GetUserByID(id).Return(nil, apperrors.ErrUserNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/users/"+id.String(), nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "user not found")

	w = suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/users/not-a-uuid", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid id")
}

func (suite *UserHandlerTestSuite) TestListUsersPaging() {
	suite.mockUserService.EXPECT().ListUsers(2, 50).Return(&service.ListResponse[models.User]{
		Items: []models.User{}, Total: 51, Page: 2, PageSize: 50,
	}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/admin/users?page=2&page_size=50", nil)

	var out service.ListResponse[models.User]
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &out)
	suite.Equal(int64(51), out.Total)
}

func (suite *UserHandlerTestSuite) TestUpdateUserSelfDemotion() {
	id := uuid.New()
	suite.mockUserService.EXPECT().UpdateUser(gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.NewConflictError("administrators cannot remove their own admin role"))

	w := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/admin/users/"+id.String(), map[string]interface{}{
		"full_name": "Admin", "role": "viewer", "is_active": true,
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "own admin role")
}

func (suite *UserHandlerTestSuite) TestResetPassword() {
	id := uuid.New()
	suite.mockUserService.EXPECT().ResetPassword(gomock.Any(), id, &service.ResetPasswordRequest{Password: "nova-senha-123"}).Return(nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/admin/users/"+id.String()+"/password", map[string]string{
		"password": "nova-senha-123",
	})

	suite.Equal(http.StatusNoContent, w.Code)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
