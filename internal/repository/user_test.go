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

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.WithRole(models.RoleHR)

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
	suite.NotZero(user.UpdatedAt)
}

// TestCreateDuplicateEmail tests the unique index on email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(first))

	second := suite.factories.User.Create()
	second.Email = first.Email
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetByEmailIgnoresCase tests that login lookups are case-insensitive
func (suite *UserRepositoryTestSuite) TestGetByEmailIgnoresCase() {
	user := suite.factories.User.Create()
	user.Email = "joana.lima@instituto.gov.br"
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("Joana.Lima@Instituto.GOV.br")

	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllPaginates tests listing users ordered by name
func (suite *UserRepositoryTestSuite) TestGetAllPaginates() {
	for _, name := range []string{"Carla", "Ana", "Bruno"} {
		u := suite.factories.User.Create()
		u.FullName = name
		suite.Require().NoError(suite.repo.Create(u))
	}

	users, total, err := suite.repo.GetAll(2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(users, 2)
	suite.Equal("Ana", users[0].FullName)
	suite.Equal("Bruno", users[1].FullName)

	users, _, err = suite.repo.GetAll(2, 2)
	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	suite.Equal("Carla", users[0].FullName)
}

// TestUpdate tests changing role and deactivating an account
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	user.Role = models.RoleFinance
	user.IsActive = false
	suite.Require().NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.Require().NoError(err)
	suite.Equal(models.RoleFinance, found.Role)
	suite.False(found.IsActive)

	count, err := suite.repo.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
