//go:build integration
// +build integration

package seed

import (
	"os"
	"strings"
	"testing"

	"institute-portal-backend/internal/database/models"
	"institute-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ApplyTestSuite loads seed data into a real database
type ApplyTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
}

func (suite *ApplyTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
}

func (suite *ApplyTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
	testutils.CleanupSharedContainer()
}

func (suite *ApplyTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ApplyTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func hash(p string) (string, error) { return "hashed:" + p, nil }

// TestApplyReferenceFile loads the shipped data file twice
func (suite *ApplyTestSuite) TestApplyReferenceFile() {
	f, err := os.Open("../../scripts/initial_data.yaml")
	suite.Require().NoError(err)
	defer f.Close()
	data, err := Parse(f)
	suite.Require().NoError(err)

	counts, err := Apply(suite.baseTestSuite.DB, data, hash)
	suite.Require().NoError(err)
	suite.Equal(len(data.Units), counts.Units)
	suite.Equal(len(data.Positions), counts.Positions)
	suite.Equal(1, counts.Users)
	suite.Equal(len(data.Pages), counts.Pages)

	again, err := Apply(suite.baseTestSuite.DB, data, hash)
	suite.Require().NoError(err)
	suite.Equal(Counts{}, *again)

	var cgp, diad models.Unit
	db := suite.baseTestSuite.DB
	suite.Require().NoError(db.First(&cgp, "code = ?", "CGP").Error)
	suite.Require().NoError(db.First(&diad, "code = ?", "DIAD").Error)
	suite.Require().NotNil(cgp.ParentID)
	suite.Equal(diad.ID, *cgp.ParentID)

	var admin models.User
	suite.Require().NoError(db.First(&admin, "email = ?", "admin@instituto.gov.br").Error)
	suite.Equal(models.RoleAdmin, admin.Role)
	suite.True(strings.HasPrefix(admin.PasswordHash, "hashed:"))
}

// TestApplyChildBeforeParent tests that file order does not matter
func (suite *ApplyTestSuite) TestApplyChildBeforeParent() {
	data, err := Parse(strings.NewReader(`
units:
  - {code: SUB, name: Subunidade, parent: TOP}
  - {code: TOP, name: Topo}
`))
	suite.Require().NoError(err)

	counts, err := Apply(suite.baseTestSuite.DB, data, hash)
	suite.Require().NoError(err)
	suite.Equal(2, counts.Units)
}

func TestApplyTestSuite(t *testing.T) {
	suite.Run(t, new(ApplyTestSuite))
}
