package service_test

import (
	"bytes"
	"context"
	"testing"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// SchoolServiceTestSuite defines the test suite for SchoolService
type SchoolServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	schools     *mocks.MockSchoolRepositoryInterface
	federations *mocks.MockFederationRepositoryInterface
	svc         *service.SchoolService
}

func (suite *SchoolServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.schools = mocks.NewMockSchoolRepositoryInterface(suite.ctrl)
	suite.federations = mocks.NewMockFederationRepositoryInterface(suite.ctrl)
	suite.svc = service.NewSchoolService(suite.schools, suite.federations, validation.New())
}

func (suite *SchoolServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func schoolSheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"INEP", "Nome", "Município", "UF", "Rede", "Federação"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func (suite *SchoolServiceTestSuite) TestImportSeparatesDuplicatesAndInvalidRows() {
	fed := models.Federation{Acronym: "FEDF"}
	fed.ID = uuid.New()

	sheet := schoolSheet(suite.T(), [][]interface{}{
		{"53000001", "CEF 01 do Gama", "Brasília", "df", "Estadual", "fedf"}, // line 2: inserted
		{"53000002", "CEM 02", "Brasília", "DF", "", ""},                     // line 3: already registered
		{"53000001", "CEF 01 do Gama (cópia)", "Brasília", "DF", "", ""},     // line 4: repeated in file
		{"5300003", "Escola curta", "", "", "", ""},                          // line 5: bad INEP
		{"53000004", "", "", "", "", ""},                                     // line 6: no name
		{"53000005", "Escola X", "", "XX", "", ""},                           // line 7: bad UF
		{"53000006", "Escola Y", "", "", "Comunitária", ""},                  // line 8: bad network
		{"53000007", "Escola Z", "", "", "", "FEXX"},                         // line 9: bad federation
		{"53000008", "Colégio Particular", "Taguatinga", "", "particular", ""},
	})

	suite.federations.EXPECT().GetAll().Return([]models.Federation{fed}, nil)
	suite.schools.EXPECT().ExistingINEPs(gomock.Any()).DoAndReturn(func(ineps []string) ([]string, error) {
		assert.NotContains(suite.T(), ineps, "5300003")
		return []string{"53000002"}, nil
	})
	suite.schools.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(batch []models.School) error {
		require.Len(suite.T(), batch, 2)
		assert.Equal(suite.T(), "53000001", batch[0].INEP)
		assert.Equal(suite.T(), "DF", batch[0].State)
		assert.Equal(suite.T(), models.SchoolNetworkState, batch[0].Network)
		require.NotNil(suite.T(), batch[0].FederationID)
		assert.Equal(suite.T(), fed.ID, *batch[0].FederationID)
		assert.Equal(suite.T(), models.SchoolNetworkPrivate, batch[1].Network)
		assert.Equal(suite.T(), "secretaria@instituto.gov.br", batch[1].CreatedBy)
		return nil
	})

	res, err := suite.svc.ImportXLSX(actorCtx("secretaria@instituto.gov.br"), sheet)
	suite.Require().NoError(err)
	suite.Equal(9, res.Total)
	suite.Equal(2, res.Inserted)

	suite.Require().Len(res.Duplicates, 2)
	suite.Equal(3, res.Duplicates[0].Line)
	suite.Equal("school with this INEP is already registered", res.Duplicates[0].Reason)
	suite.Equal(4, res.Duplicates[1].Line)
	suite.Equal("INEP appears earlier in the file", res.Duplicates[1].Reason)

	suite.Require().Len(res.Invalid, 5)
	lines := []int{}
	for _, issue := range res.Invalid {
		lines = append(lines, issue.Line)
	}
	suite.Equal([]int{5, 6, 7, 8, 9}, lines)
}

func (suite *SchoolServiceTestSuite) TestImportNothingNew() {
	sheet := schoolSheet(suite.T(), [][]interface{}{
		{"53000002", "CEM 02", "Brasília", "DF", "", ""},
	})
	suite.federations.EXPECT().GetAll().Return(nil, nil)
	suite.schools.EXPECT().ExistingINEPs([]string{"53000002"}).Return([]string{"53000002"}, nil)

	res, err := suite.svc.ImportXLSX(context.Background(), sheet)
	suite.Require().NoError(err)
	suite.Equal(0, res.Inserted)
	suite.Len(res.Duplicates, 1)
}

func (suite *SchoolServiceTestSuite) TestImportMissingColumns() {
	f := excelize.NewFile()
	defer f.Close()
	suite.Require().NoError(f.SetSheetRow(f.GetSheetName(0), "A1", &[]interface{}{"Código", "Nome"}))
	suite.Require().NoError(f.SetSheetRow(f.GetSheetName(0), "A2", &[]interface{}{"1", "Escola"}))
	buf, err := f.WriteToBuffer()
	suite.Require().NoError(err)

	_, err = suite.svc.ImportXLSX(context.Background(), buf)
	suite.True(apperrors.IsValidation(err))
}

func (suite *SchoolServiceTestSuite) TestImportConcurrentInsert() {
	sheet := schoolSheet(suite.T(), [][]interface{}{
		{"53000001", "CEF 01 do Gama", "", "", "", ""},
	})
	suite.federations.EXPECT().GetAll().Return(nil, nil)
	suite.schools.EXPECT().ExistingINEPs(gomock.Any()).Return(nil, nil)
	suite.schools.EXPECT().CreateBatch(gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

	_, err := suite.svc.ImportXLSX(context.Background(), sheet)
	suite.True(apperrors.IsConflict(err))
}

func (suite *SchoolServiceTestSuite) TestCreateDuplicateINEP() {
	existing := &models.School{INEP: "53000001"}
	existing.ID = uuid.New()
	suite.schools.EXPECT().GetByINEP("53000001").Return(existing, nil)

	_, err := suite.svc.Create(context.Background(), &service.SchoolRequest{INEP: "53000001", Name: "CEF 01"})
	suite.ErrorIs(err, apperrors.ErrSchoolExists)
}

func (suite *SchoolServiceTestSuite) TestCreateUnknownFederation() {
	fedID := uuid.New()
	suite.schools.EXPECT().GetByINEP("53000001").Return(nil, gorm.ErrRecordNotFound)
	suite.federations.EXPECT().GetByID(fedID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Create(context.Background(), &service.SchoolRequest{INEP: "53000001", Name: "CEF 01", FederationID: &fedID})
	suite.True(apperrors.IsValidation(err))
}

func (suite *SchoolServiceTestSuite) TestCreateDefaultsNetwork() {
	suite.schools.EXPECT().GetByINEP("53000001").Return(nil, gorm.ErrRecordNotFound)
	suite.schools.EXPECT().Create(gomock.Any()).Return(nil)

	school, err := suite.svc.Create(context.Background(), &service.SchoolRequest{INEP: "53000001", Name: " CEF 01 ", State: "df"})
	suite.Require().NoError(err)
	suite.Equal(models.SchoolNetworkState, school.Network)
	suite.Equal("DF", school.State)
	suite.Equal("CEF 01", school.Name)
}

func (suite *SchoolServiceTestSuite) TestUpdateKeepsOwnINEP() {
	school := &models.School{INEP: "53000001", Name: "CEF 01"}
	school.ID = uuid.New()
	suite.schools.EXPECT().GetByID(school.ID).Return(school, nil)
	suite.schools.EXPECT().GetByINEP("53000001").Return(school, nil)
	suite.schools.EXPECT().Update(school).Return(nil)

	out, err := suite.svc.Update(context.Background(), school.ID, &service.SchoolRequest{INEP: "53000001", Name: "CEF 01 do Gama"})
	suite.Require().NoError(err)
	suite.Equal("CEF 01 do Gama", out.Name)
}

func (suite *SchoolServiceTestSuite) TestGetByINEPValidatesCode() {
	_, err := suite.svc.GetByINEP("123")
	suite.True(apperrors.IsValidation(err))
}

func (suite *SchoolServiceTestSuite) TestDeleteWithManagers() {
	id := uuid.New()
	suite.schools.EXPECT().GetByID(id).Return(&models.School{}, nil)
	suite.schools.EXPECT().Delete(id).Return(&pgconn.PgError{Code: "23503"})

	err := suite.svc.Delete(id)
	suite.True(apperrors.IsConflict(err))
}

func TestSchoolServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SchoolServiceTestSuite))
}
