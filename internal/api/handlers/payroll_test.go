package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PayrollHandlerTestSuite defines the test suite for PayrollHandler
type PayrollHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	svc       *mocks.MockPayrollServiceInterface
	httpSuite *testutils.HTTPTestSuite
}

func (suite *PayrollHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.svc = mocks.NewMockPayrollServiceInterface(suite.ctrl)
	h := NewPayrollHandler(suite.svc)
	suite.httpSuite = testutils.SignedIn("finance", "folha@instituto.gov.br")

	runs := suite.httpSuite.Router.Group("/api/v1/payroll/runs")
	{
		runs.GET("", h.ListRuns)
		runs.POST("/:id/process", h.Transition(models.PayrollStatusProcessing))
		runs.POST("/:id/reopen", h.Transition(models.PayrollStatusReopened))
		runs.POST("/:id/import", h.Import)
		runs.GET("/:id/export", h.Export)
	}
}

func (suite *PayrollHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PayrollHandlerTestSuite) TestListRunsFilter() {
	suite.svc.EXPECT().ListRuns(repository.PayrollRunFilter{Year: 2024, Status: models.PayrollStatusClosed}, 1, 20).
		Return(&service.ListResponse[models.PayrollRun]{Items: []models.PayrollRun{}, Page: 1, PageSize: 20}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/payroll/runs?year=2024&status=closed", nil)

	suite.Equal(http.StatusOK, w.Code)
}

// TestTransitionWithoutBody tests that state changes accept an empty body
func (suite *PayrollHandlerTestSuite) TestTransitionWithoutBody() {
	id := uuid.New()
	suite.svc.EXPECT().Transition(gomock.Any(), id, &service.TransitionRequest{Status: "processing"}).
		Return(&models.PayrollRun{Status: models.PayrollStatusProcessing}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/payroll/runs/"+id.String()+"/process", nil)

	var run models.PayrollRun
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &run)
	suite.Equal(models.PayrollStatusProcessing, run.Status)
}

func (suite *PayrollHandlerTestSuite) TestReopenCarriesReason() {
	id := uuid.New()
	suite.svc.EXPECT().Transition(gomock.Any(), id, &service.TransitionRequest{Status: "reopened", Reason: "rubrica lançada em duplicidade"}).
		Return(&models.PayrollRun{Status: models.PayrollStatusReopened}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/payroll/runs/"+id.String()+"/reopen", map[string]string{
		"reason": "rubrica lançada em duplicidade",
	})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *PayrollHandlerTestSuite) TestTransitionRejected() {
	id := uuid.New()
	suite.svc.EXPECT().Transition(gomock.Any(), id, gomock.Any()).Return(nil, apperrors.ErrInvalidStatusTransition)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/payroll/runs/"+id.String()+"/process", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "invalid status transition")
}

func (suite *PayrollHandlerTestSuite) TestImport() {
	id := uuid.New()
	suite.svc.EXPECT().ImportEntries(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, r io.Reader) (*service.ImportResult, error) {
			data, err := io.ReadAll(r)
			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), "planilha", string(data))
			return &service.ImportResult{Total: 3, Inserted: 2, Invalid: []service.ImportIssue{
				{Line: 4, Key: "0000099", Reason: "unknown registration number"},
			}}, nil
		})

	w := suite.httpSuite.Upload("/api/v1/payroll/runs/"+id.String()+"/import", "folha.xlsx", []byte("planilha"), nil)

	var out service.ImportResult
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &out)
	suite.Equal(2, out.Inserted)
	suite.Require().Len(out.Invalid, 1)
	suite.Equal(4, out.Invalid[0].Line)
}

func (suite *PayrollHandlerTestSuite) TestImportRequiresFile() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/payroll/runs/"+uuid.NewString()+"/import", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "\"file\"")
}

func (suite *PayrollHandlerTestSuite) TestExport() {
	id := uuid.New()
	suite.svc.EXPECT().ExportRun(gomock.Any(), id).DoAndReturn(func(w io.Writer, _ uuid.UUID) error {
		_, err := io.Copy(w, bytes.NewBufferString("xlsx-bytes"))
		return err
	})

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/payroll/runs/"+id.String()+"/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(service.ContentTypes[service.FormatXLSX], w.Header().Get("Content-Type"))
	suite.True(strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;"))
	suite.Contains(w.Header().Get("Content-Disposition"), "folha-"+id.String()+".xlsx")
	suite.Equal("xlsx-bytes", w.Body.String())
}

func (suite *PayrollHandlerTestSuite) TestExportUnknownRun() {
	id := uuid.New()
	suite.svc.EXPECT().ExportRun(gomock.Any(), id).Return(apperrors.ErrPayrollRunNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/payroll/runs/"+id.String()+"/export", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "")
}

func TestPayrollHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollHandlerTestSuite))
}
