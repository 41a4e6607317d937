package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/testutils"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CredentialingHandlerTestSuite defines the test suite for CredentialingHandler
type CredentialingHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	schools   *mocks.MockSchoolServiceInterface
	regs      *mocks.MockPreRegistrationServiceInterface
	httpSuite *testutils.HTTPTestSuite
}

func (suite *CredentialingHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.schools = mocks.NewMockSchoolServiceInterface(suite.ctrl)
	suite.regs = mocks.NewMockPreRegistrationServiceInterface(suite.ctrl)
	h := NewCredentialingHandler(nil, suite.schools, suite.regs, nil)

	suite.httpSuite = testutils.SignedIn("credentialing", "credenciamento@instituto.gov.br")
	r := suite.httpSuite.Router
	r.POST("/api/public/pre-registrations", h.SubmitPreRegistration)
	r.GET("/api/public/pre-registrations/status", h.PreRegistrationStatus)
	r.POST("/api/v1/credentialing/schools/import", h.ImportSchools)
	r.POST("/api/v1/credentialing/pre-registrations/:id/approve", h.ApprovePreRegistration)
}

func (suite *CredentialingHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validSubmission() map[string]string {
	return map[string]string{
		"kind":      "employee",
		"full_name": "Maria das Dores Silva",
		"cpf":       "529.982.247-25",
		"email":     "maria@example.com",
		"phone":     "(61) 99876-5432",
	}
}

// TestSubmitInvalidCPF runs the real service so the rejection comes from the
// validator, with the field reported back to the form
func (suite *CredentialingHandlerTestSuite) TestSubmitInvalidCPF() {
	svc := service.NewPreRegistrationService(
		mocks.NewMockPreRegistrationRepositoryInterface(suite.ctrl),
		mocks.NewMockSchoolRepositoryInterface(suite.ctrl),
		mocks.NewMockSchoolManagerRepositoryInterface(suite.ctrl),
		validation.New(),
	)
	h := NewCredentialingHandler(nil, suite.schools, svc, nil)
	router := testutils.SetupHTTPTest()
	router.Router.POST("/api/public/pre-registrations", h.SubmitPreRegistration)

	body := validSubmission()
	body["cpf"] = "123.456.789-00"
	w := router.MakeRequest(http.MethodPost, "/api/public/pre-registrations", body)

	var resp ErrorResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusBadRequest, &resp)
	suite.Equal("must be a valid CPF", resp.Fields["cpf"])
}

func (suite *CredentialingHandlerTestSuite) TestSubmit() {
	suite.regs.EXPECT().Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.SubmitPreRegistrationRequest) (*service.SubmitPreRegistrationResponse, error) {
			suite.Equal("employee", req.Kind)
			suite.Equal("529.982.247-25", req.CPF)
			return &service.SubmitPreRegistrationResponse{Protocol: "20240517-K7M2QX", Status: "pending"}, nil
		})

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/public/pre-registrations", validSubmission())

	var resp service.SubmitPreRegistrationResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &resp)
	suite.Equal("20240517-K7M2QX", resp.Protocol)
}

func (suite *CredentialingHandlerTestSuite) TestSubmitPendingDuplicate() {
	suite.regs.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrPreRegistrationExists)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/public/pre-registrations", validSubmission())

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "pending for this CPF")
}

func (suite *CredentialingHandlerTestSuite) TestSubmitMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/public/pre-registrations", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := suite.httpSuite.Do(req)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid request body")
}

func (suite *CredentialingHandlerTestSuite) TestStatusNotFound() {
	suite.regs.EXPECT().Status("20240517-K7M2QX", "52998224725").Return(nil, apperrors.ErrPreRegistrationNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/pre-registrations/status?protocol=20240517-K7M2QX&cpf=52998224725", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "pre-registration not found")
}

func (suite *CredentialingHandlerTestSuite) TestImportSchoolsReportsDuplicates() {
	suite.schools.EXPECT().ImportXLSX(gomock.Any(), gomock.Any()).Return(&service.ImportResult{
		Total:      3,
		Inserted:   1,
		Duplicates: []service.ImportIssue{{Line: 3, Key: "53012345", Reason: "INEP already registered"}, {Line: 4, Key: "53012345", Reason: "INEP repeated in the file"}},
		Invalid:    []service.ImportIssue{},
	}, nil)

	w := suite.httpSuite.Upload("/api/v1/credentialing/schools/import", "escolas.xlsx", []byte("xlsx"), nil)

	var result service.ImportResult
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &result)
	suite.Equal(1, result.Inserted)
	suite.Len(result.Duplicates, 2)
}

func (suite *CredentialingHandlerTestSuite) TestImportSchoolsWithoutFile() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/credentialing/schools/import", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "file")
}

func (suite *CredentialingHandlerTestSuite) TestApproveInvalidID() {
	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/credentialing/pre-registrations/abc/approve", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid id")
}

func (suite *CredentialingHandlerTestSuite) TestApproveAlreadyReviewed() {
	id := uuid.New()
	suite.regs.EXPECT().Approve(gomock.Any(), id).Return(nil, apperrors.ErrPreRegistrationReviewed)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/credentialing/pre-registrations/"+id.String()+"/approve", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "already been reviewed")
}

func (suite *CredentialingHandlerTestSuite) TestApproveSchoolManager() {
	id := uuid.New()
	suite.regs.EXPECT().Approve(gomock.Any(), id).Return(&service.ApprovalResult{
		PreRegistration: &models.PreRegistration{Status: models.PreRegistrationStatusApproved},
		Manager:         &models.SchoolManager{CredentialNumber: "CRED-2024-00042"},
	}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/credentialing/pre-registrations/"+id.String()+"/approve", nil)

	var result service.ApprovalResult
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &result)
	suite.Require().NotNil(result.Manager)
	suite.Equal("CRED-2024-00042", result.Manager.CredentialNumber)
}

func TestCredentialingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CredentialingHandlerTestSuite))
}
