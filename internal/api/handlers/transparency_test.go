package handlers

import (
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TransparencyHandlerTestSuite defines the test suite for TransparencyHandler
type TransparencyHandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	svc       *mocks.MockTransparencyServiceInterface
	httpSuite *testutils.HTTPTestSuite
}

func (suite *TransparencyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.svc = mocks.NewMockTransparencyServiceInterface(suite.ctrl)
	h := NewTransparencyHandler(suite.svc)

	// public routes carry no identity
	suite.httpSuite = testutils.SetupHTTPTest()
	public := suite.httpSuite.Router.Group("/api/public/transparency")
	{
		public.GET("/payroll", h.Payroll)
		public.GET("/procurement", h.Procurement)
		public.GET("/portarias", h.Portarias)
		public.GET("/:dataset/export", h.Export)
	}
}

func (suite *TransparencyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TransparencyHandlerTestSuite) TestPayrollDefaultsToCurrentYear() {
	year := time.Now().Year()
	suite.svc.EXPECT().Payroll(year).Return(&service.YearSummary{
		Year: year, Months: []service.MonthTotals{}, Net: decimal.RequireFromString("1500.25"),
	}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/transparency/payroll", nil)

	var out map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &out)
	suite.Equal(float64(year), out["year"])
	suite.Equal("1500.25", out["net"])
}

func (suite *TransparencyHandlerTestSuite) TestProcurementDraftRejected() {
	suite.svc.EXPECT().Procurement(2024, "draft", 1, 20).
		Return(nil, apperrors.NewValidationError("status", "must be one of: in_progress completed cancelled"))

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/transparency/procurement?year=2024&status=draft", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "status")
}

func (suite *TransparencyHandlerTestSuite) TestPortariasSearch() {
	suite.svc.EXPECT().Portarias(2023, "comissão", 2, 10).Return(&service.ListResponse[service.PublicPortaria]{
		Items: []service.PublicPortaria{{Number: 12, Year: 2023, Status: "published"}}, Total: 11, Page: 2, PageSize: 10,
	}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/transparency/portarias?year=2023&q=comiss%C3%A3o&page=2&page_size=10", nil)

	var out service.ListResponse[service.PublicPortaria]
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &out)
	suite.Equal(12, out.Items[0].Number)
}

func (suite *TransparencyHandlerTestSuite) TestExportCSVByDefault() {
	suite.svc.EXPECT().Export(gomock.Any(), "procurement", 2024, service.FormatCSV).
		DoAndReturn(func(w io.Writer, _ string, _ int, _ string) error {
			_, err := io.WriteString(w, "Processo;Objeto\n")
			return err
		})

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/transparency/procurement/export?year=2024", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(service.ContentTypes[service.FormatCSV], w.Header().Get("Content-Type"))
	suite.Equal(fmt.Sprintf("attachment; filename=%q", "transparencia-procurement-2024.csv"), w.Header().Get("Content-Disposition"))
	suite.Equal("Processo;Objeto\n", w.Body.String())
}

func (suite *TransparencyHandlerTestSuite) TestExportXLSX() {
	suite.svc.EXPECT().Export(gomock.Any(), "portarias", 2022, service.FormatXLSX).Return(nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/transparency/portarias/export?year=2022&format=xlsx", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "transparencia-portarias-2022.xlsx")
}

func (suite *TransparencyHandlerTestSuite) TestExportUnknownDataset() {
	suite.svc.EXPECT().Export(gomock.Any(), "salaries", 2024, service.FormatCSV).
		Return(apperrors.NewValidationError("dataset", "must be one of: payroll procurement portarias"))

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/transparency/salaries/export?year=2024", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "dataset")
}

func (suite *TransparencyHandlerTestSuite) TestBadYear() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/api/public/transparency/payroll?year=vinte", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid year")
}

func TestTransparencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransparencyHandlerTestSuite))
}
