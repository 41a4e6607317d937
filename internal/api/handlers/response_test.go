package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", apperrors.NewFieldsValidationError(map[string]string{"cpf": "invalid CPF"}), http.StatusBadRequest},
		{"not found", apperrors.ErrEmployeeNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load run: %w", apperrors.ErrPayrollRunNotFound), http.StatusNotFound},
		{"already exists", apperrors.ErrPortariaExists, http.StatusConflict},
		{"conflict", apperrors.ErrPayrollRunNotEditable, http.StatusConflict},
		{"authentication", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"authorization", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"configuration", apperrors.ErrDirectoryDisabled, http.StatusServiceUnavailable},
		{"too large", apperrors.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"file type", apperrors.ErrUnsupportedFileType, http.StatusUnsupportedMediaType},
		{"path", apperrors.ErrInvalidPath, http.StatusBadRequest},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testutils.SetupHTTPTest()
			h.Router.GET("/", func(c *gin.Context) { respondError(c, tt.err) })

			w := h.MakeRequest(http.MethodGet, "/", nil)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRespondErrorHidesInternalDetails(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.GET("/", func(c *gin.Context) { respondError(c, errors.New("pq: password authentication failed")) })

	w := h.MakeRequest(http.MethodGet, "/", nil)

	var body ErrorResponse
	testutils.AssertJSONResponse(t, w, http.StatusInternalServerError, &body)
	assert.Equal(t, "request error", body.Error)
}

func TestRespondErrorFields(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.GET("/", func(c *gin.Context) {
		respondError(c, apperrors.NewFieldsValidationError(map[string]string{"email": "must be a valid email"}))
	})

	w := h.MakeRequest(http.MethodGet, "/", nil)

	var body ErrorResponse
	testutils.AssertJSONResponse(t, w, http.StatusBadRequest, &body)
	assert.Equal(t, "must be a valid email", body.Fields["email"])
}

func TestQueryHelpers(t *testing.T) {
	h := testutils.SetupHTTPTest()
	h.Router.GET("/", func(c *gin.Context) {
		year, ok := queryInt(c, "year")
		if !ok {
			return
		}
		unit, ok := queryUUID(c, "unit_id")
		if !ok {
			return
		}
		page, size := pageParams(c)
		c.JSON(http.StatusOK, gin.H{"year": year, "has_unit": unit != nil, "page": page, "size": size})
	})

	w := h.MakeRequest(http.MethodGet, "/?year=2024&page=3&page_size=500", nil)
	var body map[string]interface{}
	testutils.AssertJSONResponse(t, w, http.StatusOK, &body)
	assert.Equal(t, float64(2024), body["year"])
	assert.Equal(t, false, body["has_unit"])
	assert.Equal(t, float64(3), body["page"])
	assert.Equal(t, float64(20), body["size"])

	w = h.MakeRequest(http.MethodGet, "/?year=dois-mil", nil)
	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid year")

	w = h.MakeRequest(http.MethodGet, "/?unit_id=42", nil)
	testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid unit_id")
}
