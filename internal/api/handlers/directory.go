package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/service"
)

// DirectoryHandler handles institutional directory lookups
type DirectoryHandler struct {
	service service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(s service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

// Search searches people by name prefix
// @Summary Search the institutional directory
// @Description Searches LDAP for people whose cn starts with q, used when provisioning accounts
// @Tags directory
// @Produce json
// @Param q query string true "Name prefix (at least 3 characters)"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} ErrorResponse "Missing or short query"
// @Failure 502 {object} ErrorResponse "Directory unreachable"
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Security BearerAuth
// @Router /v1/admin/directory/search [get]
func (h *DirectoryHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing query parameter: q"})
		return
	}

	people, err := h.service.Search(q)
	if err != nil {
		respondDirectoryError(c, err)
		return
	}
	if people == nil {
		people = []service.DirectoryPerson{}
	}
	c.JSON(http.StatusOK, gin.H{"result": people})
}

// directory failures other than bad input or missing configuration come
// from the LDAP server
func respondDirectoryError(c *gin.Context, err error) {
	if apperrors.IsValidation(err) || apperrors.IsConfiguration(err) {
		respondError(c, err)
		return
	}
	logger.WithContext(c).WithError(err).Warn("directory search failed")
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: "directory search failed"})
}
