package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/auth"
	"institute-portal-backend/internal/service"
)

// DashboardHandler serves the home dashboard
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(s service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// Get handles GET /dashboard
// @Summary Home counters
// @Description Counters of the modules visible to the caller's role
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /v1/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	role, ok := auth.GetRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}
	dashboard, err := h.service.Get(c, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
