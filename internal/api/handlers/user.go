package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/service"
)

// UserHandler handles account administration
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /admin/users
// @Summary Create an account
// @Description Provision an account. Without a password the account can only sign in through gov.br.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "Account data"
// @Success 201 {object} models.User
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /v1/admin/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /admin/users/{id}
// @Summary Get an account
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /v1/admin/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /admin/users
// @Summary List accounts
// @Tags users
// @Produce json
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ListResponse[models.User]
// @Security BearerAuth
// @Router /v1/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, size := pageParams(c)
	users, err := h.userService.ListUsers(page, size)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /admin/users/{id}
// @Summary Update an account
// @Description Change name, role, active flag or linked employee. Admins cannot demote or deactivate themselves.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserRequest true "Account data"
// @Success 200 {object} models.User
// @Failure 409 {object} ErrorResponse "Change not allowed"
// @Security BearerAuth
// @Router /v1/admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ResetPassword handles POST /admin/users/{id}/password
// @Summary Reset an account password
// @Tags users
// @Accept json
// @Param id path string true "User ID"
// @Param password body service.ResetPasswordRequest true "New password"
// @Success 204
// @Security BearerAuth
// @Router /v1/admin/users/{id}/password [post]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req service.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.userService.ResetPassword(c, id, &req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
