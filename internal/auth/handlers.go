package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"institute-portal-backend/internal/authz"
	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
)

// popupMessage is what the OAuth popup hands to the window that opened it
type popupMessage struct {
	Type     string               `json:"type"`
	Response *AuthHandlerResponse `json:"response,omitempty"`
	Error    *popupError          `json:"error,omitempty"`
}

type popupError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// renderPopup writes a page that posts msg to the opener, restricted to
// origin, and closes itself. Without an origin nothing is posted.
// json.Marshal escapes <, > and & so the values cannot leave the script.
func renderPopup(c *gin.Context, origin string, msg popupMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		payload = []byte(`{"type":"authorization_response","error":{"name":"Error","message":"authentication failed"}}`)
	}
	target, _ := json.Marshal(origin)

	page := `<!doctype html><html><body><script>
(function(){
  var message = ` + string(payload) + `;
  var origin = ` + string(target) + `;
  try { if (window.opener && origin) window.opener.postMessage(message, origin); } finally { window.close(); }
})();
</script></body></html>`
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Header("Cache-Control", "no-store")
	c.String(http.StatusOK, page)
}

func (h *AuthHandler) frameError(c *gin.Context, name, message string) {
	renderPopup(c, h.service.config.FrontendOrigin, popupMessage{
		Type:  "authorization_response",
		Error: &popupError{Name: name, Message: message},
	})
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service    *AuthService
	authorizer *authz.Authorizer
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, authorizer *authz.Authorizer) *AuthHandler {
	return &AuthHandler{service: service, authorizer: authorizer}
}

// MeResponse is the current account with its permissions and visible modules
type MeResponse struct {
	User        *models.User   `json:"user"`
	Permissions []string       `json:"permissions"`
	Modules     []authz.Module `json:"modules"`
}

// Login handles POST /api/auth/login
// @Summary Password login
// @Description Authenticate with email and password and receive an access and refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthHandlerResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(c, req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new access token; the refresh token is rotated
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} AuthHandlerResponse
// @Failure 400 {object} map[string]interface{} "Missing refresh token"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
		return
	}

	refreshed, err := h.service.RefreshToken(c, req.RefreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed", "details": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed"})
		}
		return
	}

	c.JSON(http.StatusOK, refreshed)
}

// Logout handles POST /api/auth/logout
// @Summary Logout
// @Description Revoke the current access token and, if given, the refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LogoutRequest false "Refresh token to revoke"
// @Success 200 {object} AuthLogoutResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req LogoutRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.service.Logout(c, claims, req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// Validate handles GET /api/auth/validate
// @Summary Validate token
// @Description Report whether the bearer token is valid and return its claims
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse
// @Failure 401 {object} map[string]interface{} "Invalid token"
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

// Me handles GET /api/v1/me
// @Summary Current account
// @Description Profile of the authenticated user with granted permissions and visible modules
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /v1/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.service.Me(claims)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	role := string(user.Role)
	c.JSON(http.StatusOK, MeResponse{
		User:        user,
		Permissions: h.authorizer.Permissions(role),
		Modules:     h.authorizer.VisibleModules(role),
	})
}

// Modules handles GET /api/v1/me/modules
// @Summary Visible modules
// @Description Modules, sidebar entries and actions the current role may use
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {array} authz.Module
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Router /v1/me/modules [get]
func (h *AuthHandler) Modules(c *gin.Context) {
	role, ok := GetRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	modules := h.authorizer.VisibleModules(role)
	if modules == nil {
		modules = []authz.Module{}
	}
	c.JSON(http.StatusOK, modules)
}

// Start handles GET /api/auth/{provider}/start
// @Summary Start federated login
// @Description Redirect to the provider's authorization page with a one-time state
// @Tags authentication
// @Param provider path string true "OAuth provider (govbr)"
// @Success 302 {string} string "Redirect to provider authorization URL"
// @Failure 404 {object} map[string]interface{} "Provider not configured"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")
	if !h.service.HasProvider(provider) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unsupported provider"})
		return
	}

	authURL, err := h.service.GetAuthURL(c, provider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL"})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// HandlerFrame handles GET /api/auth/{provider}/handler
// Posts { type: 'authorization_response', response: {...} } to the opener window and closes.
// @Summary Handle federated login callback
// @Description Exchange the authorization code and hand the tokens to the opener window
// @Tags authentication
// @Produce text/html
// @Param provider path string true "OAuth provider (govbr)"
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by the start endpoint"
// @Param error query string false "OAuth error parameter from provider"
// @Success 200 {string} string "HTML page that posts the result to the opener window"
// @Failure 400 {object} map[string]interface{} "Invalid request parameters"
// @Router /auth/{provider}/handler [get]
func (h *AuthHandler) HandlerFrame(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")

	if errorParam := c.Query("error"); errorParam != "" {
		h.frameError(c, "OAuthError", errorParam+": "+c.Query("error_description"))
		return
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State parameter is required"})
		return
	}

	serviceResp, err := h.service.HandleCallback(c, provider, code, state)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAccountNotLinked):
			h.frameError(c, "AccountNotLinked", err.Error())
		case errors.Is(err, apperrors.ErrInvalidOAuthState):
			h.frameError(c, "InvalidState", err.Error())
		default:
			h.frameError(c, "Error", "authentication failed")
		}
		return
	}

	renderPopup(c, h.service.config.FrontendOrigin, popupMessage{Type: "authorization_response", Response: serviceResp})
}
