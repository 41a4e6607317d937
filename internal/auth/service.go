package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"institute-portal-backend/internal/cache"
	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
)

const (
	refreshKeyPrefix   = "auth:refresh:"
	blacklistKeyPrefix = "auth:blacklist:"
	stateKeyPrefix     = "auth:oauth_state:"
)

// MinPasswordLength is enforced when accounts are created or reset
const MinPasswordLength = 8

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config       *AuthConfig
	oauthClients map[string]*OAuthClient
	store        cache.Store
	userRepo     repository.UserRepositoryInterface
	now          func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"5f0c3c8e-7d7b-4a55-9c1e-2f6c1f4f9a10"`
	Email    string `json:"email" example:"ana.souza@instituto.gov.br"`
	Name     string `json:"name" example:"Ana Souza"`
	Role     string `json:"role" example:"hr"`
	Provider string `json:"provider,omitempty" example:"password"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UserProfile is the account summary returned with tokens
type UserProfile struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Role     string    `json:"role"`
}

// AuthHandlerResponse represents the tokens issued on login, refresh and
// federated callback
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// LoginRequest represents the password login form
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest optionally carries the refresh token to revoke with the session
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, store cache.Store, userRepo repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	clients := make(map[string]*OAuthClient)
	for name, providerConfig := range config.Providers {
		pc := providerConfig
		clients[name] = NewOAuthClient(&pc)
	}

	return &AuthService{
		config:       config,
		oauthClients: clients,
		store:        store,
		userRepo:     userRepo,
		now:          time.Now,
	}, nil
}

// HashPassword hashes a plain password with bcrypt
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", apperrors.NewValidationError("password", fmt.Sprintf("must have at least %d characters", MinPasswordLength))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Login checks email and password and issues a token pair. Unknown emails,
// inactive accounts and wrong passwords all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthHandlerResponse, error) {
	log := logger.WithContext(ctx).WithField("email", email)

	user, err := s.userRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("login failed: unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.IsActive || user.PasswordHash == "" {
		log.Warn("login failed: inactive or password-less account")
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("login failed: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	resp, err := s.issue(ctx, user, "password")
	if err != nil {
		return nil, err
	}
	log.Info("user logged in")
	return resp, nil
}

// issue records the login and returns a fresh access/refresh pair
func (s *AuthService) issue(ctx context.Context, user *models.User, provider string) (*AuthHandlerResponse, error) {
	now := s.now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	return s.tokens(ctx, user, provider)
}

func (s *AuthService) tokens(ctx context.Context, user *models.User, provider string) (*AuthHandlerResponse, error) {
	jwtToken, _, err := s.GenerateJWT(user, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	data, err := json.Marshal(RefreshTokenData{
		UserID:    user.ID,
		Provider:  provider,
		ExpiresAt: now.Add(s.config.RefreshTTL),
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, refreshKeyPrefix+refreshToken, data, s.config.RefreshTTL); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.AccessTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile:      profileOf(user),
	}, nil
}

func profileOf(user *models.User) UserProfile {
	return UserProfile{ID: user.ID, Email: user.Email, FullName: user.FullName, Role: string(user.Role)}
}

// RefreshToken exchanges a refresh token for a new pair. The old refresh
// token is consumed whether or not the exchange succeeds.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthHandlerResponse, error) {
	raw, err := s.store.Take(ctx, refreshKeyPrefix+refreshToken)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to read refresh token: %w", err)
	}

	var tokenData RefreshTokenData
	if err := json.Unmarshal(raw, &tokenData); err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if s.now().After(tokenData.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.userRepo.GetByID(tokenData.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	return s.tokens(ctx, user, tokenData.Provider)
}

// GenerateJWT creates a signed access token for the user
func (s *AuthService) GenerateJWT(user *models.User, provider string) (string, *AuthClaims, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		Name:     user.FullName,
		Role:     string(user.Role),
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// ValidateJWT validates and parses a JWT token, rejecting revoked tokens
func (s *AuthService) ValidateJWT(ctx context.Context, tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(s.config.Issuer))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.ID != "" {
		revoked, err := s.store.Exists(ctx, blacklistKeyPrefix+claims.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			return nil, apperrors.ErrTokenRevoked
		}
	}

	return claims, nil
}

// Logout revokes the access token until it would have expired and drops the
// refresh token when one is given
func (s *AuthService) Logout(ctx context.Context, claims *AuthClaims, refreshToken string) error {
	if claims == nil {
		return fmt.Errorf("claims cannot be nil")
	}

	if claims.ID != "" && claims.ExpiresAt != nil {
		ttl := claims.ExpiresAt.Sub(s.now())
		if ttl > 0 {
			if err := s.store.Set(ctx, blacklistKeyPrefix+claims.ID, []byte(claims.UserID), ttl); err != nil {
				return fmt.Errorf("failed to revoke token: %w", err)
			}
		}
	}

	if refreshToken != "" {
		if err := s.store.Delete(ctx, refreshKeyPrefix+refreshToken); err != nil {
			return fmt.Errorf("failed to delete refresh token: %w", err)
		}
	}

	logger.WithContext(ctx).WithField("jti", claims.ID).Info("user logged out")
	return nil
}

// Me returns the account behind the claims
func (s *AuthService) Me(claims *AuthClaims) (*models.User, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

// HasProvider reports whether an OAuth provider is configured
func (s *AuthService) HasProvider(provider string) bool {
	_, ok := s.oauthClients[provider]
	return ok
}

// GetAuthURL stores a fresh state and returns the provider authorization URL
func (s *AuthService) GetAuthURL(ctx context.Context, provider string) (string, error) {
	client, exists := s.oauthClients[provider]
	if !exists {
		return "", apperrors.ErrProviderNotConfigured
	}

	state, err := s.GenerateState()
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, stateKeyPrefix+state, []byte(provider), s.config.StateTTL); err != nil {
		return "", fmt.Errorf("failed to store oauth state: %w", err)
	}

	return client.GetOAuth2Config().AuthCodeURL(state), nil
}

// HandleCallback validates the state, exchanges the code and signs in the
// account whose email matches the provider identity
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthHandlerResponse, error) {
	client, exists := s.oauthClients[provider]
	if !exists {
		return nil, apperrors.ErrProviderNotConfigured
	}

	stored, err := s.store.Take(ctx, stateKeyPrefix+state)
	if err != nil || string(stored) != provider {
		return nil, apperrors.ErrInvalidOAuthState
	}

	token, err := client.GetOAuth2Config().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return s.signInFederated(ctx, client, provider, token)
}

func (s *AuthService) signInFederated(ctx context.Context, client *OAuthClient, provider string, token *oauth2.Token) (*AuthHandlerResponse, error) {
	profile, err := client.GetUserProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	user, err := s.userRepo.GetByEmail(profile.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithContext(ctx).WithField("email", profile.Email).Warn("federated login for unprovisioned account")
			return nil, apperrors.ErrAccountNotLinked
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountNotLinked
	}

	resp, err := s.issue(ctx, user, provider)
	if err != nil {
		return nil, err
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{"email": user.Email, "provider": provider}).Info("user logged in")
	return resp, nil
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return generateRandomString(32)
}

// generateRefreshToken generates a random refresh token
func (s *AuthService) generateRefreshToken() (string, error) {
	return generateRandomString(48)
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
