package auth

import (
	"fmt"
	"strings"
	"time"

	"institute-portal-backend/internal/config"
)

// ProviderGovBR is the federal single sign-on provider
const ProviderGovBR = "govbr"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret  string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	StateTTL   time.Duration
	Providers  map[string]ProviderConfig
	// FrontendOrigin is the only window origin the OAuth popup reports to
	FrontendOrigin string
}

// ProviderConfig holds configuration for an OAuth2 provider
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	RedirectURL  string
	Scopes       []string
}

// NewAuthConfig derives the auth settings from the application config.
// Providers without a client id are left out.
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	ac := &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		Issuer:     "institute-portal-backend",
		AccessTTL:  time.Duration(cfg.JWTTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(cfg.RefreshTTLHours) * time.Hour,
		StateTTL:   10 * time.Minute,
		Providers:  map[string]ProviderConfig{},
	}
	ac.FrontendOrigin = strings.TrimRight(cfg.FrontendOrigin, "/")
	if ac.FrontendOrigin == "" && len(cfg.AllowedOrigins) > 0 && cfg.AllowedOrigins[0] != "*" {
		ac.FrontendOrigin = strings.TrimRight(cfg.AllowedOrigins[0], "/")
	}
	if cfg.GovBREnabled() {
		ac.Providers[ProviderGovBR] = ProviderConfig{
			ClientID:     cfg.GovBRClientID,
			ClientSecret: cfg.GovBRClientSecret,
			AuthURL:      cfg.GovBRAuthURL,
			TokenURL:     cfg.GovBRTokenURL,
			UserInfoURL:  cfg.GovBRUserInfoURL,
			RedirectURL:  cfg.GovBRRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
		}
	}
	return ac
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	return &providerConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	if c.RefreshTTL <= 0 {
		return fmt.Errorf("refresh token TTL must be positive")
	}

	if len(c.Providers) > 0 && (c.FrontendOrigin == "" || c.FrontendOrigin == "*") {
		return fmt.Errorf("a frontend origin is required when OAuth providers are configured")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
		if provider.RedirectURL == "" {
			return fmt.Errorf("redirect_url is required for provider '%s'", providerName)
		}
	}

	return nil
}
