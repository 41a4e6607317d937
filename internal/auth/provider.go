package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// ProviderProfile is the identity returned by an OAuth2 provider's userinfo
// endpoint. For gov.br the subject is the citizen's CPF.
type ProviderProfile struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// OAuthClient talks to a single OAuth2/OpenID provider
type OAuthClient struct {
	config *ProviderConfig
}

// NewOAuthClient creates a client for the given provider configuration
func NewOAuthClient(config *ProviderConfig) *OAuthClient {
	return &OAuthClient{config: config}
}

// GetOAuth2Config returns the oauth2 configuration for the provider
func (c *OAuthClient) GetOAuth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  c.config.RedirectURL,
		Scopes:       c.config.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.config.AuthURL,
			TokenURL: c.config.TokenURL,
		},
	}
}

// GetUserProfile fetches the userinfo document with the provider token
func (c *OAuthClient) GetUserProfile(ctx context.Context, token *oauth2.Token) (*ProviderProfile, error) {
	client := c.GetOAuth2Config().Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call userinfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var profile ProviderProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("provider did not return an email")
	}
	return &profile, nil
}
