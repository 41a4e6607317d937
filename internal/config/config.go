package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret       string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes   int    `mapstructure:"JWT_TTL_MINUTES"`
	RefreshTTLHours int    `mapstructure:"REFRESH_TTL_HOURS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Reverse proxies whose X-Forwarded-For is believed (IPs or CIDRs).
	// Empty means the client IP is always the socket peer.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// Origin of the web client; receives the OAuth popup result
	FrontendOrigin string `mapstructure:"FRONTEND_ORIGIN"`

	// Redis configuration (optional; empty address disables it)
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// File storage
	StorageRoot        string `mapstructure:"STORAGE_ROOT"`
	StorageMaxUploadMB int    `mapstructure:"STORAGE_MAX_UPLOAD_MB"`

	// Authorization policy
	AuthzModelPath  string `mapstructure:"AUTHZ_MODEL_PATH"`
	AuthzPolicyPath string `mapstructure:"AUTHZ_POLICY_PATH"`

	// Public endpoints rate limit (requests per window per client IP)
	PublicRateLimit     int `mapstructure:"PUBLIC_RATE_LIMIT"`
	PublicRateWindowSec int `mapstructure:"PUBLIC_RATE_WINDOW_SEC"`

	// LDAP configuration
	LDAPHost               string `mapstructure:"LDAP_HOST"`
	LDAPPort               string `mapstructure:"LDAP_PORT"`
	LDAPBindDN             string `mapstructure:"LDAP_BIND_DN"`
	LDAPBindPW             string `mapstructure:"LDAP_BIND_PW"`
	LDAPBaseDN             string `mapstructure:"LDAP_BASE_DN"`
	LDAPInsecureSkipVerify bool   `mapstructure:"LDAP_INSECURE_SKIP_VERIFY"`
	LDAPTimeoutSec         int    `mapstructure:"LDAP_TIMEOUT_SEC"`

	// gov.br federated login
	GovBRClientID     string `mapstructure:"GOVBR_CLIENT_ID"`
	GovBRClientSecret string `mapstructure:"GOVBR_CLIENT_SECRET"`
	GovBRAuthURL      string `mapstructure:"GOVBR_AUTH_URL"`
	GovBRTokenURL     string `mapstructure:"GOVBR_TOKEN_URL"`
	GovBRUserInfoURL  string `mapstructure:"GOVBR_USERINFO_URL"`
	GovBRRedirectURL  string `mapstructure:"GOVBR_REDIRECT_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "institute_portal")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_MINUTES", 60)
	viper.SetDefault("REFRESH_TTL_HOURS", 24*30)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
	viper.SetDefault("TRUSTED_PROXIES", []string{})
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:3000")

	// Redis defaults
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Storage defaults
	viper.SetDefault("STORAGE_ROOT", "./data/files")
	viper.SetDefault("STORAGE_MAX_UPLOAD_MB", 15)

	// Authorization defaults
	viper.SetDefault("AUTHZ_MODEL_PATH", "config/authz/model.conf")
	viper.SetDefault("AUTHZ_POLICY_PATH", "config/authz/policy.csv")

	viper.SetDefault("PUBLIC_RATE_LIMIT", 10)
	viper.SetDefault("PUBLIC_RATE_WINDOW_SEC", 60)

	// LDAP defaults (empty host disables directory search)
	viper.SetDefault("LDAP_HOST", "")
	viper.SetDefault("LDAP_PORT", "636")
	viper.SetDefault("LDAP_BIND_DN", "")
	viper.SetDefault("LDAP_BIND_PW", "")
	viper.SetDefault("LDAP_BASE_DN", "")
	viper.SetDefault("LDAP_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("LDAP_TIMEOUT_SEC", 10)

	// gov.br defaults (empty client id disables the provider)
	viper.SetDefault("GOVBR_CLIENT_ID", "")
	viper.SetDefault("GOVBR_CLIENT_SECRET", "")
	viper.SetDefault("GOVBR_AUTH_URL", "https://sso.acesso.gov.br/authorize")
	viper.SetDefault("GOVBR_TOKEN_URL", "https://sso.acesso.gov.br/token")
	viper.SetDefault("GOVBR_USERINFO_URL", "https://sso.acesso.gov.br/userinfo")
	viper.SetDefault("GOVBR_REDIRECT_URL", "http://localhost:7008/api/auth/govbr/handler")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.JWTTTLMinutes <= 0 {
		return fmt.Errorf("JWT_TTL_MINUTES must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RedisEnabled reports whether a redis address was configured
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// LDAPEnabled reports whether directory search is configured
func (c *Config) LDAPEnabled() bool {
	return c.LDAPHost != ""
}

// GovBREnabled reports whether gov.br login is configured
func (c *Config) GovBREnabled() bool {
	return c.GovBRClientID != "" && c.GovBRClientSecret != ""
}
