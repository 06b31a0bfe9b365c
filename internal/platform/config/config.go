package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	Timezone          string

	// HTTP edge
	RateLimit          string
	CORSAllowedOrigins []string

	// Change feed
	RedisURL string

	// Analytics
	PosthogAPIKey   string
	PosthogEndpoint string

	// GitHub workflow_dispatch notifications
	GithubToken    string
	GithubOwner    string
	GithubRepo     string
	GithubWorkflow string
	GithubRef      string

	// Email notifications
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	SMTPFrom      string
	NotifyEmailTo []string

	NotificationRetryInterval time.Duration
	NotificationMaxAttempts   int
}

// GithubNotificationsEnabled reports whether every GitHub dispatch setting is present.
func (c *Config) GithubNotificationsEnabled() bool {
	return c.GithubToken != "" && c.GithubOwner != "" && c.GithubRepo != "" && c.GithubWorkflow != ""
}

// EmailNotificationsEnabled reports whether an SMTP relay and at least one recipient are configured.
func (c *Config) EmailNotificationsEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && len(c.NotifyEmailTo) > 0
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "shift-cashbox-app")
	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")
	viper.SetDefault("GITHUB_REF", "main")
	viper.SetDefault("GITHUB_WORKFLOW", "notify.yml")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("NOTIFICATION_RETRY_INTERVAL", "5m")
	viper.SetDefault("NOTIFICATION_MAX_ATTEMPTS", 10)

	// Actual environment variables override the defaults and the .env file.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Using the in-memory store.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "shift-cashbox-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.Timezone = viper.GetString("TIMEZONE")
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		log.Printf("Warning: Invalid TIMEZONE ('%s'). Defaulting to UTC.\n", cfg.Timezone)
		cfg.Timezone = "UTC"
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set. Change events stay inside this process.")
	}

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	cfg.GithubToken = viper.GetString("GITHUB_TOKEN")
	cfg.GithubOwner = viper.GetString("GITHUB_OWNER")
	cfg.GithubRepo = viper.GetString("GITHUB_REPO")
	cfg.GithubWorkflow = viper.GetString("GITHUB_WORKFLOW")
	cfg.GithubRef = viper.GetString("GITHUB_REF")
	if !cfg.GithubNotificationsEnabled() {
		log.Println("Warning: GITHUB_TOKEN, GITHUB_OWNER or GITHUB_REPO not set. GitHub notifications are disabled.")
	}

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.SMTPFrom = viper.GetString("SMTP_FROM")
	cfg.NotifyEmailTo = splitList(viper.GetString("NOTIFY_EMAIL_TO"))

	retryStr := viper.GetString("NOTIFICATION_RETRY_INTERVAL")
	cfg.NotificationRetryInterval, err = time.ParseDuration(retryStr)
	if err != nil || cfg.NotificationRetryInterval <= 0 {
		cfg.NotificationRetryInterval = 5 * time.Minute
		log.Printf("Warning: Invalid value for NOTIFICATION_RETRY_INTERVAL ('%s'). Defaulting to %s.\n", retryStr, cfg.NotificationRetryInterval.String())
	}
	cfg.NotificationMaxAttempts = viper.GetInt("NOTIFICATION_MAX_ATTEMPTS")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTExpiryDuration = jwtExpiryDuration

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
