package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	HTTPAddr string
	Timezone *time.Location

	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	CookieDomain     string
	CookieSecure     bool
	CookieSameSite   http.SameSite

	AdminEmail    string
	AdminPassword string
	AdminName     string

	CORSOrigins    []string
	CORSAllowCreds bool

	EstimateRatePerMinute int
	LoginRatePerMinute    int

	// MetricsToken, when set, must be sent as a Bearer token to read /metrics.
	MetricsToken string

	DynamoAutoCreateTables bool

	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	SMTPFromName  string
	LeadNotifyTo  string

	MinIOEndpoint   string
	MinIOAccessKey  string
	MinIOSecretKey  string
	MinIOUseSSL     bool
	MinIOBucket     string
	MinIOPublicURL  string
	UploadMaxBytes  int64
	SignedUploadTTL time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "development")
	cookieSecure := strings.EqualFold(getEnv("COOKIE_SECURE", ""), "true")
	if getEnv("COOKIE_SECURE", "") == "" {
		cookieSecure = strings.EqualFold(env, "production")
	}

	tzName := getEnv("APP_TIMEZONE", "Asia/Riyadh")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE %q: %w", tzName, err)
	}

	cfg := &Config{
		Env:      env,
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Timezone: loc,

		JWTAccessSecret:  getEnv("JWT_ACCESS_SECRET", ""),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", ""),
		AccessTokenTTL:   mustDuration(getEnv("JWT_ACCESS_TTL", "15m")),
		RefreshTokenTTL:  mustDuration(getEnv("JWT_REFRESH_TTL", "168h")),
		CookieDomain:     getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:     cookieSecure,
		CookieSameSite:   parseSameSite(getEnv("COOKIE_SAMESITE", "Lax")),

		AdminEmail:    strings.ToLower(strings.TrimSpace(getEnv("ADMIN_EMAIL", ""))),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		AdminName:     getEnv("ADMIN_NAME", "Administrator"),

		CORSOrigins:    splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		CORSAllowCreds: strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),

		EstimateRatePerMinute: mustInt(getEnv("ESTIMATE_RATE_PER_MINUTE", "10"), 10),
		LoginRatePerMinute:    mustInt(getEnv("LOGIN_RATE_PER_MINUTE", "5"), 5),

		MetricsToken: getEnv("METRICS_TOKEN", ""),

		DynamoAutoCreateTables: strings.EqualFold(getEnv("DYNAMODB_AUTO_CREATE_TABLES", "false"), "true"),

		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      mustInt(getEnv("SMTP_PORT", "587"), 587),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", ""),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "Nishad Gateway"),
		LeadNotifyTo:  getEnv("LEAD_NOTIFY_TO", ""),

		MinIOEndpoint:   getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:  getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:  getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:     strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOBucket:     getEnv("MINIO_BUCKET", "nishad-gateway"),
		MinIOPublicURL:  strings.TrimRight(getEnv("MINIO_PUBLIC_URL", ""), "/"),
		UploadMaxBytes:  int64(mustInt(getEnv("UPLOAD_MAX_BYTES", "5242880"), 5<<20)),
		SignedUploadTTL: mustDuration(getEnv("SIGNED_UPLOAD_TTL", "15m")),
	}

	if cfg.JWTAccessSecret == "" || cfg.JWTRefreshSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required")
	}
	if cfg.JWTAccessSecret == cfg.JWTRefreshSecret {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("JWT_ACCESS_TTL and JWT_REFRESH_TTL must be positive durations")
	}
	if cfg.EmailEnabled() && cfg.SMTPFromEmail == "" {
		return nil, fmt.Errorf("SMTP_FROM_EMAIL is required when SMTP_HOST and LEAD_NOTIFY_TO are set")
	}

	return cfg, nil
}

// EmailEnabled reports whether new-lead notifications can be sent.
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.LeadNotifyTo != ""
}

func (c *Config) IsMinIOEnabled() bool {
	return c.MinIOEndpoint != "" && c.MinIOAccessKey != "" && c.MinIOSecretKey != ""
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "none":
		return http.SameSiteNoneMode
	case "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}
