package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Admin  AdminConfig
	S3     S3Config
	Google GoogleConfig
	CORS   CORSConfig
	Email  EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings. Host and Name may be left
// empty, in which case the service runs without a content store: public
// endpoints serve empty data and admin endpoints report the store as
// unconfigured.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// Configured reports whether enough settings are present to reach a database.
func (d *DBConfig) Configured() bool {
	return d.Host != "" && d.Name != ""
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// AdminConfig holds admin session and authorization settings.
type AdminConfig struct {
	// AllowedEmails is the parsed allow-list: trimmed, lower-cased, empties
	// dropped. Empty means any authenticated identity is authorized.
	AllowedEmails []string      `mapstructure:"allowed_emails"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionExpiry time.Duration `mapstructure:"session_expiry"`
	Issuer        string        `mapstructure:"issuer"`
}

// OpenDoor reports whether the allow-list is empty, i.e. every authenticated
// identity is granted admin access.
func (a *AdminConfig) OpenDoor() bool {
	return len(a.AllowedEmails) == 0
}

// Allows reports whether the given email is on the allow-list. Matching is
// case-insensitive; an empty allow-list grants everyone.
func (a *AdminConfig) Allows(email string) bool {
	if a.OpenDoor() {
		return email != ""
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, allowed := range a.AllowedEmails {
		if allowed == email {
			return true
		}
	}
	return false
}

// S3Config holds object storage settings for uploaded media.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// GoogleConfig holds Google identity settings.
type GoogleConfig struct {
	ClientID string `mapstructure:"client_id"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds contact-form email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	ToAddress   string `mapstructure:"to_address"`
}

// Load reads configuration from environment variables with the HACKFEST_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HACKFEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults; host and name intentionally default to empty so a bare
	// deployment comes up in degraded no-store mode instead of crashing.
	v.SetDefault("db.host", "")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "hackfest")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Admin defaults
	v.SetDefault("admin.allowed_emails", "")
	v.SetDefault("admin.session_secret", "change-me-in-production")
	v.SetDefault("admin.session_expiry", "12h")
	v.SetDefault("admin.issuer", "hackfest")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "admin-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("s3.max_file_size_mb", 10)

	// Google defaults
	v.SetDefault("google.client_id", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000,http://127.0.0.1:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@hackfest.dev")
	v.SetDefault("email.to_address", "hackathon@hackfest.dev")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "HACKFEST_SERVER_PORT",
		"server.read_timeout":   "HACKFEST_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "HACKFEST_SERVER_WRITE_TIMEOUT",
		"server.environment":    "HACKFEST_SERVER_ENVIRONMENT",
		"db.host":               "HACKFEST_DB_HOST",
		"db.port":               "HACKFEST_DB_PORT",
		"db.user":               "HACKFEST_DB_USER",
		"db.password":           "HACKFEST_DB_PASSWORD",
		"db.name":               "HACKFEST_DB_NAME",
		"db.sslmode":            "HACKFEST_DB_SSLMODE",
		"db.max_open":           "HACKFEST_DB_MAX_OPEN",
		"db.max_idle":           "HACKFEST_DB_MAX_IDLE",
		"admin.allowed_emails":  "HACKFEST_ADMIN_ALLOWED_EMAILS",
		"admin.session_secret":  "HACKFEST_ADMIN_SESSION_SECRET",
		"admin.session_expiry":  "HACKFEST_ADMIN_SESSION_EXPIRY",
		"admin.issuer":          "HACKFEST_ADMIN_ISSUER",
		"s3.region":             "HACKFEST_S3_REGION",
		"s3.bucket":             "HACKFEST_S3_BUCKET",
		"s3.endpoint":           "HACKFEST_S3_ENDPOINT",
		"s3.access_key":         "HACKFEST_S3_ACCESS_KEY",
		"s3.secret_key":         "HACKFEST_S3_SECRET_KEY",
		"s3.public_base_url":    "HACKFEST_S3_PUBLIC_BASE_URL",
		"s3.max_file_size_mb":   "HACKFEST_S3_MAX_FILE_SIZE_MB",
		"google.client_id":      "HACKFEST_GOOGLE_CLIENT_ID",
		"cors.allowed_origins":  "HACKFEST_CORS_ALLOWED_ORIGINS",
		"email.provider":        "HACKFEST_EMAIL_PROVIDER",
		"email.region":          "HACKFEST_EMAIL_REGION",
		"email.from_address":    "HACKFEST_EMAIL_FROM_ADDRESS",
		"email.to_address":      "HACKFEST_EMAIL_TO_ADDRESS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if HACKFEST_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HACKFEST_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Admin = AdminConfig{
		AllowedEmails: ParseAllowList(v.GetString("admin.allowed_emails")),
		SessionSecret: v.GetString("admin.session_secret"),
		SessionExpiry: v.GetDuration("admin.session_expiry"),
		Issuer:        v.GetString("admin.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PublicBaseURL: v.GetString("s3.public_base_url"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}
	cfg.Google = GoogleConfig{
		ClientID: v.GetString("google.client_id"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitAndTrim(v.GetString("cors.allowed_origins")),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		ToAddress:   v.GetString("email.to_address"),
	}

	return cfg, nil
}

// ParseAllowList parses a comma-separated admin email allow-list: entries are
// trimmed, lower-cased, and empty entries dropped.
func ParseAllowList(raw string) []string {
	var emails []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry != "" {
			emails = append(emails, entry)
		}
	}
	return emails
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			out = append(out, entry)
		}
	}
	return out
}
