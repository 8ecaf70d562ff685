package config

import (
	"fmt"
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
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// CORSAllowedOrigins lists the browser origins allowed to call the API.
	CORSAllowedOrigins []string
	// RateLimit is the ulule formatted rate applied to the auth endpoints.
	RateLimit string

	// RedisURL backs the job queue, the rate limiter and the zone cache.
	// Empty disables all three.
	RedisURL     string
	ZoneCacheTTL time.Duration

	S3 S3Config

	SMTP SMTPConfig
	// NotifyEmail receives business notifications.
	NotifyEmail string

	// Location is the business timezone. Peak hours, expiry days and the
	// cron schedules are evaluated in it.
	Location *time.Location

	Scheduler SchedulerConfig
}

// S3Config configures receipt uploads. Empty Bucket disables uploads.
type S3Config struct {
	Bucket          string `mapstructure:"S3_BUCKET"`
	Region          string `mapstructure:"S3_REGION"`
	Endpoint        string `mapstructure:"S3_ENDPOINT"`
	AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`
	PublicBaseURL   string `mapstructure:"S3_PUBLIC_BASE_URL"`
	UsePathStyle    bool   `mapstructure:"S3_USE_PATH_STYLE"`
}

// Enabled reports whether receipt uploads are configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// SMTPConfig configures outgoing mail. Empty Host disables delivery.
type SMTPConfig struct {
	Host     string `mapstructure:"SMTP_HOST"`
	Port     int    `mapstructure:"SMTP_PORT"`
	Username string `mapstructure:"SMTP_USERNAME"`
	Password string `mapstructure:"SMTP_PASSWORD"`
	From     string `mapstructure:"SMTP_FROM"`
}

// Enabled reports whether mail delivery is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

// SchedulerConfig holds the cron specs of the background jobs.
type SchedulerConfig struct {
	BatchRefreshSpec     string `mapstructure:"SCHEDULER_BATCH_REFRESH"`
	RecurringExpenseSpec string `mapstructure:"SCHEDULER_RECURRING_EXPENSES"`
	Concurrency          int    `mapstructure:"WORKER_CONCURRENCY"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	// Real environment variables override the .env values and the defaults.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	var err error
	if cfg.JWTExpiryDuration, err = durationOrDefault(v, "JWT_EXPIRY_DURATION", time.Hour); err != nil {
		return nil, err
	}
	cfg.JWTIssuer = v.GetString("JWT_ISSUER")

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	cfg.RedisURL = v.GetString("REDIS_URL")
	if cfg.ZoneCacheTTL, err = durationOrDefault(v, "ZONE_CACHE_TTL", 5*time.Minute); err != nil {
		return nil, err
	}

	cfg.S3 = S3Config{
		Bucket:          v.GetString("S3_BUCKET"),
		Region:          v.GetString("S3_REGION"),
		Endpoint:        v.GetString("S3_ENDPOINT"),
		AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
		SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
		PublicBaseURL:   v.GetString("S3_PUBLIC_BASE_URL"),
		UsePathStyle:    v.GetBool("S3_USE_PATH_STYLE"),
	}

	cfg.SMTP = SMTPConfig{
		Host:     v.GetString("SMTP_HOST"),
		Port:     v.GetInt("SMTP_PORT"),
		Username: v.GetString("SMTP_USERNAME"),
		Password: v.GetString("SMTP_PASSWORD"),
		From:     v.GetString("SMTP_FROM"),
	}
	cfg.NotifyEmail = v.GetString("NOTIFY_EMAIL")

	cfg.Scheduler = SchedulerConfig{
		BatchRefreshSpec:     v.GetString("SCHEDULER_BATCH_REFRESH"),
		RecurringExpenseSpec: v.GetString("SCHEDULER_RECURRING_EXPENSES"),
		Concurrency:          v.GetInt("WORKER_CONCURRENCY"),
	}

	tz := v.GetString("TIMEZONE")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", tz, err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "stallchain")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "10-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("ZONE_CACHE_TTL", "5m")
	v.SetDefault("S3_REGION", "ap-south-1")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SCHEDULER_BATCH_REFRESH", "0 * * * *")
	v.SetDefault("SCHEDULER_RECURRING_EXPENSES", "15 0 * * *")
	v.SetDefault("TIMEZONE", "Asia/Kolkata")
	v.SetDefault("WORKER_CONCURRENCY", 5)
}

func durationOrDefault(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s (%q): %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
