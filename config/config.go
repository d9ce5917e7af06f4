package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Telegram      TelegramConfig
	Static        StaticConfig
	Compression   CompressionConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AllowedOrigins []string
	MaxBodyBytes   int64
}

// TelegramConfig holds the Bot API credentials used by the notifier.
// Both BotToken and ChatID may be empty; notifications then fail fast.
type TelegramConfig struct {
	BotToken       string
	ChatID         string
	APIBaseURL     string
	TimeoutSeconds int
}

type StaticConfig struct {
	Dir             string
	IndexFile       string
	PageCacheTTLSec int
}

type CompressionConfig struct {
	Level   int
	MinSize int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	AlloyEndpoint     string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "5001")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "")
	v.SetDefault("MAX_BODY_BYTES", 64*1024)
	v.SetDefault("TELEGRAM_API_BASE_URL", "https://api.telegram.org")
	v.SetDefault("TELEGRAM_TIMEOUT_SECONDS", 10)
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("INDEX_FILE", "index.html")
	v.SetDefault("PAGE_CACHE_TTL", 300)
	v.SetDefault("COMPRESS_LEVEL", 6)
	v.SetDefault("COMPRESS_MIN_SIZE", 500)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "inzzo-landing")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "inzzo")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "inzzo-landing")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		},
		Telegram: TelegramConfig{
			BotToken:       strings.TrimSpace(v.GetString("TELEGRAM_BOT_TOKEN")),
			ChatID:         strings.TrimSpace(v.GetString("TELEGRAM_CHAT_ID")),
			APIBaseURL:     strings.TrimRight(v.GetString("TELEGRAM_API_BASE_URL"), "/"),
			TimeoutSeconds: v.GetInt("TELEGRAM_TIMEOUT_SECONDS"),
		},
		Static: StaticConfig{
			Dir:             v.GetString("STATIC_DIR"),
			IndexFile:       v.GetString("INDEX_FILE"),
			PageCacheTTLSec: v.GetInt("PAGE_CACHE_TTL"),
		},
		Compression: CompressionConfig{
			Level:   v.GetInt("COMPRESS_LEVEL"),
			MinSize: v.GetInt("COMPRESS_MIN_SIZE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			AlloyEndpoint:     v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set.
// Telegram credentials are deliberately not required here.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}

	if c.Telegram.APIBaseURL == "" {
		return fmt.Errorf("TELEGRAM_API_BASE_URL is required")
	}
	if c.Telegram.TimeoutSeconds <= 0 {
		return fmt.Errorf("TELEGRAM_TIMEOUT_SECONDS must be positive")
	}

	if c.Static.IndexFile == "" {
		return fmt.Errorf("INDEX_FILE is required")
	}
	if c.Static.PageCacheTTLSec < 0 {
		return fmt.Errorf("PAGE_CACHE_TTL must not be negative")
	}

	if c.Compression.Level < 1 || c.Compression.Level > 9 {
		return fmt.Errorf("COMPRESS_LEVEL must be between 1 and 9")
	}
	if c.Compression.MinSize < 0 {
		return fmt.Errorf("COMPRESS_MIN_SIZE must not be negative")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// TelegramConfigured reports whether both the bot token and the chat id are set
func (c *Config) TelegramConfigured() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// TelegramTimeout returns the notifier timeout as a duration
func (c *Config) TelegramTimeout() time.Duration {
	return time.Duration(c.Telegram.TimeoutSeconds) * time.Second
}

// PageCacheTTL returns the landing page cache lifetime
func (c *Config) PageCacheTTL() time.Duration {
	return time.Duration(c.Static.PageCacheTTLSec) * time.Second
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

// splitList parses a comma-separated list, dropping empty entries
func splitList(value string) []string {
	items := []string{}
	if value == "" {
		return items
	}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
