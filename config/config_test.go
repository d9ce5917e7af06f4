package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:      ServerConfig{Port: "5001", MaxBodyBytes: 1024},
		Telegram:    TelegramConfig{APIBaseURL: "https://api.telegram.org", TimeoutSeconds: 10},
		Static:      StaticConfig{Dir: "static", IndexFile: "index.html", PageCacheTTLSec: 300},
		Compression: CompressionConfig{Level: 6, MinSize: 500},
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected bool
	}{
		{
			name:     "development environment",
			config:   &Config{Server: ServerConfig{AppEnv: "development"}},
			expected: true,
		},
		{
			name:     "debug gin mode",
			config:   &Config{Server: ServerConfig{GinMode: "debug"}},
			expected: true,
		},
		{
			name:     "release mode",
			config:   &Config{Server: ServerConfig{GinMode: "release", AppEnv: "production"}},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.IsDevelopment())
		})
	}
}

func TestConfig_TelegramConfigured(t *testing.T) {
	tests := []struct {
		name     string
		telegram TelegramConfig
		expected bool
	}{
		{name: "both set", telegram: TelegramConfig{BotToken: "123:abc", ChatID: "-100"}, expected: true},
		{name: "token missing", telegram: TelegramConfig{ChatID: "-100"}, expected: false},
		{name: "chat id missing", telegram: TelegramConfig{BotToken: "123:abc"}, expected: false},
		{name: "nothing set", telegram: TelegramConfig{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Telegram: tt.telegram}
			assert.Equal(t, tt.expected, cfg.TelegramConfigured())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid without telegram credentials", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "PORT is required"},
		{name: "zero body limit", mutate: func(c *Config) { c.Server.MaxBodyBytes = 0 }, wantErr: "MAX_BODY_BYTES"},
		{name: "zero timeout", mutate: func(c *Config) { c.Telegram.TimeoutSeconds = 0 }, wantErr: "TELEGRAM_TIMEOUT_SECONDS"},
		{name: "missing api base", mutate: func(c *Config) { c.Telegram.APIBaseURL = "" }, wantErr: "TELEGRAM_API_BASE_URL"},
		{name: "missing index file", mutate: func(c *Config) { c.Static.IndexFile = "" }, wantErr: "INDEX_FILE"},
		{name: "negative cache ttl", mutate: func(c *Config) { c.Static.PageCacheTTLSec = -1 }, wantErr: "PAGE_CACHE_TTL"},
		{name: "gzip level too high", mutate: func(c *Config) { c.Compression.Level = 10 }, wantErr: "COMPRESS_LEVEL"},
		{name: "negative min size", mutate: func(c *Config) { c.Compression.MinSize = -5 }, wantErr: "COMPRESS_MIN_SIZE"},
		{
			name:    "profiling without endpoint",
			mutate:  func(c *Config) { c.Profiling.Enabled = true },
			wantErr: "O11Y_PROFILING_ENDPOINT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, "https://api.telegram.org", cfg.Telegram.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.TelegramTimeout())
	assert.Equal(t, 6, cfg.Compression.Level)
	assert.Equal(t, 500, cfg.Compression.MinSize)
	assert.Equal(t, "index.html", cfg.Static.IndexFile)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.TelegramConfigured())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TELEGRAM_BOT_TOKEN", " 123:abc ")
	t.Setenv("TELEGRAM_CHAT_ID", "-1001")
	t.Setenv("TELEGRAM_API_BASE_URL", "http://localhost:8081/")
	t.Setenv("ALLOWED_CORS_ORIGINS", "https://inzzo.app, ,https://www.inzzo.app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "http://localhost:8081", cfg.Telegram.APIBaseURL)
	assert.Equal(t, []string{"https://inzzo.app", "https://www.inzzo.app"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.TelegramConfigured())
}

func TestLoad_InvalidCompressionLevel(t *testing.T) {
	t.Setenv("COMPRESS_LEVEL", "42")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMPRESS_LEVEL")
}
