package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"seo-keyword-finder/internal/domain"

	"github.com/go-playground/validator/v10"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort      string        `validate:"required"`
	ExportPath      string        `validate:"required"`
	MaxFileSize     int64         `validate:"gt=0"`
	LogLevel        string        `validate:"required"`
	GeminiAPIKey    string        `validate:"required"`
	GeminiModel     string        `validate:"required"`
	LLMTimeout      time.Duration `validate:"gt=0"`
	TrendsGeo       string
	TrendsTimeframe string   `validate:"required"`
	AllowedOrigins  []string `validate:"min=1,dive,required"`
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:      getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		ExportPath:      getEnvOrDefault("EXPORT_PATH", os.TempDir()),
		MaxFileSize:     getEnvInt64OrDefault("MAX_FILE_SIZE", 25*1024*1024), // 25MB default
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		GeminiAPIKey:    getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:     getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMTimeout:      getEnvDurationOrDefault("LLM_TIMEOUT", 2*time.Minute),
		TrendsGeo:       getEnvOrDefault("TRENDS_GEO", ""),
		TrendsTimeframe: getEnvOrDefault("TRENDS_TIMEFRAME", "today 3-m"),
		AllowedOrigins:  getEnvListOrDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"}),
	}
}

// Validate checks the configuration at startup so misconfiguration fails
// fast instead of surfacing on the first upload.
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetExportPath returns the directory exported DOCX files are written to
func (c *AppConfig) GetExportPath() string {
	return c.ExportPath
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGeminiAPIKey returns the Gemini API key
func (c *AppConfig) GetGeminiAPIKey() string {
	return c.GeminiAPIKey
}

// GetGeminiModel returns the Gemini model name
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetLLMTimeout returns the per-call timeout for model requests
func (c *AppConfig) GetLLMTimeout() time.Duration {
	return c.LLMTimeout
}

// GetTrendsGeo returns the Google Trends geo filter ("" = worldwide)
func (c *AppConfig) GetTrendsGeo() string {
	return c.TrendsGeo
}

// GetTrendsTimeframe returns the Google Trends timeframe expression
func (c *AppConfig) GetTrendsTimeframe() string {
	return c.TrendsTimeframe
}

// GetAllowedOrigins returns the CORS allow-list
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
