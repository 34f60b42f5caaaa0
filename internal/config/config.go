package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	FrontendURL     string
	AIProvider      string
	AIModel         string
	AIBaseURL       string
	GeminiKey       string
	OpenAIKey       string
	AITimeout       time.Duration
	RedisURL        string
	RateLimit       string
	EnableHSTS      bool
	ServerDebugMode bool
	OTELEnabled     bool
	OTELEndpoint    string
	Mail            MailConfig
}

// MailConfig holds the SMTP settings of the contact relay.
type MailConfig struct {
	User       string
	Pass       string
	Host       string
	Port       int
	SenderName string
	AdminEmail string
}

// ClientConfig holds the terminal client's configuration.
type ClientConfig struct {
	APIURL       string
	DataDir      string
	HistoryLimit int
	Timeout      time.Duration
	DebugMode    bool
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given) without overriding the environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// APIKey returns the key for the configured provider.
func (c *Config) APIKey() string {
	if c.AIProvider == "openai" {
		return c.OpenAIKey
	}
	return c.GeminiKey
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
		AIProvider:      getEnv("AI_PROVIDER", "gemini"),
		AIModel:         getEnv("AI_MODEL", ""),
		AIBaseURL:       getEnv("AI_BASE_URL", ""),
		GeminiKey:       getEnv("GEMINI_API_KEY", ""),
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		RateLimit:       getEnv("RATE_LIMIT", "20-M"),
		EnableHSTS:      getEnvBool("ENABLE_HSTS", false),
		ServerDebugMode: getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		Mail: MailConfig{
			User:       getEnv("EMAIL_USER", ""),
			Pass:       getEnv("EMAIL_PASS", ""),
			Host:       getEnv("SMTP_HOST", "smtp.gmail.com"),
			SenderName: getEnv("SENDER_NAME", "YouthWell Support"),
		},
	}
	cfg.Mail.AdminEmail = getEnv("ADMIN_EMAIL", cfg.Mail.User)

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return nil, fmt.Errorf("SERVER_PORT must be a number, got %q", cfg.ServerPort)
	}

	var err error
	if cfg.AITimeout, err = getEnvDuration("AI_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Mail.Port, err = getEnvIntStrict("SMTP_PORT", 587); err != nil {
		return nil, err
	}

	switch cfg.AIProvider {
	case "gemini", "openai":
	default:
		return nil, fmt.Errorf("AI_PROVIDER must be gemini or openai, got %q", cfg.AIProvider)
	}

	return cfg, nil
}

// LoadClient loads the terminal client's configuration.
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{
		APIURL:    getEnv("YOUTHWELL_API_URL", "http://localhost:8080"),
		DataDir:   getEnv("YOUTHWELL_DATA_DIR", defaultDataDir()),
		DebugMode: getEnvBool("YOUTHWELL_DEBUG", false),
	}

	var err error
	if cfg.HistoryLimit, err = getEnvIntStrict("YOUTHWELL_HISTORY_LIMIT", 200); err != nil {
		return nil, err
	}
	if cfg.HistoryLimit < 0 {
		return nil, fmt.Errorf("YOUTHWELL_HISTORY_LIMIT must not be negative, got %d", cfg.HistoryLimit)
	}
	if cfg.Timeout, err = getEnvDuration("YOUTHWELL_TIMEOUT", 45*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + string(os.PathSeparator) + "youthwell"
	}
	return ".youthwell"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvIntStrict(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return intValue, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, value)
	}
	return d, nil
}
