package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	SourceLLM      = "llm"
	SourceNewsData = "newsdata"
	SourceRSS      = "rss"
)

var ErrMissingKey = errors.New("missing API key")

type LLM struct {
	Provider string
	Model    string
	APIKey   string
}

type Config struct {
	Port        string
	FrontendURL string

	LLM LLM

	NewsSource     string
	NewsDataAPIKey string
	MaxArticles    int

	SentimentThreshold float64

	QueryLogPath string
	DatabaseURL  string
	RedisURL     string
	CacheTTL     time.Duration

	LogLevel string
	LogFile  string

	// Warnings lists env values that were ignored in favour of a default.
	// Report them with LogWarnings once logging is set up.
	Warnings []Warning
}

type Warning struct {
	Name    string
	Value   string
	Default string
	Reason  string
}

var apiKeyEnv = map[string]string{
	ProviderGemini:    "GEMINI_API_KEY",
	ProviderOpenAI:    "OPENAI_API_KEY",
	ProviderAnthropic: "ANTHROPIC_API_KEY",
}

var defaultModels = map[string]string{
	ProviderGemini:    "gemini-2.0-flash",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-haiku-4-5",
}

// Load reads .env (if present) and the process environment once, and checks
// that the configured model provider and news source can be used.
func Load() (*Config, error) {
	godotenv.Load()
	return FromEnv()
}

// LoadQueryLog is Load for tools that only read the query log. The model
// provider and news source settings are not validated.
func LoadQueryLog() *Config {
	godotenv.Load()
	return readEnv()
}

func FromEnv() (*Config, error) {
	cfg := readEnv()
	if err := cfg.validatePipeline(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogWarnings reports the fallbacks recorded while reading the environment.
func (c *Config) LogWarnings() {
	for _, w := range c.Warnings {
		slog.Warn("invalid environment variable, using default",
			"name", w.Name, "value", w.Value, "default", w.Default, "reason", w.Reason)
	}
}

func readEnv() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		NewsSource:     strings.ToLower(getEnv("NEWS_SOURCE", SourceLLM)),
		NewsDataAPIKey: os.Getenv("NEWSDATA_API_KEY"),
		QueryLogPath:   getEnv("QUERY_LOG_PATH", "analytics_log.csv"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        os.Getenv("LOG_FILE"),
	}

	cfg.MaxArticles = cfg.getEnvInt("MAX_ARTICLES", 5)
	cfg.SentimentThreshold = cfg.getEnvFloat("SENTIMENT_THRESHOLD", 0.2)
	cfg.CacheTTL = cfg.getEnvDuration("CACHE_TTL", 10*time.Minute)

	cfg.LLM.Provider = strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini))
	cfg.LLM.Model = getEnv("LLM_MODEL", defaultModels[cfg.LLM.Provider])
	if name, ok := apiKeyEnv[cfg.LLM.Provider]; ok {
		cfg.LLM.APIKey = os.Getenv(name)
	}

	if cfg.MaxArticles < 1 {
		cfg.warn("MAX_ARTICLES", strconv.Itoa(cfg.MaxArticles), "5", "must be at least 1")
		cfg.MaxArticles = 5
	}

	if cfg.SentimentThreshold < 0 || cfg.SentimentThreshold >= 1 {
		cfg.warn("SENTIMENT_THRESHOLD", strconv.FormatFloat(cfg.SentimentThreshold, 'g', -1, 64), "0.2", "must be in [0, 1)")
		cfg.SentimentThreshold = 0.2
	}

	return cfg
}

func (c *Config) validatePipeline() error {
	if _, ok := apiKeyEnv[c.LLM.Provider]; !ok {
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}

	if c.LLM.APIKey == "" {
		return fmt.Errorf("%w: %s provider needs %s", ErrMissingKey, c.LLM.Provider, apiKeyEnv[c.LLM.Provider])
	}

	switch c.NewsSource {
	case SourceLLM, SourceRSS:
	case SourceNewsData:
		if c.NewsDataAPIKey == "" {
			return fmt.Errorf("%w: NEWSDATA_API_KEY is required for the newsdata source", ErrMissingKey)
		}
	default:
		return fmt.Errorf("unknown NEWS_SOURCE %q", c.NewsSource)
	}

	return nil
}

func (c *Config) warn(name, value, def, reason string) {
	c.Warnings = append(c.Warnings, Warning{Name: name, Value: value, Default: def, Reason: reason})
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}

func (c *Config) getEnvInt(name string, defaultValue int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		c.warn(name, raw, strconv.Itoa(defaultValue), err.Error())
		return defaultValue
	}
	return v
}

func (c *Config) getEnvFloat(name string, defaultValue float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.warn(name, raw, strconv.FormatFloat(defaultValue, 'g', -1, 64), err.Error())
		return defaultValue
	}
	return v
}

func (c *Config) getEnvDuration(name string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return defaultValue
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		c.warn(name, raw, defaultValue.String(), err.Error())
		return defaultValue
	}
	return v
}
