package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	PostgresURL string `mapstructure:"POSTGRES_URL"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	// AI provider: "gemini" or "openai".
	AIProvider   string        `mapstructure:"AI_PROVIDER"`
	GeminiAPIKey string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string        `mapstructure:"GEMINI_MODEL"`
	OpenAIAPIKey string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel  string        `mapstructure:"OPENAI_MODEL"`
	OpenAIURL    string        `mapstructure:"OPENAI_BASE_URL"`
	AITimeout    time.Duration `mapstructure:"AI_TIMEOUT"`
	PromptLocale string        `mapstructure:"PROMPT_LOCALE"`

	RecommendMaxAttempts int           `mapstructure:"RECOMMEND_MAX_ATTEMPTS"`
	RecommendRetryDelay  time.Duration `mapstructure:"RECOMMEND_RETRY_DELAY"`

	RateLimitPerMin int    `mapstructure:"RATE_LIMIT_PER_MIN"`
	CORSOrigins     string `mapstructure:"CORS_ORIGINS"`
}

var defaults = map[string]any{
	"PORT":                   "5000",
	"ENV":                    "development",
	"LOG_LEVEL":              "info",
	"POSTGRES_URL":           "",
	"JWT_SECRET":             "",
	"JWT_TTL":                "24h",
	"AI_PROVIDER":            "gemini",
	"GEMINI_API_KEY":         "",
	"GEMINI_MODEL":           "gemini-2.0-flash",
	"OPENAI_API_KEY":         "",
	"OPENAI_MODEL":           "gpt-4o-mini",
	"OPENAI_BASE_URL":        "",
	"AI_TIMEOUT":             "30s",
	"PROMPT_LOCALE":          "ja",
	"RECOMMEND_MAX_ATTEMPTS": 3,
	"RECOMMEND_RETRY_DELAY":  "3s",
	"RATE_LIMIT_PER_MIN":     30,
	"CORS_ORIGINS":           "*",
}

// Load reads .env (when present), config.yaml (when present) and the process
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	// A missing .env file is the normal case in containers.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	c.AIProvider = strings.ToLower(strings.TrimSpace(c.AIProvider))
	c.PromptLocale = strings.ToLower(strings.TrimSpace(c.PromptLocale))
	if c.RecommendMaxAttempts < 1 {
		c.RecommendMaxAttempts = 1
	}
	if c.AITimeout <= 0 {
		c.AITimeout = 30 * time.Second
	}
	if c.JWTTTL <= 0 {
		c.JWTTTL = 24 * time.Hour
	}
}

// IsProduction checks if the environment is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
