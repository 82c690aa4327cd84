package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"quiz-session/internal/quiz"
)

const (
	DefaultMaxQuestions = 50
	DefaultBankSource   = "data/questions.json"
	DefaultDBPath       = "quiz.db"
	DefaultHTTPAddr     = ":8081"
	DefaultHTTPTimeout  = 5 * time.Second
)

type Config struct {
	BankSource   string        `yaml:"bank"`
	MaxQuestions int           `yaml:"max_questions"`
	DBPath       string        `yaml:"db"`
	HTTPAddr     string        `yaml:"addr"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	LogLevel     string        `yaml:"log_level"`
	LogFormat    string        `yaml:"log_format"`
}

func Defaults() Config {
	return Config{
		BankSource:   DefaultBankSource,
		MaxQuestions: DefaultMaxQuestions,
		DBPath:       DefaultDBPath,
		HTTPAddr:     DefaultHTTPAddr,
		HTTPTimeout:  DefaultHTTPTimeout,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Load layers defaults, the optional YAML file at path and the environment.
// An empty path falls back to $QUIZ_CONFIG; no file at all is fine.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv("QUIZ_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read config: %v", quiz.ErrLoadFailure, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parse config %s: %v", quiz.ErrLoadFailure, path, err)
		}
	}

	cfg.BankSource = envOr("QUIZ_BANK", cfg.BankSource)
	cfg.DBPath = envOr("QUIZ_DB", cfg.DBPath)
	cfg.HTTPAddr = envOr("ADDR", cfg.HTTPAddr)
	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOr("LOG_FORMAT", cfg.LogFormat)
	if v := os.Getenv("QUIZ_MAX_QUESTIONS"); v != "" {
		cfg.MaxQuestions = parseMaxQuestions(v)
	}
	if v := os.Getenv("QUIZ_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}

	cfg.Normalize()
	return cfg, nil
}

// Normalize replaces absent or invalid values with their defaults.
func (c *Config) Normalize() {
	if c.MaxQuestions <= 0 {
		c.MaxQuestions = DefaultMaxQuestions
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
	if strings.TrimSpace(c.BankSource) == "" {
		c.BankSource = DefaultBankSource
	}
	if strings.TrimSpace(c.DBPath) == "" {
		c.DBPath = DefaultDBPath
	}
	if strings.TrimSpace(c.HTTPAddr) == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
}

func parseMaxQuestions(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return DefaultMaxQuestions
	}
	return parsed
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
