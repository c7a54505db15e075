package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host           string
	Port           int
	LogLevel       slog.Level
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	LLMModel       string
	LLMMaxTokens   int
	LLMTemperature float64
	LLMTimeout     time.Duration
}

// Load reads configuration from the environment. A missing OPENAI_API_KEY is
// not an error: the service then answers from its fallback tables only.
func Load() (Config, error) {
	c := Config{
		Host:           envOr("HOST", "0.0.0.0"),
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:       envOr("LLM_MODEL", "gpt-4o-mini"),
		LLMMaxTokens:   150,
		LLMTemperature: 0.8,
		LLMTimeout:     20 * time.Second,
	}

	port, err := ParsePort(envOr("PORT", "12000"))
	if err != nil {
		return Config{}, err
	}
	c.Port = port

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid LLM_TIMEOUT %q", v)
		}
		c.LLMTimeout = d
	}

	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid LLM_MAX_TOKENS %q", v)
		}
		c.LLMMaxTokens = n
	}

	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 2 {
			return Config{}, fmt.Errorf("invalid LLM_TEMPERATURE %q", v)
		}
		c.LLMTemperature = f
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

// Addr is the host:port the server listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// AIEnabled reports whether a completion credential is configured.
func (c Config) AIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

func ParsePort(s string) (int, error) {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return 0, fmt.Errorf("invalid PORT %q", s)
	}
	return p, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
