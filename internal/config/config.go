package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// NASA Harmony satellite-data configuration.
	HarmonyToken        string
	HarmonyEnabled      bool
	HarmonyTimeout      time.Duration
	HarmonyPollInterval time.Duration
	HarmonyCacheSize    int

	// Seed for the deterministic mock fallback provider; 0 seeds from the
	// current time.
	MockSeed int64
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	harmonyTimeout, err := parseDuration("HARMONY_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}

	pollInterval, err := parseDuration("HARMONY_POLL_INTERVAL", "1s")
	if err != nil {
		return nil, err
	}

	harmonyToken := os.Getenv("HARMONY_TOKEN")
	harmonyEnabled := harmonyToken != ""
	if v := os.Getenv("HARMONY_ENABLED"); v != "" {
		harmonyEnabled = v == "true"
	}

	mockSeed, err := parseInt64("MOCK_SEED", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		HarmonyToken:        harmonyToken,
		HarmonyEnabled:      harmonyEnabled,
		HarmonyTimeout:      harmonyTimeout,
		HarmonyPollInterval: pollInterval,
		HarmonyCacheSize:    parseHarmonyCacheSize(),

		MockSeed: mockSeed,
	}

	if cfg.HarmonyEnabled && cfg.HarmonyToken == "" {
		return nil, errors.New("HARMONY_ENABLED is true but HARMONY_TOKEN is not set")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseInt64(key string, def int64) (int64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parseHarmonyCacheSize() int {
	if s := os.Getenv("HARMONY_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
