package config

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Port        string
	Model       string // Whisper model identifier (e.g. "large-v3")
	ModelDir    string // local model download directory for the whisper CLI
	CacheDir    string // transcript cache directory (gen_cache snapshots)
	STTProvider string // "whisper" (local CLI, default) or "openai"
	OpenAIKey   string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Model:       getEnv("WHISPER_MODEL", "large-v3"),
		ModelDir:    getEnv("WHISPER_MODEL_DIR", "/app/models"),
		CacheDir:    getEnv("CACHE_DIR", "/app/cache"),
		STTProvider: strings.ToLower(getEnv("STT_PROVIDER", "whisper")),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
	}

	// Validate required environment variables
	if cfg.STTProvider == "openai" && cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required when STT_PROVIDER=openai. Please set it as environment variable:\n  Linux/Mac: export OPENAI_API_KEY=\"your_key\"")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
