package stt

import (
	"fmt"
	"log"

	"scribe/internal/config"
)

// CreateProvider creates an STT provider based on configuration. Creation
// validates the provider's prerequisites (CLI on PATH, API key present), so
// this is the "load" step: call it once at startup, before serving traffic.
func CreateProvider(cfg *config.Config) (Provider, error) {
	switch cfg.STTProvider {
	case "", "whisper":
		log.Printf("[STT Factory] Creating local whisper provider (model: %s)", cfg.Model)
		return NewWhisperProvider(cfg.Model, cfg.ModelDir)
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		log.Printf("[STT Factory] Creating OpenAI transcription provider")
		return NewOpenAIProvider(cfg.OpenAIKey), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: whisper, openai", cfg.STTProvider)
	}
}
