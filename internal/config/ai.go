package config

import (
	"os"
	"sync"
)

type AIConfig struct {
	// Provider selects the text-generation backend: "gemini" (default) or
	// "openrouter".
	Provider string
	// ForceFallback serves every degradable task from the pre-authored
	// catalog without calling the provider. Default false.
	ForceFallback bool
}

var (
	aiConfig *AIConfig
	aiOnce   sync.Once
)

func LoadAIConfig() *AIConfig {
	aiOnce.Do(func() {
		provider := os.Getenv("AI_PROVIDER")
		if provider == "" {
			provider = "gemini"
		}
		aiConfig = &AIConfig{
			Provider:      provider,
			ForceFallback: os.Getenv("AI_FORCE_FALLBACK") == "true",
		}
	})
	return aiConfig
}
