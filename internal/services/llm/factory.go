package llm

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/peto/internal/common"
	"github.com/ternarybob/peto/internal/interfaces"
)

// NewService creates the configured LLM provider. The provider defaults to
// Gemini when unset.
func NewService(config *common.LLMConfig, logger arbor.ILogger) (interfaces.LLMService, error) {
	provider := config.Provider
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		return NewGeminiService(&config.Gemini, logger)
	case "claude":
		return NewClaudeService(&config.Claude, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
