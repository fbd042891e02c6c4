package llm

import (
	"fmt"
	"strings"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/config"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm/providers"
)

// NewProvider creates the generation provider selected by configuration.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.LLM.Provider {
	case "gemini":
		return providers.NewGeminiProvider(cfg), nil
	case "claude":
		return providers.NewClaudeProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q (supported: %s)",
			cfg.LLM.Provider, strings.Join(SupportedProviders(), ", "))
	}
}

// SupportedProviders returns the list of provider identifiers NewProvider
// accepts.
func SupportedProviders() []string {
	return []string{"gemini", "claude"}
}
