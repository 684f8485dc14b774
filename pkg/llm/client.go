// Package llm wraps the hosted text-generation providers behind one small
// interface.
package llm

import (
	"context"
	"fmt"

	"tabi/pkg/config"
)

// TextGenerator sends a prompt and returns the raw completion text.
// Implementations are immutable after construction and safe for concurrent use.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Close() error
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// ConfigurationError means the generator cannot be built from the given
// configuration, usually because the API key is absent.
type ConfigurationError struct {
	Provider string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured: %s", e.Provider, e.Reason)
}

// NetworkError wraps a failed round-trip to the provider. The upstream
// message is kept verbatim.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// New builds the generator selected by AI_PROVIDER.
func New(ctx context.Context, cfg *config.Config) (TextGenerator, error) {
	switch cfg.AIProvider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout)
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIURL, cfg.AITimeout)
	default:
		return nil, &ConfigurationError{Provider: cfg.AIProvider, Reason: "unsupported provider, use 'gemini' or 'openai'"}
	}
}

// Unavailable is used in place of a real generator when configuration failed.
// Every call returns the configuration error.
type Unavailable struct {
	Err error
}

func (u Unavailable) GenerateText(context.Context, string) (string, error) {
	return "", u.Err
}

func (Unavailable) Close() error { return nil }
