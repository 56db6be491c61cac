package translation

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
)

// Provider defines the interface for document translation backends
type Provider interface {
	// Translate translates one document to the configured target language,
	// preserving Markdown structure. It issues exactly one request; there
	// is no chunking and no retrying.
	Translate(ctx context.Context, text string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for translation providers
type Config struct {
	Provider   string       // Provider name: "openai" or "gemini"
	Model      string       // Model identifier, e.g. "gpt-4o-mini" or "gemini-2.0-flash"
	TargetLang language.Tag // Language to translate into
	SourceLang string       // BCP 47 tag of the source language; "" means detect per document

	// Credentials
	OpenAIKey string
	GeminiKey string

	// Sampling settings shared by both providers
	Temperature float32
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:    "openai",
		Model:       "gpt-4o-mini",
		TargetLang:  language.English,
		Temperature: 0.3,
	}
}

// NewProvider creates the appropriate translation provider based on configuration
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	switch config.Provider {
	case "openai":
		return NewOpenAIProvider(config)
	case "gemini":
		return NewGeminiProvider(config)
	default:
		return nil, fmt.Errorf("unknown translation provider: %s", config.Provider)
	}
}
