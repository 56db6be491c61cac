package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiProvider implements Provider using the Gemini API
type GeminiProvider struct {
	client *genai.Client
	config *Config
}

// NewGeminiProvider creates a new Gemini translation provider
func NewGeminiProvider(config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: config,
	}, nil
}

// Translate sends the document in a single generateContent request and
// returns the translated text
func (p *GeminiProvider) Translate(ctx context.Context, text string) (string, error) {
	temperature := p.config.Temperature
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(p.config.Instruction(text), genai.RoleUser),
		Temperature:       &temperature,
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.config.Model, genai.Text(text), genConfig)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translated, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is configured with an API key
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not set")
	}
	return nil
}
