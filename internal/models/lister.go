package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists the chat models usable for translation
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .mdglot.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		id := model.ID
		if strings.Contains(id, "gpt") || strings.Contains(id, "chat") {
			chatModels = append(chatModels, id)
		}
	}
	sort.Strings(chatModels)

	fmt.Println("Available OpenAI chat models for translation:")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
		return nil
	}
	for _, model := range chatModels {
		fmt.Printf("  %s\n", model)
	}
	fmt.Println("\nGemini model identifiers (e.g. gemini-2.0-flash) are passed through as-is.")

	return nil
}
