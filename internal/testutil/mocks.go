package testutil

import (
	"context"
	"fmt"
)

// MockProvider mocks a translation provider. Responses and errors are
// keyed by the exact document text; unknown text gets a default
// translation so tests only need to configure what they assert on.
type MockProvider struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// Translate mocks a translation request
func (m *MockProvider) Translate(ctx context.Context, text string) (string, error) {
	m.Calls = append(m.Calls, text)

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if translated, ok := m.Translations[text]; ok {
		return translated, nil
	}

	// Default response
	return fmt.Sprintf("translated: %s", text), nil
}

// Name returns the provider name
func (m *MockProvider) Name() string {
	return "mock"
}

// IsAvailable always reports the mock as available
func (m *MockProvider) IsAvailable() error {
	return nil
}
