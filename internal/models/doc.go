// Package models provides functionality for listing the OpenAI chat
// models available to the configured API key, so users can pick a model
// identifier for translation runs.
package models
