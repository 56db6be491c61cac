// Package translation provides document translation through LLM providers.
// It defines a provider interface with OpenAI and Gemini implementations,
// a circuit-breaker wrapper for batch runs, and prompt construction with
// best-effort source language detection.
package translation
