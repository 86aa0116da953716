package interfaces

import (
	"context"
)

// Message represents a single message in a chat conversation
type Message struct {
	// Role identifies the message sender: "user", "assistant", or "system"
	Role string

	// Content contains the text content of the message
	Content string
}

// LLMService defines the interface for text generation. Implementations wrap
// a cloud provider (Gemini, Claude); the personalization service composes
// prompts on top of this.
type LLMService interface {
	// Chat generates a completion for the conversation history. The messages
	// slice should contain the full context in chronological order, including
	// system prompts.
	Chat(ctx context.Context, messages []Message) (string, error)

	// HealthCheck verifies the provider is reachable and authenticated.
	HealthCheck(ctx context.Context) error

	// Provider returns the provider name ("gemini" or "claude").
	Provider() string

	// Close releases resources held by the client.
	Close() error
}
