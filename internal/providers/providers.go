package providers

import (
	"context"
)

// Config represents a single text-generation request to an LLM provider.
type Config struct {
	Model       string
	Temperature float64
	Prompt      string
}

// Provider defines the interface for an LLM provider.
type Provider interface {
	GenerateText(ctx context.Context, config Config) (string, error)
}
