// Package embedding generates multilingual sentence embeddings through an
// Ollama server.
package embedding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

// Embedder turns a sentence into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Ollama generates embeddings using the Ollama API.
type Ollama struct {
	client     *api.Client
	model      string
	maxRetries int
	timeout    time.Duration
}

// NewOllama creates an Ollama embedder. An empty host falls back to the
// standard OLLAMA_HOST resolution.
func NewOllama(host, model string) (*Ollama, error) {
	hostURL := envconfig.Host()
	if host != "" {
		u, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
		}
		hostURL = u
	}

	return &Ollama{
		client:     api.NewClient(hostURL, http.DefaultClient),
		model:      model,
		maxRetries: 3,
		timeout:    30 * time.Second,
	}, nil
}

// Embed generates an embedding for a text, retrying transient failures.
func (e *Ollama) Embed(ctx context.Context, text string) ([]float64, error) {
	var err error

	for retries := 0; retries <= e.maxRetries; retries++ {
		if retries > 0 {
			time.Sleep(time.Duration(retries) * time.Second)
		}

		var embedding []float64
		embedding, err = e.createEmbedding(ctx, text)
		if err == nil {
			return embedding, nil
		}
	}

	return nil, fmt.Errorf("failed to create embedding after %d retries: %w", e.maxRetries, err)
}

func (e *Ollama) createEmbedding(ctx context.Context, text string) ([]float64, error) {
	req := api.EmbeddingRequest{
		Model:  e.model,
		Prompt: text,
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Embeddings(ctxWithTimeout, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding: %w", err)
	}

	return resp.Embedding, nil
}

// EmbedAll embeds every text in order. The corpus is single-book scale, so
// the calls stay sequential and the progress callback keeps the operator
// informed instead of parallelism.
func EmbedAll(ctx context.Context, e Embedder, texts []string, progress func(done, total int)) ([][]float64, error) {
	vectors := make([][]float64, len(texts))
	for i, text := range texts {
		v, err := e.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed text %d: %w", i, err)
		}
		vectors[i] = v
		if progress != nil {
			progress(i+1, len(texts))
		}
	}
	return vectors, nil
}
