// Package config holds the process-wide configuration for honyakukit.
//
// Configuration is read once at startup from the environment (optionally
// seeded from a local .env file by the root command) and passed into each
// component explicitly. Nothing below cmd/ reads the environment directly.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// apiKeyPlaceholder is the value left behind by copying the .env example
// without filling in a real key.
const apiKeyPlaceholder = "your_api_key_here"

// Config is the immutable runtime configuration shared by all subcommands.
type Config struct {
	// GeminiAPIKey authenticates calls to the Gemini API. Required by the
	// annotate subcommand only.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// GeminiModel is the generative model used for annotation.
	GeminiModel string `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash"`

	// OllamaHost overrides the Ollama server used for sentence embeddings.
	// Empty means the standard OLLAMA_HOST resolution applies.
	OllamaHost string `env:"HONYAKU_OLLAMA_HOST"`

	// EmbedModel is the multilingual sentence-embedding model served by
	// Ollama and used by the align subcommand.
	EmbedModel string `env:"EMBED_MODEL" env-default:"paraphrase-multilingual"`

	// RequestInterval is the fixed pause after every annotated record.
	// 6s keeps the pipeline under the free tier's 10 requests per minute.
	RequestInterval time.Duration `env:"REQUEST_INTERVAL" env-default:"6s"`

	// MaxRetries bounds API attempts per record before the record is
	// marked with the call-failed sentinel.
	MaxRetries int `env:"MAX_RETRIES" env-default:"3"`

	// RetryDelay is the pause between retry attempts.
	RetryDelay time.Duration `env:"RETRY_DELAY" env-default:"5s"`

	// ErrorLogPath is the append-only run log shared by all annotate runs.
	ErrorLogPath string `env:"ERROR_LOG" env-default:"error_log.txt"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	return cfg, nil
}

// RequireAPIKey verifies that a usable Gemini API key is configured.
// The returned error carries setup instructions so a first-time operator
// sees exactly what to do; callers must check this before touching any
// input or output files.
func (c Config) RequireAPIKey() error {
	key := strings.TrimSpace(c.GeminiAPIKey)
	if key == "" || key == apiKeyPlaceholder {
		return fmt.Errorf(`GEMINI_API_KEY is not set

To configure it:
  1. Create a .env file next to the binary (or export the variable)
  2. Add the line:
       GEMINI_API_KEY=<your API key>

Get an API key at https://aistudio.google.com/app/apikey`)
	}
	return nil
}
