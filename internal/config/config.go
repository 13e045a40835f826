package config

import (
	"fmt"
	"strings"
	"time"

	coreconfig "github.com/go-core-fx/config"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBackend = "genai"
)

type Config struct {
	GeminiAPIKey string        `koanf:"gemini_api_key"`
	LLMAPIKey    string        `koanf:"llm_api_key"`
	LLMModel     string        `koanf:"llm_model"`
	LLMBackend   string        `koanf:"llm_backend"`
	LLMBaseURL   string        `koanf:"llm_base_url"`
	Timeout      time.Duration `koanf:"timeout"`
	LogFile      string        `koanf:"log_file"`
	Debug        bool          `koanf:"debug"`
}

func Default() Config {
	return Config{
		LLMModel:   DefaultModel,
		LLMBackend: DefaultBackend,
		LogFile:    "./nlp-qa.log",
		Debug:      false,
	}
}

func New() (Config, error) {
	cfg := Default()

	if err := coreconfig.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

// APIKey returns the credential used for remote calls. LLM_API_KEY wins over
// GEMINI_API_KEY so a non-Gemini gateway can be used without renaming.
func (c Config) APIKey() string {
	if key := strings.TrimSpace(c.LLMAPIKey); key != "" {
		return key
	}
	return strings.TrimSpace(c.GeminiAPIKey)
}

func (c Config) Model() string {
	if model := strings.TrimSpace(c.LLMModel); model != "" {
		return model
	}
	return DefaultModel
}

func (c Config) Backend() string {
	if backend := strings.ToLower(strings.TrimSpace(c.LLMBackend)); backend != "" {
		return backend
	}
	return DefaultBackend
}
