package llm

import (
	"context"
	"fmt"
	"time"

	"nlp_qa/internal/config"

	"go.uber.org/zap"
)

// Backend sends a single prompt to a model and returns its text.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	backend Backend
	model   string
	logger  *zap.Logger
}

// NewClient builds the client for cfg.Backend(). It refuses to build anything
// without a credential.
func NewClient(cfg config.Config, logger *zap.Logger) (*Client, error) {
	logger = logger.Named("llm")
	apiKey := cfg.APIKey()
	model := cfg.Model()

	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var (
		backend Backend
		err     error
	)
	switch name := cfg.Backend(); name {
	case "genai":
		backend, err = newGenAIBackend(context.Background(), cfg, apiKey, model)
	case "openrouter":
		backend = newOpenRouterBackend(cfg, apiKey, model)
	case "rest":
		backend = newRESTBackend(cfg, apiKey, model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s backend: %w", cfg.Backend(), err)
	}

	logger.Debug("llm client ready",
		zap.String("backend", cfg.Backend()),
		zap.String("model", model),
		zap.Duration("timeout", cfg.Timeout),
	)

	return NewClientWithBackend(backend, model, logger), nil
}

func NewClientWithBackend(backend Backend, model string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		backend: backend,
		model:   model,
		logger:  logger,
	}
}

func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.model
}

// Ask sends prompt unchanged. Every error is returned as a Failure.
func (c *Client) Ask(ctx context.Context, prompt string) Result {
	if c == nil || c.backend == nil {
		return NewFailure(ErrNotConfigured)
	}

	start := time.Now()
	text, err := c.backend.Generate(ctx, prompt)
	if err == nil && text == "" {
		err = ErrEmptyResponse
	}
	elapsed := time.Since(start)

	if err != nil {
		failure := NewFailure(err)
		c.logger.Debug("llm call failed",
			zap.String("model", c.model),
			zap.Stringer("kind", failure.Kind),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return failure
	}

	c.logger.Debug("llm answer",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)),
		zap.Int("answer_len", len(text)),
		zap.Duration("elapsed", elapsed),
	)
	return Answer{Text: text}
}

// Send is Ask flattened to the text that should be shown.
func (c *Client) Send(ctx context.Context, prompt string) string {
	return c.Ask(ctx, prompt).String()
}
