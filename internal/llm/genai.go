package llm

import (
	"context"
	"strings"

	"nlp_qa/internal/config"

	"google.golang.org/genai"
)

type genAIBackend struct {
	client *genai.Client
	model  string
}

func newGenAIBackend(ctx context.Context, cfg config.Config, apiKey, model string) (*genAIBackend, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: newHTTPClient(cfg.Timeout),
	}
	if baseURL := strings.TrimSpace(cfg.LLMBaseURL); baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, err
	}
	return &genAIBackend{client: client, model: model}, nil
}

func (b *genAIBackend) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, rec := withStatusRecorder(ctx)
	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
	if err != nil {
		return "", rec.wrap(err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String(), nil
}
