package llm

import (
	"context"
	"strings"

	"nlp_qa/internal/config"

	openrouter "github.com/revrost/go-openrouter"
)

// GeminiOpenAIBaseURL is Gemini's OpenAI-compatible chat completion endpoint.
const GeminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

type openRouterBackend struct {
	client *openrouter.Client
	model  string
}

func newOpenRouterBackend(cfg config.Config, apiKey, model string) *openRouterBackend {
	cfgClient := openrouter.DefaultConfig(apiKey)
	cfgClient.BaseURL = GeminiOpenAIBaseURL
	if baseURL := strings.TrimSpace(cfg.LLMBaseURL); baseURL != "" {
		cfgClient.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	cfgClient.HTTPClient = newHTTPClient(cfg.Timeout)

	return &openRouterBackend{
		client: openrouter.NewClientWithConfig(*cfgClient),
		model:  model,
	}
}

func (b *openRouterBackend) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, rec := withStatusRecorder(ctx)
	request := openrouter.ChatCompletionRequest{
		Model: b.model,
		Messages: []openrouter.ChatCompletionMessage{
			openrouter.UserMessage(prompt),
		},
	}

	resp, err := b.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", rec.wrap(err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content.Text, nil
}
