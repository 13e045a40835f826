package llm

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"nlp_qa/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const GeminiRESTBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type restPart struct {
	Text string `json:"text"`
}

type restContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []restPart `json:"parts"`
}

type generateContentRequest struct {
	Contents []restContent `json:"contents"`
}

type restBackend struct {
	http  *resty.Client
	model string
}

func newRESTBackend(cfg config.Config, apiKey, model string) *restBackend {
	baseURL := GeminiRESTBaseURL
	if override := strings.TrimSpace(cfg.LLMBaseURL); override != "" {
		baseURL = strings.TrimSuffix(override, "/")
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", apiKey)
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	return &restBackend{
		http:  httpClient,
		model: model,
	}
}

func (b *restBackend) Generate(ctx context.Context, prompt string) (string, error) {
	body := generateContentRequest{
		Contents: []restContent{{
			Role:  "user",
			Parts: []restPart{{Text: prompt}},
		}},
	}

	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(b.model))
	resp, err := b.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp.IsError() {
		return "", apiErrorFromResponse(resp)
	}
	return parseGenerateContent(resp.Body())
}

func apiErrorFromResponse(resp *resty.Response) error {
	body := strings.TrimSpace(resp.String())
	if msg := gjson.Get(body, "error.message"); msg.Exists() {
		body = msg.String()
	}
	return newAPIError(resp.StatusCode(), resp.Status(), body)
}

// parseGenerateContent concatenates the text parts of the first candidate.
func parseGenerateContent(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("%w: invalid json", ErrMalformedResponse)
	}

	parts := gjson.GetBytes(body, "candidates.0.content.parts.#.text")
	var sb strings.Builder
	for _, part := range parts.Array() {
		sb.WriteString(part.String())
	}
	if sb.Len() == 0 {
		if reason := gjson.GetBytes(body, "promptFeedback.blockReason"); reason.Exists() {
			return "", fmt.Errorf("%w: blocked: %s", ErrEmptyResponse, reason.String())
		}
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
