package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	ErrMissingAPIKey     = errors.New("GEMINI_API_KEY not found. Set it in your environment variables!")
	ErrUnknownBackend    = errors.New("unknown llm backend")
	ErrNotConfigured     = errors.New("llm is not configured")
	ErrUnauthorized      = errors.New("llm unauthorized")
	ErrRateLimited       = errors.New("llm rate limited")
	ErrMalformedResponse = errors.New("llm malformed response")
	ErrEmptyResponse     = fmt.Errorf("%w: no text in response", ErrMalformedResponse)
)

type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("llm api error: %s", e.Status)
	}
	return fmt.Sprintf("llm api error: %s: %s", e.Status, e.Body)
}

// Kind is the coarse category of a failed remote call.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnauthorized
	KindRateLimited
	KindTransport
	KindMalformed
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	case KindTransport:
		return "transport"
	case KindMalformed:
		return "malformed"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindService
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindTransport
	}
	return KindUnknown
}

func newAPIError(statusCode int, status, body string) error {
	if status == "" {
		status = fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
	}
	apiErr := &APIError{
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", ErrRateLimited, apiErr)
	default:
		return apiErr
	}
}
