package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type statusKey struct{}

// statusRecorder remembers the last HTTP status seen for one call so SDK
// errors can be mapped onto APIError without depending on SDK error types.
type statusRecorder struct {
	code   int
	status string
}

func withStatusRecorder(ctx context.Context) (context.Context, *statusRecorder) {
	rec := &statusRecorder{}
	return context.WithValue(ctx, statusKey{}, rec), rec
}

// wrap annotates err with the recorded status. A 2xx status with an error
// means the SDK could not decode the body.
func (r *statusRecorder) wrap(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case r.code >= http.StatusBadRequest:
		return fmt.Errorf("%w: %w", newAPIError(r.code, r.status, ""), err)
	case r.code >= http.StatusOK && r.code < http.StatusMultipleChoices:
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	default:
		return err
	}
}

type statusTransport struct {
	base http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if rec, ok := req.Context().Value(statusKey{}).(*statusRecorder); ok && resp != nil {
		rec.code = resp.StatusCode
		rec.status = resp.Status
	}
	return resp, err
}

// newHTTPClient returns a client that records response statuses. A zero
// timeout keeps the library default of no client-side deadline.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: statusTransport{base: http.DefaultTransport},
	}
}
