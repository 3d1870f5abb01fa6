package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/httpclient"
)

// Call describes one downstream request.
type Call struct {
	Method string
	Path   string
	// Body is sent as JSON when non-nil.
	Body any
	// Accept lists the statuses treated as success.
	Accept []int
	// Out receives the decoded response when non-nil and the response has
	// content.
	Out any
}

// Requester runs Calls through an instrumented httpclient.Client: it builds
// the request, checks the status, translates failures and decodes the body.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester returns a Requester sending through client.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	return &Requester{client: client, logger: logger}
}

// Name is the downstream service name of the client.
func (r *Requester) Name() string {
	return r.client.Name()
}

// HealthCheck reports the client's circuit breaker health.
func (r *Requester) HealthCheck(ctx context.Context) error {
	return r.client.HealthCheck(ctx)
}

// Do executes c. A status outside c.Accept is translated by
// TranslateHTTPError, including when retries ran out on a retryable status.
func (r *Requester) Do(ctx context.Context, c Call) error {
	req, err := r.newRequest(ctx, c)
	if err != nil {
		return err
	}

	resp, err := r.client.Do(ctx, req)
	if resp != nil {
		defer r.closeBody(ctx, resp)
	}
	if resp != nil && !slices.Contains(c.Accept, resp.StatusCode) {
		r.logger.WarnContext(ctx, "unexpected downstream status",
			slog.String("method", c.Method),
			slog.String("path", c.Path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "downstream request failed",
			slog.String("method", c.Method),
			slog.String("path", c.Path),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s %s: %w", c.Method, c.Path, err)
	}

	if c.Out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := resource.NewDecoder(resp.Body).Decode(c.Out); err != nil && err != io.EOF {
		return fmt.Errorf("decoding response from %s %s: %w", c.Method, c.Path, err)
	}
	return nil
}

func (r *Requester) newRequest(ctx context.Context, c Call) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if c.Body != nil {
		encoded, err := json.Marshal(c.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s body for %s: %w", c.Method, c.Path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, c.Method, r.client.URL(c.Path), body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request for %s: %w", c.Method, c.Path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body", slog.Any("error", err))
	}
}
