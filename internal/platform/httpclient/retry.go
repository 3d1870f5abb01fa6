package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/HumzahChoudry/redux-api-resources/internal/platform/logging"
)

// jitterFraction is the randomization factor applied to each delay (±25%).
const jitterFraction = 0.25

// maxRetryAfter bounds a server supplied Retry-After so a misbehaving
// downstream cannot park a refresh worker indefinitely.
const maxRetryAfter = 30 * time.Second

// doWithRetry executes the HTTP request, retrying network errors and
// retryable statuses with exponential backoff. A 429 carrying Retry-After
// waits the requested number of seconds instead of the computed delay.
// Request bodies are buffered so they can be replayed on each attempt. The
// result is written to resp rather than returned to avoid false positives
// from the bodyclose linter; the caller closes the response body.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.MaxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.MaxAttempts)
	}

	bodyBytes, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	attempt := 0
	operation := func() (*http.Response, error) {
		attempt++
		resetRequestBody(req, bodyBytes)

		r, err := c.http.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}

		if !isRetryableStatus(r.StatusCode) {
			return r, nil
		}

		statusErr := fmt.Errorf("HTTP %d from %s", r.StatusCode, c.name)

		// The last attempt hands the response back with its body intact.
		if attempt >= c.retry.MaxAttempts {
			return r, statusErr
		}

		wait, hasWait := retryAfter(r)
		drainResponseBody(r)
		if hasWait {
			return nil, backoff.RetryAfter(int(wait / time.Second))
		}
		return nil, statusErr
	}

	notify := func(err error, delay time.Duration) {
		logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
			slog.String("operation", "httpclient.Do"),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.name),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", c.retry.MaxAttempts),
			slog.Duration("backoff", delay),
			slog.Any("error", err),
		)
	}

	r, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(c.retry.MaxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(notify),
	)
	if r != nil {
		*resp = r
	}
	return err
}

// newBackOff builds the exponential policy for one Do call. ExponentialBackOff
// is stateful, so each call gets its own.
func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.Multiplier = c.retry.Multiplier
	b.RandomizationFactor = jitterFraction
	return b
}

// retryAfter reads a delta-seconds Retry-After header from a 429 response.
// HTTP-date values and other statuses are ignored.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	if resp.StatusCode != http.StatusTooManyRequests {
		return 0, false
	}
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0, false
	}
	return min(time.Duration(secs)*time.Second, maxRetryAfter), true
}

// bufferRequestBody reads and closes the request body, returning the bytes
// for replay on subsequent retry attempts. Returns nil if the body is nil.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()

	return bodyBytes, nil
}

func resetRequestBody(req *http.Request, bodyBytes []byte) {
	if bodyBytes == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	req.ContentLength = int64(len(bodyBytes))
}

// drainResponseBody discards the body so the connection can be reused.
func drainResponseBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// isRetryable reports whether a transport error is worth another attempt.
// Caller cancellation and deadlines end the loop; everything else, network
// errors included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return true
}

// isRetryableStatus reports 5xx and 429 as retryable.
func isRetryableStatus(statusCode int) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return statusCode >= http.StatusInternalServerError
}
