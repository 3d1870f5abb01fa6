package httpclient_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HumzahChoudry/redux-api-resources/internal/platform/config"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/httpclient"
)

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// get sends GET path through client and closes any response body, returning
// the status (0 without a response) and the body text.
func get(ctx context.Context, t *testing.T, client *httpclient.Client, path string) (int, string, error) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.URL(path), http.NoBody)
	require.NoError(t, err)

	resp, err := client.Do(ctx, req)
	if resp == nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	return resp.StatusCode, string(body), err
}

// failingServer answers every request with status and counts the hits.
func failingServer(t *testing.T, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestDo_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/todos", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1}]`))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "resource-api", nil, testLogger())

	status, body, err := get(context.Background(), t, client, "/todos")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":1}]`, body)
}

func TestClient_URL(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://api.local/v1/"), "resource-api", nil, testLogger())

	assert.Equal(t, "http://api.local/v1", client.BaseURL())
	assert.Equal(t, "http://api.local/v1/todos", client.URL("/todos"))
	assert.Equal(t, "http://api.local/v1/todos/7", client.URL("todos/7"))
	assert.Equal(t, "http://api.local/v1", client.URL(""))
}

func TestDo_RetriesRetryableStatuses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		failures  int32
		wantCalls int32
	}{
		{"500 twice", http.StatusInternalServerError, 2, 3},
		{"502 once", http.StatusBadGateway, 1, 2},
		{"429 once", http.StatusTooManyRequests, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if calls.Add(1) <= tt.failures {
					w.WriteHeader(tt.status)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), "resource-api", nil, testLogger())

			status, _, err := get(context.Background(), t, client, "/todos")

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.wantCalls, calls.Load())
		})
	}
}

func TestDo_ClientErrorsAreNotRetried(t *testing.T) {
	t.Parallel()

	for _, code := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			t.Parallel()

			srv, hits := failingServer(t, code)
			client := httpclient.New(testConfig(srv.URL), "resource-api", nil, testLogger())

			status, _, err := get(context.Background(), t, client, "/todos/1")

			require.NoError(t, err)
			assert.Equal(t, code, status)
			assert.Equal(t, int32(1), hits.Load())
		})
	}
}

func TestDo_ExhaustedRetriesKeepLastBody(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("down for maintenance"))
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "resource-api", nil, testLogger())

	status, body, err := get(context.Background(), t, client, "/todos")

	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "down for maintenance", body)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_ReplaysRequestBody(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		first := len(bodies) == 1
		mu.Unlock()
		if first {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "resource-api", nil, testLogger())

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, client.URL("/todos"), strings.NewReader(`{"title":"a"}`))
	require.NoError(t, err)

	resp, err := client.Do(context.Background(), req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, []string{`{"title":"a"}`, `{"title":"a"}`}, bodies)
}

func TestDo_HonorsRetryAfterOn429(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	// The computed delay would outlast the test; Retry-After: 0 replaces it.
	cfg.Retry.InitialInterval = time.Minute
	cfg.Retry.MaxInterval = time.Minute
	client := httpclient.New(cfg, "resource-api", nil, testLogger())

	status, _, err := get(context.Background(), t, client, "/todos")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDo_PropagatesIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      context.Context
		wantReq  string
		wantCorr string
	}{
		{
			name:     "ids in context",
			ctx:      httpclient.WithCorrelationID(httpclient.WithRequestID(context.Background(), "req-1"), "corr-1"),
			wantReq:  "req-1",
			wantCorr: "corr-1",
		},
		{name: "no ids", ctx: context.Background()},
		{name: "empty ids", ctx: httpclient.WithRequestID(context.Background(), "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq, gotCorr string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotReq = r.Header.Get("X-Request-ID")
				gotCorr = r.Header.Get("X-Correlation-ID")
				w.WriteHeader(http.StatusOK)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), "resource-api", nil, testLogger())

			_, _, err := get(tt.ctx, t, client, "/todos")

			require.NoError(t, err)
			assert.Equal(t, tt.wantReq, gotReq)
			assert.Equal(t, tt.wantCorr, gotCorr)
		})
	}
}

func TestDo_BreakerOpensAndRecovers(t *testing.T) {
	t.Parallel()

	var failing atomic.Bool
	failing.Store(true)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		if failing.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "resource-api", nil, testLogger())
	ctx := context.Background()

	assert.Equal(t, "closed", client.CircuitBreakerState())
	require.NoError(t, client.HealthCheck(ctx))

	_, _, err := get(ctx, t, client, "/todos")
	require.Error(t, err)
	assert.Equal(t, "open", client.CircuitBreakerState())
	assert.ErrorContains(t, client.HealthCheck(ctx), "failing")

	before := hits.Load()
	status, _, err := get(ctx, t, client, "/todos")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Zero(t, status)
	assert.Equal(t, before, hits.Load(), "open breaker must not reach the server")

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, "half-open", client.CircuitBreakerState())
	assert.ErrorContains(t, client.HealthCheck(ctx), "degraded")

	failing.Store(false)
	status, _, err = get(ctx, t, client, "/todos")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "closed", client.CircuitBreakerState())
}

func TestDo_CanceledContext(t *testing.T) {
	t.Parallel()

	srv, hits := failingServer(t, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := httpclient.New(cfg, "resource-api", nil, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, _, err := get(ctx, t, client, "/todos")

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, status)
	assert.Zero(t, hits.Load())
	assert.Equal(t, "closed", client.CircuitBreakerState(), "caller cancellation must not trip the breaker")
}

func TestDo_RateLimiterWaitHonorsContext(t *testing.T) {
	t.Parallel()

	srv, hits := failingServer(t, http.StatusOK)

	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	client := httpclient.New(cfg, "resource-api", nil, testLogger())

	_, _, err := get(context.Background(), t, client, "/todos")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, _, err = get(ctx, t, client, "/todos")

	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://localhost"), "resource-api", nil, testLogger())

	assert.Equal(t, "resource-api", client.Name())
}
