// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Log       LogConfig        `koanf:"log"`
	Client    ClientConfig     `koanf:"client"`
	Telemetry TelemetryConfig  `koanf:"telemetry"`
	Resources []ResourceConfig `koanf:"resources"`
	Sync      SyncConfig       `koanf:"sync"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// HealthCheckTimeout bounds each readiness check.
	HealthCheckTimeout time.Duration `koanf:"health_check_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// RedactFields lists extra attribute keys, such as entity fields holding
	// personal data, that are filtered from every log line.
	RedactFields []string `koanf:"redact_fields"`
}

// ClientConfig holds settings for the downstream REST API the resources are
// synchronized from.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// ResourceConfig registers one resource slice.
type ResourceConfig struct {
	// Name is the resource name used in action types (matched uppercased).
	Name string `koanf:"name"`
	// IDAttribute is the entity identifier field. Defaults to "id".
	IDAttribute string `koanf:"id_attribute"`
	// Merge selects the entity merge strategy: "replace" (default) or "merge".
	Merge string `koanf:"merge"`
	// Envelope, when set, unwraps SUCCESS payloads of the form {envelope: data}.
	Envelope string `koanf:"envelope"`
	// Path is the downstream collection path, e.g. "/todos".
	Path string `koanf:"path"`
}

// SyncConfig holds downstream synchronization settings.
type SyncConfig struct {
	// Schedule is a cron spec (e.g. "@every 30s") for periodic refresh.
	// Empty disables the scheduler.
	Schedule   string `koanf:"schedule"`
	MaxWorkers int    `koanf:"max_workers"`
}
