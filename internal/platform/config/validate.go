package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/robfig/cron/v3"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
	merges     = []string{"", "replace", "merge"}
)

// Validate checks every section and joins all failures into one error.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Client.check(&p)
	c.Telemetry.check(&p)
	checkResources(&p, c.Resources)
	c.Sync.check(&p)
	return p.err()
}

// problems accumulates validation failures keyed by their config path.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of: %s; got %q", key, strings.Join(slices.DeleteFunc(slices.Clone(allowed), isBlank), ", "), got)
	}
}

func (p *problems) positive(key string, ok bool) {
	if !ok {
		p.addf("%s must be positive", key)
	}
}

func (p problems) err() error {
	return errors.Join(p...)
}

func isBlank(s string) bool { return s == "" }

func (s *ServerConfig) check(p *problems) {
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	p.positive("server.read_timeout", s.ReadTimeout > 0)
	p.positive("server.write_timeout", s.WriteTimeout > 0)
	if s.HealthCheckTimeout < 0 {
		p.addf("server.health_check_timeout must not be negative, got %s", s.HealthCheckTimeout)
	}
}

func (l *LogConfig) check(p *problems) {
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
}

func (cl *ClientConfig) check(p *problems) {
	if cl.BaseURL == "" {
		p.addf("client.base_url must not be empty")
	}
	p.positive("client.timeout", cl.Timeout > 0)
	if cl.Retry.MaxAttempts < 1 {
		p.addf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	}
	p.positive("client.retry.multiplier", cl.Retry.Multiplier > 0)
	if cl.CircuitBreaker.MaxFailures < 1 {
		p.addf("client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		p.addf("client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	}
}

// check is a no-op when telemetry is disabled so profiles can leave the
// exporter settings unset.
func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	if t.Exporter == "otlp" && t.Endpoint == "" {
		p.addf("telemetry.endpoint must not be empty when exporter is otlp")
	}
}

// validateResources reports the same failures Validate does for the
// resources section alone.
func validateResources(resources []ResourceConfig) error {
	var p problems
	checkResources(&p, resources)
	return p.err()
}

// checkResources requires at least one resource, names unique ignoring case
// and free of '/', and absolute downstream paths.
func checkResources(p *problems, resources []ResourceConfig) {
	if len(resources) == 0 {
		p.addf("resources must register at least one resource")
	}

	seen := make(map[string]bool, len(resources))
	for i, r := range resources {
		key := fmt.Sprintf("resources[%d]", i)
		name := strings.ToUpper(strings.TrimSpace(r.Name))
		if name == "" {
			p.addf("%s.name must not be empty", key)
			continue
		}
		if strings.Contains(name, "/") {
			p.addf("%s.name must not contain '/', got %q", key, r.Name)
		}
		if seen[name] {
			p.addf("%s.name %q is registered more than once", key, r.Name)
		}
		seen[name] = true

		p.oneOf(key+".merge", r.Merge, merges)
		if r.Path != "" && !strings.HasPrefix(r.Path, "/") {
			p.addf("%s.path must start with '/', got %q", key, r.Path)
		}
	}
}

func (s *SyncConfig) check(p *problems) {
	if s.MaxWorkers < 1 {
		p.addf("sync.max_workers must be >= 1, got %d", s.MaxWorkers)
	}
	if s.Schedule == "" {
		return
	}
	if _, err := cron.ParseStandard(s.Schedule); err != nil {
		p.addf("sync.schedule %q is not a valid cron spec: %w", s.Schedule, err)
	}
}
