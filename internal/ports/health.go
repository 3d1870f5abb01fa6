package ports

import "context"

// HealthChecker reports whether one dependency of the service is usable.
// The store and the downstream resource source implement it.
type HealthChecker interface {
	// Name keys the result in the readiness body, e.g. "store".
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness check.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker; nil values mean healthy.
	CheckAll(ctx context.Context) map[string]error
}
