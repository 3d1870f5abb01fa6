// Package ports holds the interfaces the layers meet at. Handlers call
// ResourceService, the service drives a Store and a ResourceSource, and the
// readiness check reads a HealthRegistry of HealthCheckers. Adapters and the
// mocks package implement them.
package ports
