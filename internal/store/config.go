package store

import (
	"fmt"
	"log/slog"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/config"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/telemetry"
)

// mergeStrategyMerge selects resource.MergeEntity for a resource.
const mergeStrategyMerge = "merge"

// NewReducer builds the reducer described by one resource entry.
func NewReducer(rc config.ResourceConfig, logger *slog.Logger) (*resource.Reducer, error) {
	opts := resource.Options{
		IDAttribute: rc.IDAttribute,
		Logger:      logger,
	}
	if rc.Merge == mergeStrategyMerge {
		opts.OnUpdate = resource.MergeEntity
	}
	if rc.Envelope != "" {
		opts.EntityReducer = resource.Unwrap(rc.Envelope)
	}

	r, err := resource.New(rc.Name, opts)
	if err != nil {
		return nil, fmt.Errorf("resource %q: %w", rc.Name, err)
	}
	return r, nil
}

// Build creates a store holding one slice per configured resource, in
// configuration order.
func Build(resources []config.ResourceConfig, logger *slog.Logger, metrics *telemetry.Metrics) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := New(logger, metrics)
	for _, rc := range resources {
		r, err := NewReducer(rc, logger.With(slog.String("resource", rc.Name)))
		if err != nil {
			return nil, err
		}
		if err := s.Register(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}
