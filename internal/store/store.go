// Package store holds the state slices of every registered resource and
// applies actions to them.
//
// The store is the only place where a slice is replaced. Reducers are pure,
// so a dispatch computes every new slice first and then swaps them in under
// a single lock: readers observe either the state before an action or the
// state after it, never a partial application.
//
//	s := store.New(logger, metrics)
//	_ = s.Register(users)
//	err := s.Dispatch(ctx, resource.Start("users", resource.OpFetch, nil))
//	st, _ := s.State("users")
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/logging"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/telemetry"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Store         = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// ErrNotClaimed is returned when no registered slice handles an action.
var ErrNotClaimed = fmt.Errorf("store: no resource handles action: %w", domain.ErrNotFound)

// ErrUnknownResource is returned by State for unregistered names.
var ErrUnknownResource = fmt.Errorf("store: unknown resource: %w", domain.ErrNotFound)

// ErrDuplicateResource is returned by Register when the name is taken.
var ErrDuplicateResource = fmt.Errorf("store: resource already registered: %w", domain.ErrConflict)

// errNoResources is reported by HealthCheck before any slice is registered.
var errNoResources = errors.New("store: no resources registered")

// slice pairs a reducer with its current state.
type slice struct {
	reducer *resource.Reducer
	state   resource.State
}

// Store is a thread-safe container of resource slices.
type Store struct {
	mu      sync.RWMutex
	order   []string
	slices  map[string]*slice
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates an empty store. If metrics is nil, metric recording is skipped.
func New(logger *slog.Logger, metrics *telemetry.Metrics) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		slices:  make(map[string]*slice),
		metrics: metrics,
		logger:  logger,
	}
}

// Register adds a reducer and initializes its slice. Names are compared
// case-insensitively.
func (s *Store) Register(r *resource.Reducer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := r.Name()
	if _, ok := s.slices[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateResource, name)
	}
	s.slices[name] = &slice{reducer: r, state: r.Initial()}
	s.order = append(s.order, name)

	s.logger.Info("resource registered",
		slog.String("resource", name),
		slog.String("id_attribute", r.IDAttribute()),
	)
	return nil
}

// Names returns the registered resource names in registration order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// State returns the current slice of the named resource.
func (s *Store) State(name string) (resource.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sl, ok := s.slices[strings.ToUpper(name)]
	if !ok {
		return resource.State{}, fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}
	return sl.state, nil
}

// Snapshot returns every slice keyed by resource name.
func (s *Store) Snapshot() map[string]resource.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]resource.State, len(s.slices))
	for name, sl := range s.slices {
		out[name] = sl.state
	}
	return out
}

// Dispatch applies the action to every slice that handles it.
func (s *Store) Dispatch(ctx context.Context, a resource.Action) error {
	return s.DispatchBatch(ctx, []resource.Action{a})
}

// DispatchBatch applies actions in order as a single transition. If any
// action is not handled by a registered slice, nothing is applied.
func (s *Store) DispatchBatch(ctx context.Context, actions []resource.Action) error {
	if len(actions) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range actions {
		if _, ok := s.slices[strings.ToUpper(a.Type.Resource)]; !ok {
			s.record(ctx, a, 0, "unclaimed")
			return fmt.Errorf("action %d (%s): %w", i, a.Type, ErrNotClaimed)
		}
	}

	next := make(map[string]resource.State, len(actions))
	for _, a := range actions {
		start := time.Now()
		name := strings.ToUpper(a.Type.Resource)
		sl := s.slices[name]

		current, ok := next[name]
		if !ok {
			current = sl.state
		}
		next[name] = sl.reducer.Reduce(current, a)

		s.record(ctx, a, time.Since(start), "applied")
		logging.FromContext(ctx).DebugContext(ctx, "action applied",
			slog.String("operation", "Store.Dispatch"),
			slog.String("resource", name),
			slog.String("type", a.Type.String()),
		)
	}

	for name, st := range next {
		s.slices[name].state = st
	}
	return nil
}

// Name returns the health checker identifier.
func (s *Store) Name() string {
	return "store"
}

// HealthCheck reports an error while no resource is registered.
func (s *Store) HealthCheck(_ context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.slices) == 0 {
		return errNoResources
	}
	return nil
}

// record emits dispatch metrics. Safe to call with nil metrics.
func (s *Store) record(ctx context.Context, a resource.Action, elapsed time.Duration, result string) {
	if s.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrResource.String(strings.ToUpper(a.Type.Resource)),
		telemetry.AttrActionDomain.String(a.Type.Domain.String()),
		telemetry.AttrActionMethod.String(a.Type.Method.String()),
		telemetry.AttrResult.String(result),
	)
	s.metrics.ActionTotal.Add(ctx, 1, attrs)
	if result == "applied" {
		s.metrics.ActionDuration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
