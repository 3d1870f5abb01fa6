package ports

import (
	"context"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
)

// ResourceService defines the service port for resource state operations.
// Implemented by the application layer; called by inbound adapters (handlers,
// the scheduler). Every lifecycle method dispatches START, calls the
// downstream source, then dispatches SUCCESS or FAILURE, and returns the
// resulting slice.
type ResourceService interface {
	// Dispatch applies a caller-supplied action to the store.
	Dispatch(ctx context.Context, action resource.Action) error

	// DispatchBatch applies a batch of actions atomically.
	DispatchBatch(ctx context.Context, actions []resource.Action) error

	// Resources summarizes every registered resource.
	Resources(ctx context.Context) []ResourceSummary

	// State returns the slice for the named resource.
	// Returns domain.ErrNotFound for unregistered names.
	State(ctx context.Context, name string) (resource.State, error)

	// Query returns the slice's entities in result order, filtered by the
	// boolean expression where. An empty where returns every entity.
	// Returns domain.ErrValidation if where does not compile.
	Query(ctx context.Context, name, where string) ([]resource.Entity, error)

	// Fetch runs the FETCH lifecycle against the downstream source.
	Fetch(ctx context.Context, name string) (resource.State, error)

	// FetchAll runs Fetch for every registered resource with bounded
	// concurrency. The returned map holds only the resources that failed.
	FetchAll(ctx context.Context) map[string]error

	// Create runs the CREATE lifecycle.
	Create(ctx context.Context, name string, fields resource.Fields) (resource.State, error)

	// Update runs the UPDATE lifecycle for the entity with the given identifier.
	Update(ctx context.Context, name string, id resource.ID, fields resource.Fields) (resource.State, error)

	// Destroy runs the DESTROY lifecycle for the entity with the given identifier.
	Destroy(ctx context.Context, name string, id resource.ID) (resource.State, error)

	// Submit sends the form's changeset buffer downstream as a create (nil id)
	// or an update, and resets that form once the call succeeds.
	// Returns domain.ErrValidation if the form holds no changes.
	Submit(ctx context.Context, name, form string, id resource.ID) (resource.State, error)
}

// ResourceSummary describes one registered resource.
type ResourceSummary struct {
	Name  string
	Count int
	// Busy reports whether any operation of the resource is in flight.
	Busy bool
	// Forms lists the changeset forms that currently hold changes.
	Forms []string
}
