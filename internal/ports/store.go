package ports

import (
	"context"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
)

// Store holds one state slice per registered resource and serializes every
// transition through the resource reducers. Implemented by internal/store.
type Store interface {
	// Dispatch applies one action to every slice that claims it.
	// Returns domain.ErrNotFound if no registered slice claims the action.
	Dispatch(ctx context.Context, action resource.Action) error

	// DispatchBatch applies actions in order as one unit. Nothing is applied
	// unless every action is claimed by a registered slice.
	DispatchBatch(ctx context.Context, actions []resource.Action) error

	// State returns the current slice for the named resource (case-insensitive).
	// Returns domain.ErrNotFound for unregistered names.
	State(name string) (resource.State, error)

	// Names returns the registered resource names in registration order.
	Names() []string
}
