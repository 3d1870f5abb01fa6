package ports

import (
	"context"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
)

// ResourceSource defines the client port for the downstream REST API that
// resources are synchronized from. Implemented by the acl adapter; called by
// the application layer. Payloads are decoded JSON values (lists, objects or
// primitives) exactly as the reducer receives them.
type ResourceSource interface {
	// Supports reports whether the named resource is backed by the source.
	// Resources without a source are only changed by dispatched actions.
	Supports(name string) bool

	// Fetch returns the collection payload for the named resource.
	// Returns domain.ErrNotFound if the resource has no configured path.
	Fetch(ctx context.Context, name string) (any, error)

	// Create posts fields to the resource collection and returns the created entity.
	Create(ctx context.Context, name string, fields resource.Fields) (any, error)

	// Update patches the entity with the given identifier and returns the updated entity.
	// Returns domain.ErrNotFound if the entity does not exist.
	Update(ctx context.Context, name string, id resource.ID, fields resource.Fields) (any, error)

	// Destroy deletes the entity with the given identifier.
	// Returns domain.ErrNotFound if the entity does not exist.
	Destroy(ctx context.Context, name string, id resource.ID) error
}
