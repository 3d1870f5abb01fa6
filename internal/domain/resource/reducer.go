package resource

import (
	"fmt"
	"strings"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
)

// ErrEmptyName is returned by New when the resource name is empty.
var ErrEmptyName = fmt.Errorf("resource: name must not be empty: %w", domain.ErrValidation)

// Reducer is the state transition function for one resource slice. It is
// immutable after construction and safe for concurrent use; callers are
// responsible for applying actions to a given State in order.
type Reducer struct {
	name string
	opts Options
}

// New creates a Reducer for the named resource. The name is matched against
// the RESOURCE segment of action types case-insensitively.
func New(name string, opts Options) (*Reducer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Reducer{
		name: strings.ToUpper(name),
		opts: opts.withDefaults(),
	}, nil
}

// Name returns the uppercased resource name.
func (r *Reducer) Name() string {
	return r.name
}

// IDAttribute returns the configured identifier field.
func (r *Reducer) IDAttribute() string {
	return r.opts.IDAttribute
}

// Initial returns the initial state of the slice.
func (r *Reducer) Initial() State {
	return InitialState()
}

// Handles reports whether a targets this slice.
func (r *Reducer) Handles(a Action) bool {
	return strings.ToUpper(a.Type.Resource) == r.name
}

// Reduce returns the state that results from applying a to s. Actions for
// other resources, unknown domains and unknown methods return s unchanged.
// s itself is never modified.
func (r *Reducer) Reduce(s State, a Action) State {
	if !r.Handles(a) {
		return s
	}

	switch a.Type.Domain {
	case DomainResource:
		return r.Initial()
	case DomainMeta:
		s.Meta = Meta{}
		return s
	case DomainChangeset:
		return r.reduceChangeset(s, a)
	}

	op, ok := a.Type.Domain.Operation()
	if !ok {
		return s
	}

	switch a.Type.Method {
	case MethodStart:
		return s.withStatus(op, startedStatus(a.Payload))
	case MethodSuccess:
		return r.succeed(s, op, a)
	case MethodFailure:
		return r.fail(s, op, a)
	case MethodReset:
		return s.withStatus(op, OperationStatus{})
	default:
		return s
	}
}

// succeed settles op and merges the payload into the slice. A falsy payload
// leaves the state untouched.
func (r *Reducer) succeed(s State, op Operation, a Action) State {
	if !Truthy(a.Payload) {
		return s
	}

	s = s.withStatus(op, succeededStatus(a.Payload))

	data := r.opts.EntityReducer(op, a.Payload, a.Meta)
	if op == OpDestroy {
		s = r.destroyEntities(s, data)
	} else {
		s = r.mergeEntities(s, op, data)
	}

	s.Meta = mergeMeta(s.Meta, a)
	return s
}

// fail records the transformed error payload for op. A falsy payload is
// stored as nil without calling the error reducer.
func (r *Reducer) fail(s State, op Operation, a Action) State {
	var payload any
	if Truthy(a.Payload) {
		payload = r.opts.ErrorReducer(op, a.Payload, a.Meta)
	}
	return s.withStatus(op, failedStatus(payload))
}
