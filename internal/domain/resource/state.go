package resource

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
)

// Operation names one tracked request lifecycle. The set is closed: only
// these four keys ever appear in State.Status.
type Operation string

const (
	OpFetch   Operation = "fetch"
	OpCreate  Operation = "create"
	OpUpdate  Operation = "update"
	OpDestroy Operation = "destroy"
)

// Operations lists every tracked operation in a stable order.
var Operations = []Operation{OpFetch, OpCreate, OpUpdate, OpDestroy}

// IsValid returns true if the operation is one of the defined constants.
func (o Operation) IsValid() bool {
	switch o {
	case OpFetch, OpCreate, OpUpdate, OpDestroy:
		return true
	default:
		return false
	}
}

// Domain returns the action domain addressing this operation.
func (o Operation) Domain() Domain {
	switch o {
	case OpFetch:
		return DomainFetch
	case OpCreate:
		return DomainCreate
	case OpUpdate:
		return DomainUpdate
	case OpDestroy:
		return DomainDestroy
	default:
		return Domain("")
	}
}

// String implements fmt.Stringer.
func (o Operation) String() string {
	return string(o)
}

// ID identifies an entity. Values are always a non-empty string, a non-zero
// int64, or a non-integral float64; see NormalizeID.
type ID any

// Entity is a single normalized record.
type Entity = map[string]any

// Fields is one form's buffer of pending field edits.
type Fields = map[string]any

// OperationStatus tracks the last request of one operation.
//
// Pending and Success are tri-state: nil means the operation never ran
// (or its outcome is unknown).
type OperationStatus struct {
	Pending *bool `json:"pending"`
	Busy    bool  `json:"busy"`
	Success *bool `json:"success"`
	Payload any   `json:"payload"`
}

// IsIdle reports whether the status is the never-run default.
func (s OperationStatus) IsIdle() bool {
	return s.Pending == nil && s.Success == nil && !s.Busy && s.Payload == nil
}

// State is the normalized snapshot of one resource type.
//
// A State is a value: reducers never modify the maps or slices of a State
// they receive, so a State may be shared freely between readers.
type State struct {
	Results   []ID
	Entities  map[ID]Entity
	Meta      Meta
	Changeset map[string]Fields
	Status    map[Operation]OperationStatus
}

// InitialState returns an empty slice with every status idle.
func InitialState() State {
	status := make(map[Operation]OperationStatus, len(Operations))
	for _, op := range Operations {
		status[op] = OperationStatus{}
	}
	return State{
		Results:   []ID{},
		Entities:  map[ID]Entity{},
		Meta:      Meta{},
		Changeset: map[string]Fields{},
		Status:    status,
	}
}

// Len returns the number of entities.
func (s State) Len() int {
	return len(s.Results)
}

// Lookup resolves an identifier received as text, as in a URL path. An
// integer-looking key is tried as a number first, then as a string.
func (s State) Lookup(raw string) (Entity, ID, bool) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if e, ok := s.Entities[n]; ok {
			return e, n, true
		}
	}
	if e, ok := s.Entities[raw]; ok {
		return e, raw, true
	}
	return nil, nil, false
}

// List returns the entities in Results order.
func (s State) List() []Entity {
	out := make([]Entity, 0, len(s.Results))
	for _, id := range s.Results {
		if e, ok := s.Entities[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// stateJSON is the wire shape of State. Entity keys are rendered as text
// because JSON objects only have string keys.
type stateJSON struct {
	Results   []ID                          `json:"results"`
	Entities  map[string]Entity             `json:"entities"`
	Meta      Meta                          `json:"meta"`
	Changeset map[string]Fields             `json:"changeset"`
	Status    map[Operation]OperationStatus `json:"status"`
}

// ErrKeyCollision is returned by State.MarshalJSON when two identifiers,
// such as the number 1 and the string "1", render as the same JSON key.
var ErrKeyCollision = fmt.Errorf("resource: entity keys collide in JSON: %w", domain.ErrConflict)

// MarshalJSON implements json.Marshaler. It fails with ErrKeyCollision
// rather than drop one of two entities sharing a rendered key.
func (s State) MarshalJSON() ([]byte, error) {
	out := stateJSON{
		Results:   s.Results,
		Entities:  make(map[string]Entity, len(s.Entities)),
		Meta:      s.Meta,
		Changeset: s.Changeset,
		Status:    s.Status,
	}
	if out.Results == nil {
		out.Results = []ID{}
	}
	if out.Meta == nil {
		out.Meta = Meta{}
	}
	if out.Changeset == nil {
		out.Changeset = map[string]Fields{}
	}
	for id, e := range s.Entities {
		key := fmt.Sprint(id)
		if _, taken := out.Entities[key]; taken {
			return nil, fmt.Errorf("%q: %w", key, ErrKeyCollision)
		}
		out.Entities[key] = e
	}
	return json.Marshal(out)
}

// withStatus returns a copy of s with one operation's status replaced.
func (s State) withStatus(op Operation, st OperationStatus) State {
	status := make(map[Operation]OperationStatus, len(Operations))
	for k, v := range s.Status {
		status[k] = v
	}
	status[op] = st
	s.Status = status
	return s
}
