package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
)

// ErrMalformedType is returned by ParseType when an action type does not
// have exactly three non-empty "/"-separated segments.
var ErrMalformedType = fmt.Errorf("resource: malformed action type: %w", domain.ErrValidation)

// ErrUnknownDomain is returned by ParseType when the DOMAIN segment is not
// one of the known domains.
var ErrUnknownDomain = fmt.Errorf("resource: unknown action domain: %w", domain.ErrValidation)

// typeSeparator delimits the RESOURCE/DOMAIN/METHOD segments of an action type.
const typeSeparator = "/"

// Domain is the action sub-category: a whole-slice domain (RESOURCE, META,
// CHANGESET) or an operation name.
type Domain string

const (
	DomainResource  Domain = "RESOURCE"
	DomainMeta      Domain = "META"
	DomainChangeset Domain = "CHANGESET"
	DomainFetch     Domain = "FETCH"
	DomainCreate    Domain = "CREATE"
	DomainUpdate    Domain = "UPDATE"
	DomainDestroy   Domain = "DESTROY"
)

// IsValid returns true if the domain is one of the defined constants.
func (d Domain) IsValid() bool {
	switch d {
	case DomainResource, DomainMeta, DomainChangeset:
		return true
	default:
		_, ok := d.Operation()
		return ok
	}
}

// Operation returns the status key addressed by an operation domain.
// The second result is false for RESOURCE, META and CHANGESET, and for any
// spelling other than the uppercase constants.
func (d Domain) Operation() (Operation, bool) {
	switch d {
	case DomainFetch:
		return OpFetch, true
	case DomainCreate:
		return OpCreate, true
	case DomainUpdate:
		return OpUpdate, true
	case DomainDestroy:
		return OpDestroy, true
	default:
		return "", false
	}
}

// String implements fmt.Stringer.
func (d Domain) String() string {
	return string(d)
}

// Method is the lifecycle verb of an action.
type Method string

const (
	MethodStart   Method = "START"
	MethodSuccess Method = "SUCCESS"
	MethodFailure Method = "FAILURE"
	MethodReset   Method = "RESET"
	MethodMerge   Method = "MERGE"
	MethodRemove  Method = "REMOVE"
)

// String implements fmt.Stringer.
func (m Method) String() string {
	return string(m)
}

// Type is the parsed form of an action type string RESOURCE/DOMAIN/METHOD.
type Type struct {
	Resource string
	Domain   Domain
	Method   Method
}

// ParseType splits an action type string into its three segments.
//
// The METHOD segment is not restricted: RESOURCE and META actions accept any
// method, and an unrecognized method under an operation domain is inert in
// the reducer.
func ParseType(s string) (Type, error) {
	parts := strings.Split(s, typeSeparator)
	if len(parts) != 3 {
		return Type{}, fmt.Errorf("%q has %d segments, want 3: %w", s, len(parts), ErrMalformedType)
	}
	for i, p := range parts {
		if strings.TrimSpace(p) == "" {
			return Type{}, fmt.Errorf("%q has an empty segment at position %d: %w", s, i+1, ErrMalformedType)
		}
	}

	t := Type{Resource: parts[0], Domain: Domain(parts[1]), Method: Method(parts[2])}
	if !t.Domain.IsValid() {
		return Type{}, fmt.Errorf("%q: %w", t.Domain, ErrUnknownDomain)
	}
	return t, nil
}

// String renders the type as RESOURCE/DOMAIN/METHOD.
func (t Type) String() string {
	return t.Resource + typeSeparator + string(t.Domain) + typeSeparator + string(t.Method)
}

// Meta carries action metadata. On SUCCESS it is shallow-merged into the
// slice meta; on CHANGESET actions its "form" key selects the buffer.
type Meta map[string]any

// DefaultForm is the changeset buffer used when an action names no form.
const DefaultForm = "default"

// Form returns the changeset form named by the "form" key, or DefaultForm.
func (m Meta) Form() string {
	if form, ok := m["form"].(string); ok && form != "" {
		return form
	}
	return DefaultForm
}

// Action is a single state transition request for one resource slice.
type Action struct {
	Type    Type
	Payload any
	Meta    Meta

	// ClearMeta reports that the action carried an explicit null or false
	// meta. A SUCCESS action with ClearMeta replaces the slice meta with an
	// empty map instead of merging.
	ClearMeta bool
}

// actionEnvelope is the wire shape of an action.
type actionEnvelope struct {
	Type    string          `json:"type"`
	Payload any             `json:"payload"`
	Meta    json.RawMessage `json:"meta"`
}

// UnmarshalJSON decodes {type, payload, meta} and validates the type.
// Numbers in the payload and meta are kept as json.Number.
func (a *Action) UnmarshalJSON(data []byte) error {
	var env actionEnvelope
	if err := DecodeJSON(data, &env); err != nil {
		return fmt.Errorf("decoding action: %w", err)
	}

	t, err := ParseType(env.Type)
	if err != nil {
		return err
	}

	decoded := Action{Type: t, Payload: env.Payload}

	raw := bytes.TrimSpace(env.Meta)
	switch {
	case len(raw) == 0:
	case bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
		decoded.ClearMeta = true
	default:
		if err := DecodeJSON(raw, &decoded.Meta); err != nil {
			return fmt.Errorf("meta must be an object, null or false: %w",
				errors.Join(domain.ErrValidation, err))
		}
	}

	*a = decoded
	return nil
}

// MarshalJSON encodes the action in its wire shape.
func (a Action) MarshalJSON() ([]byte, error) {
	var meta any = a.Meta
	if a.ClearMeta {
		meta = nil
	} else if a.Meta == nil {
		return json.Marshal(struct {
			Type    string `json:"type"`
			Payload any    `json:"payload,omitempty"`
		}{Type: a.Type.String(), Payload: a.Payload})
	}
	return json.Marshal(struct {
		Type    string `json:"type"`
		Payload any    `json:"payload,omitempty"`
		Meta    any    `json:"meta"`
	}{Type: a.Type.String(), Payload: a.Payload, Meta: meta})
}

// NewAction builds an action for the named resource. The resource name is
// uppercased to match the slice naming convention.
func NewAction(resource string, d Domain, m Method, payload any) Action {
	return Action{
		Type:    Type{Resource: strings.ToUpper(resource), Domain: d, Method: m},
		Payload: payload,
	}
}

// Start builds an OPERATION/START action carrying the request payload.
func Start(resource string, op Operation, payload any) Action {
	return NewAction(resource, op.Domain(), MethodStart, payload)
}

// Success builds an OPERATION/SUCCESS action carrying the response payload.
func Success(resource string, op Operation, payload any, meta Meta) Action {
	a := NewAction(resource, op.Domain(), MethodSuccess, payload)
	a.Meta = meta
	return a
}

// Failure builds an OPERATION/FAILURE action carrying the error payload.
func Failure(resource string, op Operation, payload any) Action {
	return NewAction(resource, op.Domain(), MethodFailure, payload)
}

// ResetStatus builds an OPERATION/RESET action.
func ResetStatus(resource string, op Operation) Action {
	return NewAction(resource, op.Domain(), MethodReset, nil)
}

// ResetResource builds a RESOURCE/RESET action restoring the initial state.
func ResetResource(resource string) Action {
	return NewAction(resource, DomainResource, MethodReset, nil)
}

// ResetMeta builds a META/RESET action.
func ResetMeta(resource string) Action {
	return NewAction(resource, DomainMeta, MethodReset, nil)
}

// MergeChanges builds a CHANGESET/MERGE action for form.
func MergeChanges(resource, form string, fields Fields) Action {
	a := NewAction(resource, DomainChangeset, MethodMerge, fields)
	a.Meta = formMeta(form)
	return a
}

// RemoveChanges builds a CHANGESET/REMOVE action deleting the named fields
// from form.
func RemoveChanges(resource, form string, names ...string) Action {
	a := NewAction(resource, DomainChangeset, MethodRemove, names)
	a.Meta = formMeta(form)
	return a
}

// ResetChanges builds a CHANGESET/RESET action for form.
func ResetChanges(resource, form string) Action {
	a := NewAction(resource, DomainChangeset, MethodReset, nil)
	a.Meta = formMeta(form)
	return a
}

func formMeta(form string) Meta {
	if form == "" {
		return nil
	}
	return Meta{"form": form}
}

// TypesFor lists every action type string understood by a slice named
// resource, in a stable order.
func TypesFor(resource string) []string {
	name := strings.ToUpper(resource)
	types := make([]string, 0, 2+3+4*len(Operations))

	for _, op := range Operations {
		for _, m := range []Method{MethodStart, MethodSuccess, MethodFailure, MethodReset} {
			types = append(types, Type{Resource: name, Domain: op.Domain(), Method: m}.String())
		}
	}
	for _, m := range []Method{MethodMerge, MethodRemove, MethodReset} {
		types = append(types, Type{Resource: name, Domain: DomainChangeset, Method: m}.String())
	}
	types = append(types,
		Type{Resource: name, Domain: DomainMeta, Method: MethodReset}.String(),
		Type{Resource: name, Domain: DomainResource, Method: MethodReset}.String(),
	)
	return types
}
