package resource

import "log/slog"

// DefaultIDAttribute is the entity field read as the identifier when
// Options.IDAttribute is empty.
const DefaultIDAttribute = "id"

// MergeFunc combines the stored entity (nil when the id is new) with an
// incoming one during CREATE/UPDATE/FETCH success.
type MergeFunc func(previous, incoming Entity) Entity

// ChangesetFunc combines a form's buffer (nil before the first edit) with
// incoming field edits.
type ChangesetFunc func(existing, incoming Fields) Fields

// PayloadFunc reshapes an action payload before it is used. It receives
// the operation, the raw payload and the action meta.
type PayloadFunc func(op Operation, payload any, meta Meta) any

// Options configures a Reducer. Zero-valued fields take the defaults
// documented on each field.
type Options struct {
	// IDAttribute names the identifier field. Default "id".
	IDAttribute string

	// OnUpdate merges entities. Default ReplaceEntity.
	OnUpdate MergeFunc

	// ChangesetReducer merges form edits. Default MergeFields.
	ChangesetReducer ChangesetFunc

	// EntityReducer reshapes SUCCESS payloads before they are merged.
	// Default Identity.
	EntityReducer PayloadFunc

	// ErrorReducer reshapes FAILURE payloads before they are stored in the
	// status. Default Identity.
	ErrorReducer PayloadFunc

	// Logger receives the warning emitted for entities without an
	// identifier. Default slog.Default().
	Logger *slog.Logger
}

// withDefaults returns a copy of o with every empty field defaulted.
func (o Options) withDefaults() Options {
	if o.IDAttribute == "" {
		o.IDAttribute = DefaultIDAttribute
	}
	if o.OnUpdate == nil {
		o.OnUpdate = ReplaceEntity
	}
	if o.ChangesetReducer == nil {
		o.ChangesetReducer = MergeFields
	}
	if o.EntityReducer == nil {
		o.EntityReducer = Identity
	}
	if o.ErrorReducer == nil {
		o.ErrorReducer = Identity
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// ReplaceEntity is the default MergeFunc: the incoming entity replaces the
// stored one.
func ReplaceEntity(_, incoming Entity) Entity {
	return incoming
}

// MergeEntity is a MergeFunc that shallow-merges incoming fields over the
// stored entity, keeping fields the incoming entity omits.
func MergeEntity(previous, incoming Entity) Entity {
	merged := make(Entity, len(previous)+len(incoming))
	for k, v := range previous {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged
}

// MergeFields is the default ChangesetFunc: a shallow merge of incoming
// over existing. A nil existing buffer is treated as empty.
func MergeFields(existing, incoming Fields) Fields {
	return MergeEntity(existing, incoming)
}

// Identity is the default PayloadFunc.
func Identity(_ Operation, payload any, _ Meta) any {
	return payload
}

// Unwrap returns a PayloadFunc that extracts payload[key] from envelope
// responses such as {"data": [...]}. Payloads without the key pass through.
func Unwrap(key string) PayloadFunc {
	return func(_ Operation, payload any, _ Meta) any {
		obj, ok := plain(payload).(map[string]any)
		if !ok {
			return payload
		}
		if inner, ok := obj[key]; ok {
			return inner
		}
		return payload
	}
}
