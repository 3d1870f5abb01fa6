package resource

import (
	"log/slog"
	"maps"
)

// mergeEntities applies a CREATE/UPDATE/FETCH success payload. Each element
// is inserted or merged under its identifier; new identifiers are appended
// to Results and existing ones keep their position.
func (r *Reducer) mergeEntities(s State, op Operation, data any) State {
	results := s.Results
	entities := make(map[ID]Entity, len(s.Entities)+1)
	for k, v := range s.Entities {
		entities[k] = v
	}

	appended := false
	for i, el := range asList(data) {
		obj, _ := el.(map[string]any)
		id, ok := NormalizeID(obj[r.opts.IDAttribute])
		if !ok {
			r.opts.Logger.Warn("entity has no usable identifier, skipping",
				slog.String("resource", r.name),
				slog.String("operation", op.String()),
				slog.String("id_attribute", r.opts.IDAttribute),
				slog.Int("index", i),
			)
			continue
		}

		previous, exists := entities[id]
		if !exists {
			if !appended {
				results = append(make([]ID, 0, len(s.Results)+1), s.Results...)
				appended = true
			}
			results = append(results, id)
		}
		// The slice owns its entities: later writes to the payload map must
		// not reach the state. Nested values are shared.
		entities[id] = r.opts.OnUpdate(previous, maps.Clone(obj))
	}

	s.Results = results
	s.Entities = entities
	return s
}

// destroyEntities applies a DESTROY success payload. Elements are either
// bare identifiers or entities carrying one. Unknown identifiers are ignored.
func (r *Reducer) destroyEntities(s State, data any) State {
	var results []ID
	var entities map[ID]Entity

	for _, el := range asList(data) {
		raw := el
		if !isPrimitive(el) {
			obj, _ := el.(map[string]any)
			raw = obj[r.opts.IDAttribute]
		}
		id, ok := NormalizeID(raw)
		if !ok {
			continue
		}

		if results == nil {
			results = s.Results
		}
		idx := indexOf(results, id)
		if idx < 0 {
			continue
		}

		if entities == nil {
			entities = make(map[ID]Entity, len(s.Entities))
			for k, v := range s.Entities {
				entities[k] = v
			}
		}
		next := make([]ID, 0, len(results)-1)
		next = append(next, results[:idx]...)
		results = append(next, results[idx+1:]...)
		delete(entities, id)
	}

	if entities == nil {
		return s
	}
	s.Results = results
	s.Entities = entities
	return s
}

// indexOf returns the position of the first occurrence of id, or -1.
func indexOf(ids []ID, id ID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// mergeMeta applies SUCCESS meta: an explicit null/false clears the slice
// meta, otherwise the action meta is shallow-merged over it.
func mergeMeta(current Meta, a Action) Meta {
	if a.ClearMeta {
		return Meta{}
	}
	if len(a.Meta) == 0 {
		return current
	}
	merged := make(Meta, len(current)+len(a.Meta))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range a.Meta {
		merged[k] = v
	}
	return merged
}
