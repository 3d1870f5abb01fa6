package resource

// reduceChangeset applies a CHANGESET action to the buffer of the form named
// in the action meta. Other forms are shared, never copied or modified.
func (r *Reducer) reduceChangeset(s State, a Action) State {
	form := a.Meta.Form()

	switch a.Type.Method {
	case MethodMerge:
		return s.withForm(form, r.opts.ChangesetReducer(s.Changeset[form], asFields(a.Payload)))

	case MethodRemove:
		existing, ok := s.Changeset[form]
		if !ok {
			return s
		}
		buffer := make(Fields, len(existing))
		for k, v := range existing {
			buffer[k] = v
		}
		for _, name := range fieldNames(a.Payload) {
			delete(buffer, name)
		}
		return s.withForm(form, buffer)

	case MethodReset:
		return s.withForm(form, Fields{})

	default:
		return s
	}
}

// withForm returns a copy of s with one changeset form replaced.
func (s State) withForm(form string, buffer Fields) State {
	changeset := make(map[string]Fields, len(s.Changeset)+1)
	for k, v := range s.Changeset {
		changeset[k] = v
	}
	changeset[form] = buffer
	s.Changeset = changeset
	return s
}

// fieldNames reads a REMOVE payload: a single field name or a list of them.
func fieldNames(payload any) []string {
	switch p := payload.(type) {
	case string:
		return []string{p}
	case []string:
		return p
	}

	list, ok := plain(payload).([]any)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(list))
	for _, v := range list {
		if name, ok := v.(string); ok {
			names = append(names, name)
		}
	}
	return names
}
