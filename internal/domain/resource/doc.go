// Package resource normalizes CRUD resource state driven by tagged actions.
//
// Each resource type owns one State slice: an ordered, deduplicated list of
// identifiers, an identifier-to-entity map, request status per operation
// (fetch, create, update, destroy), free-form response meta and per-form
// changeset buffers. A Reducer maps (State, Action) to the next State and
// performs no I/O.
//
// Action types follow the RESOURCE/DOMAIN/METHOD grammar:
//
//	USERS/FETCH/START        status.fetch -> in flight
//	USERS/FETCH/SUCCESS      status.fetch -> succeeded, payload merged
//	USERS/DESTROY/SUCCESS    payload identifiers removed
//	USERS/CHANGESET/MERGE    meta.form buffer updated
//	USERS/META/RESET         meta cleared
//	USERS/RESOURCE/RESET     whole slice back to its initial state
//
// Typical use:
//
//	users, err := resource.New("users", resource.Options{OnUpdate: resource.MergeEntity})
//	state := users.Initial()
//	state = users.Reduce(state, resource.Start("users", resource.OpFetch, nil))
//	state = users.Reduce(state, resource.Success("users", resource.OpFetch, payload, nil))
package resource
