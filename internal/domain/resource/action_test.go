package resource_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    resource.Type
		wantErr error
	}{
		{
			in:   "USERS/FETCH/START",
			want: resource.Type{Resource: "USERS", Domain: resource.DomainFetch, Method: resource.MethodStart},
		},
		{
			in:   "users/CHANGESET/MERGE",
			want: resource.Type{Resource: "users", Domain: resource.DomainChangeset, Method: resource.MethodMerge},
		},
		{
			in:   "USERS/RESOURCE/ANYTHING",
			want: resource.Type{Resource: "USERS", Domain: resource.DomainResource, Method: "ANYTHING"},
		},
		{in: "USERS/FETCH", wantErr: resource.ErrMalformedType},
		{in: "USERS/FETCH/START/EXTRA", wantErr: resource.ErrMalformedType},
		{in: "USERS//START", wantErr: resource.ErrMalformedType},
		{in: "", wantErr: resource.ErrMalformedType},
		{in: "USERS/FETC/START", wantErr: resource.ErrUnknownDomain},
		{in: "USERS/fetch/START", wantErr: resource.ErrUnknownDomain},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := resource.ParseType(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestDomain_Operation(t *testing.T) {
	t.Parallel()

	op, ok := resource.DomainDestroy.Operation()
	assert.True(t, ok)
	assert.Equal(t, resource.OpDestroy, op)

	_, ok = resource.DomainChangeset.Operation()
	assert.False(t, ok)

	for _, d := range []resource.Domain{"fetch", "Create", "uPDATE", "destroy"} {
		_, ok := d.Operation()
		assert.False(t, ok, "domain %q", d)
		assert.False(t, d.IsValid(), "domain %q", d)
	}

	for _, op := range resource.Operations {
		got, ok := op.Domain().Operation()
		assert.True(t, ok)
		assert.Equal(t, op, got)
	}
}

func TestMeta_Form(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", resource.Meta(nil).Form())
	assert.Equal(t, "default", resource.Meta{"form": ""}.Form())
	assert.Equal(t, "default", resource.Meta{"form": 3}.Form())
	assert.Equal(t, "signup", resource.Meta{"form": "signup"}.Form())
}

func TestAction_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantMeta  resource.Meta
		wantClear bool
	}{
		{name: "meta absent", body: `{"type":"USERS/FETCH/SUCCESS","payload":[{"id":1}]}`},
		{name: "meta null", body: `{"type":"USERS/FETCH/SUCCESS","payload":[{"id":1}],"meta":null}`, wantClear: true},
		{name: "meta false", body: `{"type":"USERS/FETCH/SUCCESS","payload":[{"id":1}],"meta":false}`, wantClear: true},
		{
			name:     "meta object",
			body:     `{"type":"USERS/FETCH/SUCCESS","payload":[{"id":1}],"meta":{"page":2}}`,
			wantMeta: resource.Meta{"page": json.Number("2")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var a resource.Action
			require.NoError(t, json.Unmarshal([]byte(tt.body), &a))

			assert.Equal(t, resource.Type{Resource: "USERS", Domain: resource.DomainFetch, Method: resource.MethodSuccess}, a.Type)
			assert.Equal(t, []any{map[string]any{"id": json.Number("1")}}, a.Payload)
			assert.Equal(t, tt.wantMeta, a.Meta)
			assert.Equal(t, tt.wantClear, a.ClearMeta)
		})
	}
}

func TestAction_UnmarshalJSONErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"malformed type", `{"type":"USERS/FETCH"}`},
		{"unknown domain", `{"type":"USERS/LIST/START"}`},
		{"meta not object", `{"type":"USERS/FETCH/START","meta":"form"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var a resource.Action
			err := json.Unmarshal([]byte(tt.body), &a)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAction_JSONRoundTripThroughReducer(t *testing.T) {
	t.Parallel()

	r := newUsers(t, resource.Options{})
	var a resource.Action
	require.NoError(t, json.Unmarshal([]byte(`{"type":"USERS/FETCH/SUCCESS","payload":[{"id":1,"name":"A"}]}`), &a))

	s := r.Reduce(r.Initial(), a)

	e, id, ok := s.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, resource.ID(int64(1)), id)
	assert.Equal(t, "A", e["name"])
}

func TestAction_UnmarshalJSONKeepsLargeIDsDistinct(t *testing.T) {
	t.Parallel()

	// Both ids round to the same float64.
	r := newUsers(t, resource.Options{})
	var a resource.Action
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "USERS/FETCH/SUCCESS",
		"payload": [{"id": 9007199254740993, "name": "A"}, {"id": 9007199254740992, "name": "B"}],
		"meta": {"cursor": 9007199254740993}
	}`), &a))

	s := r.Reduce(r.Initial(), a)

	assert.Equal(t, []resource.ID{int64(9007199254740993), int64(9007199254740992)}, s.Results)
	require.Len(t, s.Entities, 2)
	assert.Equal(t, "A", s.Entities[int64(9007199254740993)]["name"])
	assert.Equal(t, "B", s.Entities[int64(9007199254740992)]["name"])
	assert.Equal(t, json.Number("9007199254740993"), s.Meta["cursor"])

	e, id, ok := s.Lookup("9007199254740993")
	require.True(t, ok)
	assert.Equal(t, resource.ID(int64(9007199254740993)), id)
	assert.Equal(t, "A", e["name"])
}

func TestAction_MarshalJSON(t *testing.T) {
	t.Parallel()

	cleared := resource.Success("users", resource.OpFetch, []any{}, nil)
	cleared.ClearMeta = true

	tests := []struct {
		name   string
		action resource.Action
		want   string
	}{
		{"no meta", resource.Start("users", resource.OpFetch, nil), `{"type":"USERS/FETCH/START"}`},
		{"cleared meta", cleared, `{"type":"USERS/FETCH/SUCCESS","payload":[],"meta":null}`},
		{"form meta", resource.ResetChanges("users", "edit"), `{"type":"USERS/CHANGESET/RESET","meta":{"form":"edit"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := json.Marshal(tt.action)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestTypesFor(t *testing.T) {
	t.Parallel()

	types := resource.TypesFor("users")

	assert.Len(t, types, 21)
	assert.Contains(t, types, "USERS/FETCH/START")
	assert.Contains(t, types, "USERS/DESTROY/RESET")
	assert.Contains(t, types, "USERS/CHANGESET/REMOVE")
	assert.Contains(t, types, "USERS/META/RESET")
	assert.Contains(t, types, "USERS/RESOURCE/RESET")
	for _, s := range types {
		_, err := resource.ParseType(s)
		assert.NoError(t, err, s)
	}
}

func TestActionCreators_UppercaseResource(t *testing.T) {
	t.Parallel()

	a := resource.RemoveChanges("users", "edit", "name", "email")

	assert.Equal(t, "USERS/CHANGESET/REMOVE", a.Type.String())
	assert.Equal(t, []string{"name", "email"}, a.Payload)
	assert.Equal(t, "edit", a.Meta.Form())
}
