package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/dto"
	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/handlers"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
	"github.com/HumzahChoudry/redux-api-resources/mocks"
)

func newResourceHandler(t *testing.T) (*handlers.ResourceHandler, *mocks.MockResourceService) {
	t.Helper()
	svc := mocks.NewMockResourceService(t)
	return handlers.NewResourceHandler(svc), svc
}

// --- ListResources / RefreshAll ---

func TestListResources(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().Resources(mock.Anything).Return([]ports.ResourceSummary{
		{Name: "TODOS", Count: 3, Forms: []string{"default"}},
		{Name: "PROJECTS", Busy: true},
	})

	rec := httptest.NewRecorder()
	h.ListResources(rec, httptest.NewRequest(http.MethodGet, "/api/v1/resources", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ResourceListResponse](t, rec)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, "TODOS", resp.Resources[0].Name)
	assert.True(t, resp.Resources[1].Busy)
}

func TestRefreshAll(t *testing.T) {
	t.Parallel()

	t.Run("all succeed", func(t *testing.T) {
		t.Parallel()
		h, svc := newResourceHandler(t)
		svc.EXPECT().FetchAll(mock.Anything).Return(map[string]error{})

		rec := httptest.NewRecorder()
		h.RefreshAll(rec, httptest.NewRequest(http.MethodPost, "/api/v1/resources/fetch", nil))

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("partial failure", func(t *testing.T) {
		t.Parallel()
		h, svc := newResourceHandler(t)
		svc.EXPECT().FetchAll(mock.Anything).Return(map[string]error{"TODOS": errors.New("upstream down")})

		rec := httptest.NewRecorder()
		h.RefreshAll(rec, httptest.NewRequest(http.MethodPost, "/api/v1/resources/fetch", nil))

		requireStatus(t, rec, http.StatusBadGateway)
		resp := decodeJSON[dto.RefreshResponse](t, rec)
		assert.Equal(t, []string{"TODOS"}, resp.Failed)
		assert.Equal(t, "upstream down", resp.Failures["TODOS"])
	})
}

// --- GetState / GetTypes / Fetch ---

func TestGetState(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().State(mock.Anything, "todos").Return(todosState(t, map[string]any{"id": 1, "title": "a"}), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/resources/todos", nil),
		map[string]string{"name": "todos"})
	h.GetState(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, []any{float64(1)}, resp["results"])
	assert.Contains(t, resp, "changeset")
	assert.Contains(t, resp, "status")
}

func TestGetState_UnknownResource(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().State(mock.Anything, "users").Return(resource.State{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/resources/users", nil),
		map[string]string{"name": "users"})
	h.GetState(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestGetState_CollidingIDsIsConflict(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().State(mock.Anything, "todos").Return(todosState(t,
		map[string]any{"id": 1, "title": "number"},
		map[string]any{"id": "1", "title": "string"},
	), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/resources/todos", nil),
		map[string]string{"name": "todos"})
	h.GetState(rec, req)

	requireStatus(t, rec, http.StatusConflict)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestGetTypes(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().State(mock.Anything, "todos").Return(todosState(t), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/resources/todos/types", nil),
		map[string]string{"name": "todos"})
	h.GetTypes(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TypesResponse](t, rec)
	assert.Len(t, resp.Types, 21)
	assert.Contains(t, resp.Types, "TODOS/CHANGESET/MERGE")
}

func TestFetch_SourceUnavailable(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().Fetch(mock.Anything, "todos").Return(todosState(t), domain.ErrUnavailable)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/resources/todos/fetch", nil),
		map[string]string{"name": "todos"})
	h.Fetch(rec, req)

	requireStatus(t, rec, http.StatusBadGateway)
}

// --- Entities ---

func TestListEntities_PassesWhere(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().Query(mock.Anything, "todos", "done == true").
		Return([]resource.Entity{{"id": 2, "done": true}}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/resources/todos/entities?where=done+%3D%3D+true", nil),
		map[string]string{"name": "todos"})
	h.ListEntities(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.EntityListResponse](t, rec)
	assert.Equal(t, 1, resp.Count)
}

func TestListEntities_InvalidWhere(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().Query(mock.Anything, "todos", "done ==").
		Return(nil, &domain.ValidationError{Fields: map[string]string{"where": "unexpected end"}})

	rec := httptest.NewRecorder()
	req := withChiParams(
		httptest.NewRequest(http.MethodGet, "/api/v1/resources/todos/entities?where=done+%3D%3D", nil),
		map[string]string{"name": "todos"})
	h.ListEntities(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetEntity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"numeric id as string", "1", http.StatusOK},
		{"missing entity", "9", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newResourceHandler(t)
			svc.EXPECT().State(mock.Anything, "todos").Return(todosState(t, map[string]any{"id": 1, "title": "a"}), nil)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/resources/todos/entities/"+tt.id, nil),
				map[string]string{"name": "todos", "id": tt.id})
			h.GetEntity(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestCreateEntity(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().Create(mock.Anything, "todos", resource.Fields{"title": "new"}).
		Return(todosState(t, map[string]any{"id": 1, "title": "new"}), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/resources/todos/entities",
		jsonBody(t, map[string]any{"title": "new"})), map[string]string{"name": "todos"})
	h.CreateEntity(rec, req)

	requireStatus(t, rec, http.StatusCreated)
}

func TestCreateEntity_EmptyBody(t *testing.T) {
	t.Parallel()
	h, _ := newResourceHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/resources/todos/entities",
		strings.NewReader(`{}`)), map[string]string{"name": "todos"})
	h.CreateEntity(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateEntity_ResolvesStoredID(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	state := todosState(t, map[string]any{"id": 7, "title": "old"})
	svc.EXPECT().State(mock.Anything, "todos").Return(state, nil)
	svc.EXPECT().Update(mock.Anything, "todos", resource.ID(int64(7)), resource.Fields{"title": "new"}).
		Return(state, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/api/v1/resources/todos/entities/7",
		jsonBody(t, map[string]any{"title": "new"})), map[string]string{"name": "todos", "id": "7"})
	h.UpdateEntity(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteEntity_UnknownIDPassedThrough(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	state := todosState(t)
	svc.EXPECT().State(mock.Anything, "todos").Return(state, nil)
	svc.EXPECT().Destroy(mock.Anything, "todos", resource.ID("abc")).Return(state, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/resources/todos/entities/abc", nil),
		map[string]string{"name": "todos", "id": "abc"})
	h.DeleteEntity(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteEntity_UnknownResource(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().State(mock.Anything, "users").Return(resource.State{}, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/resources/users/entities/1", nil),
		map[string]string{"name": "users", "id": "1"})
	h.DeleteEntity(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Changeset ---

func TestMergeChanges(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(a resource.Action) bool {
		fields, ok := a.Payload.(resource.Fields)
		return a.Type.String() == "TODOS/CHANGESET/MERGE" && a.Meta.Form() == "edit" && ok && fields["title"] == "draft"
	})).Return(nil)
	svc.EXPECT().State(mock.Anything, "todos").Return(todosState(t), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPatch, "/api/v1/resources/todos/changeset/edit",
		jsonBody(t, map[string]any{"fields": map[string]any{"title": "draft"}})),
		map[string]string{"name": "todos", "form": "edit"})
	h.MergeChanges(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestResetChanges(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().Dispatch(mock.Anything, actionOfType("TODOS/CHANGESET/RESET")).Return(nil)
	svc.EXPECT().State(mock.Anything, "todos").Return(todosState(t), nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodDelete, "/api/v1/resources/todos/changeset/default", nil),
		map[string]string{"name": "todos", "form": "default"})
	h.ResetChanges(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		wantID resource.ID
	}{
		{name: "no body creates", body: ""},
		{name: "id updates", body: `{"id":3}`, wantID: int64(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newResourceHandler(t)

			svc.EXPECT().Submit(mock.Anything, "todos", "edit", tt.wantID).Return(todosState(t), nil)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/resources/todos/changeset/edit/submit",
				strings.NewReader(tt.body)), map[string]string{"name": "todos", "form": "edit"})
			h.Submit(rec, req)

			requireStatus(t, rec, http.StatusOK)
		})
	}
}

func TestSubmit_InvalidID(t *testing.T) {
	t.Parallel()
	h, _ := newResourceHandler(t)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/resources/todos/changeset/edit/submit",
		strings.NewReader(`{"id":false}`)), map[string]string{"name": "todos", "form": "edit"})
	h.Submit(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestSubmit_EmptyForm(t *testing.T) {
	t.Parallel()
	h, svc := newResourceHandler(t)

	svc.EXPECT().Submit(mock.Anything, "todos", "edit", nil).
		Return(todosState(t), &domain.ValidationError{Fields: map[string]string{"changeset": "form \"edit\" has no changes"}})

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodPost, "/api/v1/resources/todos/changeset/edit/submit", nil),
		map[string]string{"name": "todos", "form": "edit"})
	h.Submit(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
