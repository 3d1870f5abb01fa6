package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/dto"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
)

// ResourceHandler handles HTTP requests that read resource slices and run
// request lifecycles against the downstream source.
type ResourceHandler struct {
	svc ports.ResourceService
}

// NewResourceHandler creates a new ResourceHandler with the given service port.
func NewResourceHandler(svc ports.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// ListResources handles GET /api/v1/resources.
func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToResourceListResponse(h.svc.Resources(r.Context())))
}

// RefreshAll handles POST /api/v1/resources/fetch. A partial failure answers
// 502 with the per-resource errors in the body.
func (h *ResourceHandler) RefreshAll(w http.ResponseWriter, r *http.Request) {
	failures := h.svc.FetchAll(r.Context())

	status := http.StatusOK
	if len(failures) > 0 {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, dto.ToRefreshResponse(failures))
}

// GetState handles GET /api/v1/resources/{name}.
func (h *ResourceHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.State(r.Context(), nameParam(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeState(w, r, http.StatusOK, state)
}

// GetTypes handles GET /api/v1/resources/{name}/types.
func (h *ResourceHandler) GetTypes(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	if _, err := h.svc.State(r.Context(), name); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TypesResponse{
		Resource: name,
		Types:    resource.TypesFor(name),
	})
}

// Fetch handles POST /api/v1/resources/{name}/fetch.
func (h *ResourceHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Fetch(r.Context(), nameParam(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeState(w, r, http.StatusOK, state)
}

// ListEntities handles GET /api/v1/resources/{name}/entities.
// The optional where query parameter filters entities by expression.
func (h *ResourceHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.svc.Query(r.Context(), nameParam(r), r.URL.Query().Get("where"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToEntityListResponse(entities))
}

// GetEntity handles GET /api/v1/resources/{name}/entities/{id}.
func (h *ResourceHandler) GetEntity(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	state, err := h.svc.State(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, _, ok := state.Lookup(chi.URLParam(r, "id"))
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}

	writeJSON(w, http.StatusOK, e)
}

// CreateEntity handles POST /api/v1/resources/{name}/entities.
func (h *ResourceHandler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	var req dto.EntityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.svc.Create(r.Context(), nameParam(r), req.ToFields())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeState(w, r, http.StatusCreated, state)
}

// UpdateEntity handles PATCH /api/v1/resources/{name}/entities/{id}.
func (h *ResourceHandler) UpdateEntity(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	id, err := resolveID(r.Context(), h.svc, name, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.EntityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state, err := h.svc.Update(r.Context(), name, id, req.ToFields())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeState(w, r, http.StatusOK, state)
}

// DeleteEntity handles DELETE /api/v1/resources/{name}/entities/{id}.
func (h *ResourceHandler) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	id, err := resolveID(r.Context(), h.svc, name, chi.URLParam(r, "id"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.svc.Destroy(r.Context(), name, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeState(w, r, http.StatusOK, state)
}

// MergeChanges handles PATCH /api/v1/resources/{name}/changeset/{form}.
func (h *ResourceHandler) MergeChanges(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	name := nameParam(r)
	h.dispatchAndRespond(w, r, name, resource.MergeChanges(name, chi.URLParam(r, "form"), req.Fields))
}

// ResetChanges handles DELETE /api/v1/resources/{name}/changeset/{form}.
func (h *ResourceHandler) ResetChanges(w http.ResponseWriter, r *http.Request) {
	name := nameParam(r)
	h.dispatchAndRespond(w, r, name, resource.ResetChanges(name, chi.URLParam(r, "form")))
}

// Submit handles POST /api/v1/resources/{name}/changeset/{form}/submit.
// The body is optional; an id in it turns the submission into an update.
func (h *ResourceHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitRequest
	if !decodeOptionalJSONBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.svc.Submit(r.Context(), nameParam(r), chi.URLParam(r, "form"), req.EntityID())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeState(w, r, http.StatusOK, state)
}

func (h *ResourceHandler) dispatchAndRespond(w http.ResponseWriter, r *http.Request, name string, a resource.Action) {
	if err := h.svc.Dispatch(r.Context(), a); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.svc.State(r.Context(), name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeState(w, r, http.StatusOK, state)
}
