package handlers

import (
	"net/http"

	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/dto"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
)

// ActionHandler accepts raw actions and applies them to the store.
type ActionHandler struct {
	svc ports.ResourceService
}

// NewActionHandler creates a new ActionHandler with the given service port.
func NewActionHandler(svc ports.ResourceService) *ActionHandler {
	return &ActionHandler{svc: svc}
}

// Dispatch handles POST /api/v1/actions.
func (h *ActionHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	a, ok := decodeAction(w, r)
	if !ok {
		return
	}

	if err := h.svc.Dispatch(r.Context(), a); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	state, err := h.svc.State(r.Context(), a.Type.Resource)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ActionResponse{
		Type:     a.Type.String(),
		Resource: a.Type.Resource,
		State:    state,
	})
}

// DispatchBatch handles POST /api/v1/actions/batch.
func (h *ActionHandler) DispatchBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	actions, err := req.ToActions()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DispatchBatch(r.Context(), actions); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BatchResponse{Count: len(actions)})
}
