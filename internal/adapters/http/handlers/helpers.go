package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/dto"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
)

// resolveID maps the raw {id} path parameter to the identifier the slice
// stores, so that "7" addresses the entity keyed by the number 7. An id the
// slice does not hold is passed through as a string.
func resolveID(ctx context.Context, svc ports.ResourceService, name, raw string) (resource.ID, error) {
	if raw == "" {
		return nil, domain.Invalid("path.id", "is required")
	}

	state, err := svc.State(ctx, name)
	if err != nil {
		return nil, err
	}
	if _, id, ok := state.Lookup(raw); ok {
		return id, nil
	}
	return raw, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeState writes a slice state. The state is encoded before the status
// line so an unrenderable state, such as one holding both 1 and "1" as
// identifiers, becomes an error response instead of a truncated body.
func writeState(w http.ResponseWriter, r *http.Request, status int, state resource.State) {
	body, err := json.Marshal(state)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("failed to write response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := resource.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.Invalid("body", "invalid JSON"))
		return false
	}
	return true
}

// decodeOptionalJSONBody is decodeJSONBody for endpoints whose body may be
// omitted entirely. An empty body leaves dst untouched.
func decodeOptionalJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	err := resource.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	dto.WriteErrorResponse(w, r, domain.Invalid("body", "invalid JSON"))
	return false
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

// decodeAction decodes a single action body. Errors the action decoder
// reports that are not already validation failures are reported against the
// body so that every malformed action yields a 400.
func decodeAction(w http.ResponseWriter, r *http.Request) (resource.Action, bool) {
	var raw json.RawMessage
	if !decodeJSONBody(w, r, &raw) {
		return resource.Action{}, false
	}

	var a resource.Action
	if err := json.Unmarshal(raw, &a); err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			err = domain.Invalid("body", err.Error())
		}
		dto.WriteErrorResponse(w, r, err)
		return resource.Action{}, false
	}
	return a, true
}

// nameParam returns the {name} path parameter.
func nameParam(r *http.Request) string {
	return chi.URLParam(r, "name")
}
