package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"

	// maxBatchActions bounds the number of actions accepted in one batch.
	maxBatchActions = 500
)

// BatchRequest represents the JSON body of POST /api/v1/actions/batch.
// Actions are kept raw so that each one is decoded and reported on its own.
type BatchRequest struct {
	Actions []json.RawMessage `json:"actions"`
}

// Validate checks that the batch is present and within bounds.
func (r *BatchRequest) Validate() error {
	switch {
	case len(r.Actions) == 0:
		return domain.Invalid("actions", msgMustNotEmpty)
	case len(r.Actions) > maxBatchActions:
		return domain.Invalid("actions", fmt.Sprintf("must contain at most %d actions", maxBatchActions))
	}
	return nil
}

// ToActions decodes every raw action. Failures are collected per index as
// actions[i] so the caller sees all of them at once.
func (r *BatchRequest) ToActions() ([]resource.Action, error) {
	actions := make([]resource.Action, len(r.Actions))
	var verr domain.ValidationError

	for i, raw := range r.Actions {
		if err := json.Unmarshal(raw, &actions[i]); err != nil {
			verr.Add(fmt.Sprintf("actions[%d]", i), err.Error())
		}
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}
	return actions, nil
}

// EntityRequest represents the JSON body of the entity create and update
// endpoints: a flat object of attribute values.
type EntityRequest map[string]any

// Validate checks that at least one attribute is present and that attribute
// names are not blank.
func (r *EntityRequest) Validate() error {
	if len(*r) == 0 {
		return domain.Invalid("body", msgMustNotEmpty)
	}
	for name := range *r {
		if strings.TrimSpace(name) == "" {
			return domain.Invalid("body", "attribute names must not be blank")
		}
	}
	return nil
}

// ToFields converts the request to a resource field map.
func (r *EntityRequest) ToFields() resource.Fields {
	return resource.Fields(*r)
}

// SubmitRequest represents the optional JSON body of the changeset submit
// endpoint. A missing or null id submits the form as a create.
type SubmitRequest struct {
	ID any `json:"id,omitempty"`
}

// Validate checks that a present id is a usable identifier.
func (r *SubmitRequest) Validate() error {
	if r.ID == nil {
		return nil
	}
	if _, ok := resource.NormalizeID(r.ID); !ok {
		return domain.Invalid("id", "must be a non-empty string or non-zero number")
	}
	return nil
}

// EntityID returns the normalized identifier, or nil when the request
// carries none.
func (r *SubmitRequest) EntityID() resource.ID {
	id, ok := resource.NormalizeID(r.ID)
	if !ok {
		return nil
	}
	return id
}

// ChangesRequest represents the JSON body of the changeset merge endpoint.
type ChangesRequest struct {
	Fields map[string]any `json:"fields"`
}

// Validate checks that the request carries at least one field.
func (r *ChangesRequest) Validate() error {
	if len(r.Fields) == 0 {
		return domain.Invalid("fields", msgRequired)
	}
	return nil
}
