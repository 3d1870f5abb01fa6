// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"sort"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
)

// ActionResponse is returned after a single action was applied. State is
// the slice of the resource the action was routed to.
type ActionResponse struct {
	Type     string         `json:"type"`
	Resource string         `json:"resource"`
	State    resource.State `json:"state"`
}

// BatchResponse is returned after a batch of actions was applied.
type BatchResponse struct {
	Count int `json:"count"`
}

// ResourceSummaryResponse describes one registered resource.
type ResourceSummaryResponse struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Busy  bool     `json:"busy"`
	Forms []string `json:"forms"`
}

// ResourceListResponse lists every registered resource.
type ResourceListResponse struct {
	Resources []ResourceSummaryResponse `json:"resources"`
	Count     int                       `json:"count"`
}

// ToResourceListResponse converts service summaries to the HTTP list DTO.
func ToResourceListResponse(summaries []ports.ResourceSummary) ResourceListResponse {
	items := make([]ResourceSummaryResponse, len(summaries))
	for i, s := range summaries {
		forms := s.Forms
		if forms == nil {
			forms = []string{}
		}
		items[i] = ResourceSummaryResponse{
			Name:  s.Name,
			Count: s.Count,
			Busy:  s.Busy,
			Forms: forms,
		}
	}
	return ResourceListResponse{
		Resources: items,
		Count:     len(items),
	}
}

// EntityListResponse lists entities in result order.
type EntityListResponse struct {
	Entities []resource.Entity `json:"entities"`
	Count    int               `json:"count"`
}

// ToEntityListResponse wraps entities, substituting an empty list for nil so
// the JSON output is always an array.
func ToEntityListResponse(entities []resource.Entity) EntityListResponse {
	if entities == nil {
		entities = []resource.Entity{}
	}
	return EntityListResponse{
		Entities: entities,
		Count:    len(entities),
	}
}

// RefreshResponse reports the outcome of refreshing every resource.
// Failures maps resource names to error messages.
type RefreshResponse struct {
	Failures map[string]string `json:"failures"`
	Failed   []string          `json:"failed"`
}

// ToRefreshResponse converts the per-resource failures of a refresh.
func ToRefreshResponse(failures map[string]error) RefreshResponse {
	resp := RefreshResponse{
		Failures: make(map[string]string, len(failures)),
		Failed:   make([]string, 0, len(failures)),
	}
	for name, err := range failures {
		resp.Failures[name] = err.Error()
		resp.Failed = append(resp.Failed, name)
	}
	sort.Strings(resp.Failed)
	return resp
}

// TypesResponse lists every action type a resource responds to.
type TypesResponse struct {
	Resource string   `json:"resource"`
	Types    []string `json:"types"`
}
