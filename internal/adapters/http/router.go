// Package http is the inbound HTTP adapter: the chi route table and the
// server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/dto"
	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/handlers"
)

// NewRouter builds the route table. middlewares wrap every route in the
// order given. Unmatched paths and methods answer with problem documents.
func NewRouter(
	actions *handlers.ActionHandler,
	resources *handlers.ResourceHandler,
	health *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatus(w, req, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteStatus(w, req, http.StatusMethodNotAllowed)
	})

	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/actions", actions.Dispatch)
		r.Post("/actions/batch", actions.DispatchBatch)

		r.Get("/resources", resources.ListResources)
		r.Post("/resources/fetch", resources.RefreshAll)

		const slice = "/resources/{name}"
		r.Get(slice, resources.GetState)
		r.Get(slice+"/types", resources.GetTypes)
		r.Post(slice+"/fetch", resources.Fetch)

		r.Get(slice+"/entities", resources.ListEntities)
		r.Post(slice+"/entities", resources.CreateEntity)
		r.Get(slice+"/entities/{id}", resources.GetEntity)
		r.Patch(slice+"/entities/{id}", resources.UpdateEntity)
		r.Delete(slice+"/entities/{id}", resources.DeleteEntity)

		r.Patch(slice+"/changeset/{form}", resources.MergeChanges)
		r.Delete(slice+"/changeset/{form}", resources.ResetChanges)
		r.Post(slice+"/changeset/{form}/submit", resources.Submit)
	})

	return r
}
