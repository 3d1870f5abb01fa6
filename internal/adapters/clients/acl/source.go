package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/config"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/httpclient"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ResourceSource = (*Source)(nil)
	_ ports.HealthChecker  = (*Source)(nil)
)

// Statuses accepted per operation.
var (
	fetchOK   = []int{http.StatusOK}
	createOK  = []int{http.StatusOK, http.StatusCreated}
	updateOK  = []int{http.StatusOK}
	destroyOK = []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent}
)

// ErrNoPath is returned for resources without a configured collection path.
var ErrNoPath = fmt.Errorf("acl: resource has no downstream path: %w", domain.ErrNotFound)

// Source is the outbound adapter for the downstream REST API. It implements
// [ports.ResourceSource] on top of a plain collection convention:
//
//	Fetch    GET    {path}       200
//	Create   POST   {path}       200, 201
//	Update   PATCH  {path}/{id}  200
//	Destroy  DELETE {path}/{id}  200, 202, 204
//
// Response bodies are decoded into generic JSON values and handed to the
// reducers as-is; envelope unwrapping is configured on the reducer. HTTP
// errors are mapped to domain errors by [TranslateHTTPError].
type Source struct {
	req    *Requester
	paths  map[string]string
	logger *slog.Logger
}

// NewSource creates a Source that sends requests through the given
// [httpclient.Client]. Each resource with a non-empty Path is reachable;
// names are matched case-insensitively.
func NewSource(client *httpclient.Client, resources []config.ResourceConfig, logger *slog.Logger) *Source {
	paths := make(map[string]string, len(resources))
	for _, rc := range resources {
		if rc.Path == "" {
			continue
		}
		paths[strings.ToUpper(rc.Name)] = strings.TrimSuffix(rc.Path, "/")
	}
	return &Source{
		req:    NewRequester(client, logger),
		paths:  paths,
		logger: logger,
	}
}

// Supports reports whether name has a configured collection path.
func (s *Source) Supports(name string) bool {
	_, ok := s.paths[strings.ToUpper(name)]
	return ok
}

// Fetch returns the decoded collection body of GET {path}.
func (s *Source) Fetch(ctx context.Context, name string) (any, error) {
	path, err := s.collection(name)
	if err != nil {
		return nil, err
	}

	var body any
	if err := s.req.Do(ctx, Call{Method: http.MethodGet, Path: path, Accept: fetchOK, Out: &body}); err != nil {
		return nil, err
	}
	return body, nil
}

// Create sends POST {path} and returns the decoded created entity.
func (s *Source) Create(ctx context.Context, name string, fields resource.Fields) (any, error) {
	path, err := s.collection(name)
	if err != nil {
		return nil, err
	}

	var body any
	if err := s.req.Do(ctx, Call{Method: http.MethodPost, Path: path, Body: fields, Accept: createOK, Out: &body}); err != nil {
		return nil, err
	}
	return body, nil
}

// Update sends PATCH {path}/{id} and returns the decoded updated entity.
func (s *Source) Update(ctx context.Context, name string, id resource.ID, fields resource.Fields) (any, error) {
	path, err := s.member(name, id)
	if err != nil {
		return nil, err
	}

	var body any
	if err := s.req.Do(ctx, Call{Method: http.MethodPatch, Path: path, Body: fields, Accept: updateOK, Out: &body}); err != nil {
		return nil, err
	}
	return body, nil
}

// Destroy sends DELETE {path}/{id}.
func (s *Source) Destroy(ctx context.Context, name string, id resource.ID) error {
	path, err := s.member(name, id)
	if err != nil {
		return err
	}
	return s.req.Do(ctx, Call{Method: http.MethodDelete, Path: path, Accept: destroyOK})
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name of the underlying
// [httpclient.Client].
func (s *Source) Name() string {
	return s.req.Name()
}

// HealthCheck reports the downstream API's circuit breaker state. It is
// registered for visibility only: the store keeps serving the last known
// state while the downstream fails.
func (s *Source) HealthCheck(ctx context.Context) error {
	return s.req.HealthCheck(ctx)
}

func (s *Source) collection(name string) (string, error) {
	path, ok := s.paths[strings.ToUpper(name)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoPath, name)
	}
	return path, nil
}

func (s *Source) member(name string, id resource.ID) (string, error) {
	path, err := s.collection(name)
	if err != nil {
		return "", err
	}
	key, ok := resource.NormalizeID(id)
	if !ok {
		return "", domain.Invalid("id", "must be a non-empty string or non-zero number")
	}
	return path + "/" + url.PathEscape(fmt.Sprint(key)), nil
}
