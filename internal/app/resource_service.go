// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/HumzahChoudry/redux-api-resources/internal/app/fanout"
	"github.com/HumzahChoudry/redux-api-resources/internal/app/query"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
)

// Compile-time check that ResourceService implements ports.ResourceService.
var _ ports.ResourceService = (*ResourceService)(nil)

// ErrNoSource is returned by the lifecycle methods for resources that are
// not backed by the downstream source.
var ErrNoSource = fmt.Errorf("app: resource has no downstream source: %w", domain.ErrNotFound)

// SyncedAtKey is the meta key set on every successful lifecycle.
const SyncedAtKey = "synced_at"

// defaultMaxWorkers bounds FetchAll when the configured value is not positive.
const defaultMaxWorkers = 4

// ResourceService implements ports.ResourceService. It drives the request
// lifecycle of each operation through the store (START, then SUCCESS or
// FAILURE) around a call to the downstream source. All state lives in the
// store; the service holds none.
type ResourceService struct {
	store      ports.Store
	source     ports.ResourceSource
	filter     *query.Filter
	fetches    singleflight.Group
	maxWorkers int
	now        func() time.Time
	logger     *slog.Logger
}

// NewResourceService creates a ResourceService. maxWorkers bounds the
// concurrency of FetchAll. A nil logger discards output.
func NewResourceService(store ports.Store, source ports.ResourceSource, maxWorkers int, logger *slog.Logger) *ResourceService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if maxWorkers < 1 {
		maxWorkers = defaultMaxWorkers
	}
	return &ResourceService{
		store:      store,
		source:     source,
		filter:     query.NewFilter(),
		maxWorkers: maxWorkers,
		now:        time.Now,
		logger:     logger,
	}
}

// Dispatch applies a caller-supplied action to the store.
func (s *ResourceService) Dispatch(ctx context.Context, action resource.Action) error {
	if err := s.store.Dispatch(ctx, action); err != nil {
		s.logger.WarnContext(ctx, "action rejected",
			slog.String("operation", "Dispatch"),
			slog.String("type", action.Type.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// DispatchBatch applies a batch of actions atomically.
func (s *ResourceService) DispatchBatch(ctx context.Context, actions []resource.Action) error {
	if err := s.store.DispatchBatch(ctx, actions); err != nil {
		s.logger.WarnContext(ctx, "action batch rejected",
			slog.String("operation", "DispatchBatch"),
			slog.Int("count", len(actions)),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Resources summarizes every registered resource in registration order.
func (s *ResourceService) Resources(_ context.Context) []ports.ResourceSummary {
	names := s.store.Names()
	out := make([]ports.ResourceSummary, 0, len(names))
	for _, name := range names {
		st, err := s.store.State(name)
		if err != nil {
			continue
		}
		out = append(out, summarize(name, st))
	}
	return out
}

// State returns the slice for the named resource.
func (s *ResourceService) State(_ context.Context, name string) (resource.State, error) {
	return s.store.State(name)
}

// Query returns the slice's entities in result order, filtered by where.
func (s *ResourceService) Query(_ context.Context, name, where string) ([]resource.Entity, error) {
	st, err := s.store.State(name)
	if err != nil {
		return nil, err
	}
	return s.filter.Apply(st, where)
}

// Fetch runs the FETCH lifecycle. Concurrent fetches of one resource, such
// as a scheduled refresh racing a client request, share a single lifecycle
// and its result; the shared call runs under the first caller's context.
func (s *ResourceService) Fetch(ctx context.Context, name string) (resource.State, error) {
	v, err, shared := s.fetches.Do(strings.ToUpper(name), func() (any, error) {
		s.logger.InfoContext(ctx, "fetching resource", slog.String("resource", name))

		return s.run(ctx, name, resource.OpFetch, nil, func(ctx context.Context) (any, error) {
			return s.source.Fetch(ctx, name)
		})
	})
	if shared {
		s.logger.DebugContext(ctx, "joined in-flight fetch", slog.String("resource", name))
	}
	st, _ := v.(resource.State)
	return st, err
}

// FetchAll runs Fetch for every source-backed resource using at most
// maxWorkers concurrent calls. The returned map holds the failures only.
func (s *ResourceService) FetchAll(ctx context.Context) map[string]error {
	var names []string
	for _, name := range s.store.Names() {
		if s.source.Supports(name) {
			names = append(names, name)
		}
	}

	results := fanout.Run(ctx, s.maxWorkers, names, func(ctx context.Context, name string) (struct{}, error) {
		_, err := s.Fetch(ctx, name)
		return struct{}{}, err
	})
	return fanout.Errors(names, results)
}

// Create runs the CREATE lifecycle. The START payload is the submitted fields.
func (s *ResourceService) Create(ctx context.Context, name string, fields resource.Fields) (resource.State, error) {
	s.logger.InfoContext(ctx, "creating entity", slog.String("resource", name))

	return s.run(ctx, name, resource.OpCreate, fields, func(ctx context.Context) (any, error) {
		return s.source.Create(ctx, name, fields)
	})
}

// Update runs the UPDATE lifecycle. The START payload is the submitted fields.
func (s *ResourceService) Update(ctx context.Context, name string, id resource.ID, fields resource.Fields) (resource.State, error) {
	s.logger.InfoContext(ctx, "updating entity",
		slog.String("resource", name),
		slog.Any("id", id),
	)

	return s.run(ctx, name, resource.OpUpdate, fields, func(ctx context.Context) (any, error) {
		return s.source.Update(ctx, name, id, fields)
	})
}

// Destroy runs the DESTROY lifecycle. Both the START and SUCCESS payloads are
// the identifier, so the entity is removed on success.
func (s *ResourceService) Destroy(ctx context.Context, name string, id resource.ID) (resource.State, error) {
	s.logger.InfoContext(ctx, "destroying entity",
		slog.String("resource", name),
		slog.Any("id", id),
	)

	return s.run(ctx, name, resource.OpDestroy, id, func(ctx context.Context) (any, error) {
		if err := s.source.Destroy(ctx, name, id); err != nil {
			return nil, err
		}
		return id, nil
	})
}

// Submit sends a form's changeset buffer downstream, creating an entity when
// id is nil and updating it otherwise. Once the call succeeds the submitted
// fields are removed from the form; fields edited while the call was in
// flight stay. The form is left untouched when the call fails.
func (s *ResourceService) Submit(ctx context.Context, name, form string, id resource.ID) (resource.State, error) {
	if form == "" {
		form = resource.DefaultForm
	}

	st, err := s.store.State(name)
	if err != nil {
		return resource.State{}, err
	}

	fields := st.Changeset[form]
	if len(fields) == 0 {
		return resource.State{}, &domain.ValidationError{
			Fields: map[string]string{"changeset." + form: "has no changes"},
		}
	}

	if id == nil {
		_, err = s.Create(ctx, name, fields)
	} else {
		_, err = s.Update(ctx, name, id, fields)
	}
	if err != nil {
		return resource.State{}, err
	}

	if err := s.clearSubmitted(ctx, name, form, fields); err != nil {
		return resource.State{}, err
	}
	return s.store.State(name)
}

// clearSubmitted removes the submitted fields still holding the submitted
// value from form.
func (s *ResourceService) clearSubmitted(ctx context.Context, name, form string, submitted resource.Fields) error {
	st, err := s.store.State(name)
	if err != nil {
		return err
	}

	current := st.Changeset[form]
	names := make([]string, 0, len(submitted))
	for field, value := range submitted {
		if v, ok := current[field]; ok && reflect.DeepEqual(v, value) {
			names = append(names, field)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return s.store.Dispatch(ctx, resource.RemoveChanges(name, form, names...))
}

// run performs one request lifecycle: START, the call, then SUCCESS with the
// response or FAILURE with a payload describing the error.
func (s *ResourceService) run(ctx context.Context, name string, op resource.Operation, request any, call func(context.Context) (any, error)) (resource.State, error) {
	if _, err := s.store.State(name); err != nil {
		return resource.State{}, err
	}
	if !s.source.Supports(name) {
		return resource.State{}, fmt.Errorf("%w: %s", ErrNoSource, name)
	}

	if err := s.store.Dispatch(ctx, resource.Start(name, op, request)); err != nil {
		return resource.State{}, err
	}

	result, err := call(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "resource operation failed",
			slog.String("operation", op.String()),
			slog.String("resource", name),
			slog.Any("error", err),
		)
		if dErr := s.store.Dispatch(ctx, resource.Failure(name, op, FailurePayload(err))); dErr != nil {
			return resource.State{}, errors.Join(err, dErr)
		}
		st, _ := s.store.State(name)
		return st, err
	}

	// A falsy SUCCESS payload is ignored by the reducer, which would leave the
	// operation pending; an empty list settles it without touching entities.
	if !resource.Truthy(result) {
		result = []any{}
	}

	meta := resource.Meta{SyncedAtKey: s.now().UTC().Format(time.RFC3339)}
	if err := s.store.Dispatch(ctx, resource.Success(name, op, result, meta)); err != nil {
		return resource.State{}, err
	}
	return s.store.State(name)
}

// FailurePayload describes err as the FAILURE payload stored in the
// operation status: {"message", "kind"} plus "fields" for validation errors.
func FailurePayload(err error) map[string]any {
	payload := map[string]any{
		"message": err.Error(),
		"kind":    errorKind(err),
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		fields := make(map[string]any, len(verr.Fields))
		for k, v := range verr.Fields {
			fields[k] = v
		}
		payload["fields"] = fields
	}
	return payload
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}

func summarize(name string, st resource.State) ports.ResourceSummary {
	sum := ports.ResourceSummary{Name: name, Count: st.Len(), Forms: []string{}}
	for _, status := range st.Status {
		if status.Busy {
			sum.Busy = true
		}
	}
	for form, fields := range st.Changeset {
		if len(fields) > 0 {
			sum.Forms = append(sum.Forms, form)
		}
	}
	sort.Strings(sum.Forms)
	return sum
}
