package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
	"github.com/HumzahChoudry/redux-api-resources/internal/domain/resource"
	"github.com/HumzahChoudry/redux-api-resources/internal/store"
	"github.com/HumzahChoudry/redux-api-resources/mocks"
)

var testNow = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newTestService wires a real store holding the named resources to a mock source.
func newTestService(t *testing.T, names ...string) (*ResourceService, *store.Store, *mocks.MockResourceSource) {
	t.Helper()

	st := store.New(discardLogger(), nil)
	for _, name := range names {
		r, err := resource.New(name, resource.Options{Logger: discardLogger()})
		require.NoError(t, err)
		require.NoError(t, st.Register(r))
	}

	src := mocks.NewMockResourceSource(t)
	svc := NewResourceService(st, src, 2, discardLogger())
	svc.now = func() time.Time { return testNow }
	return svc, st, src
}

// --- NewResourceService ---

func TestNewResourceService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewResourceService(store.New(nil, nil), mocks.NewMockResourceSource(t), 0, nil)

	assert.NotNil(t, svc.logger)
	assert.Equal(t, defaultMaxWorkers, svc.maxWorkers)
}

// --- Fetch ---

func TestResourceService_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("settles success and merges entities", func(t *testing.T) {
		t.Parallel()
		svc, _, src := newTestService(t, "todos")

		src.EXPECT().Supports("todos").Return(true)
		src.EXPECT().Fetch(mock.Anything, "todos").Return([]any{
			map[string]any{"id": float64(1), "title": "A"},
			map[string]any{"id": float64(2), "title": "B"},
		}, nil)

		got, err := svc.Fetch(context.Background(), "todos")
		require.NoError(t, err)

		assert.Equal(t, []resource.ID{int64(1), int64(2)}, got.Results)
		status := got.Status[resource.OpFetch]
		assert.False(t, *status.Pending)
		assert.True(t, *status.Success)
		assert.False(t, status.Busy)
		assert.Equal(t, "2026-02-12T15:04:05Z", got.Meta[SyncedAtKey])
	})

	t.Run("observes busy while the call is in flight", func(t *testing.T) {
		t.Parallel()
		svc, st, src := newTestService(t, "todos")

		src.EXPECT().Supports("todos").Return(true)
		src.EXPECT().Fetch(mock.Anything, "todos").RunAndReturn(func(context.Context, string) (any, error) {
			mid, err := st.State("todos")
			require.NoError(t, err)
			assert.True(t, mid.Status[resource.OpFetch].Busy)
			assert.True(t, *mid.Status[resource.OpFetch].Pending)
			return []any{}, nil
		})

		_, err := svc.Fetch(context.Background(), "todos")
		require.NoError(t, err)
	})

	t.Run("records failure payload", func(t *testing.T) {
		t.Parallel()
		svc, st, src := newTestService(t, "todos")

		downstream := fmt.Errorf("upstream down: %w", domain.ErrUnavailable)
		src.EXPECT().Supports("todos").Return(true)
		src.EXPECT().Fetch(mock.Anything, "todos").Return(nil, downstream)

		failed, err := svc.Fetch(context.Background(), "todos")
		require.ErrorIs(t, err, domain.ErrUnavailable)
		assert.False(t, *failed.Status[resource.OpFetch].Success)

		after, err := st.State("todos")
		require.NoError(t, err)
		status := after.Status[resource.OpFetch]
		assert.True(t, *status.Pending)
		assert.False(t, *status.Success)
		assert.False(t, status.Busy)
		assert.Equal(t, map[string]any{
			"message": "upstream down: unavailable",
			"kind":    "unavailable",
		}, status.Payload)
	})

	t.Run("null body settles with no entities", func(t *testing.T) {
		t.Parallel()
		svc, _, src := newTestService(t, "todos")

		src.EXPECT().Supports("todos").Return(true)
		src.EXPECT().Fetch(mock.Anything, "todos").Return(nil, nil)

		got, err := svc.Fetch(context.Background(), "todos")
		require.NoError(t, err)
		assert.Empty(t, got.Results)
		assert.True(t, *got.Status[resource.OpFetch].Success)
	})

	t.Run("unknown resource", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t, "todos")

		_, err := svc.Fetch(context.Background(), "projects")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("resource without source dispatches nothing", func(t *testing.T) {
		t.Parallel()
		svc, st, src := newTestService(t, "drafts")

		src.EXPECT().Supports("drafts").Return(false)

		_, err := svc.Fetch(context.Background(), "drafts")
		require.ErrorIs(t, err, ErrNoSource)

		after, err := st.State("drafts")
		require.NoError(t, err)
		assert.Equal(t, resource.InitialState(), after)
	})
}

// --- Create / Update / Destroy ---

func TestResourceService_Create(t *testing.T) {
	t.Parallel()
	svc, _, src := newTestService(t, "todos")

	fields := resource.Fields{"title": "New"}
	src.EXPECT().Supports("todos").Return(true)
	src.EXPECT().Create(mock.Anything, "todos", fields).Return(map[string]any{"id": float64(9), "title": "New"}, nil)

	got, err := svc.Create(context.Background(), "todos", fields)
	require.NoError(t, err)

	assert.Equal(t, []resource.ID{int64(9)}, got.Results)
	assert.Equal(t, map[string]any{"id": float64(9), "title": "New"}, got.Entities[int64(9)])
	assert.True(t, *got.Status[resource.OpCreate].Success)
}

func TestResourceService_CreateValidationFailure(t *testing.T) {
	t.Parallel()
	svc, st, src := newTestService(t, "todos")

	verr := &domain.ValidationError{Fields: map[string]string{"title": "is required"}}
	src.EXPECT().Supports("todos").Return(true)
	src.EXPECT().Create(mock.Anything, "todos", mock.Anything).Return(nil, verr)

	_, err := svc.Create(context.Background(), "todos", resource.Fields{})
	require.ErrorIs(t, err, domain.ErrValidation)

	after, err := st.State("todos")
	require.NoError(t, err)
	payload, ok := after.Status[resource.OpCreate].Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "validation", payload["kind"])
	assert.Equal(t, map[string]any{"title": "is required"}, payload["fields"])
}

func TestResourceService_Update(t *testing.T) {
	t.Parallel()
	svc, st, src := newTestService(t, "todos")

	require.NoError(t, st.Dispatch(context.Background(), resource.Success("todos", resource.OpFetch, []any{
		map[string]any{"id": 1, "title": "A", "done": false},
		map[string]any{"id": 2, "title": "B"},
	}, nil)))

	src.EXPECT().Supports("todos").Return(true)
	src.EXPECT().Update(mock.Anything, "todos", resource.ID(int64(1)), resource.Fields{"done": true}).
		Return(map[string]any{"id": float64(1), "title": "A", "done": true}, nil)

	got, err := svc.Update(context.Background(), "todos", int64(1), resource.Fields{"done": true})
	require.NoError(t, err)

	assert.Equal(t, []resource.ID{int64(1), int64(2)}, got.Results)
	assert.Equal(t, true, got.Entities[int64(1)]["done"])
}

func TestResourceService_Destroy(t *testing.T) {
	t.Parallel()
	svc, st, src := newTestService(t, "todos")

	require.NoError(t, st.Dispatch(context.Background(), resource.Success("todos", resource.OpFetch, []any{
		map[string]any{"id": 1}, map[string]any{"id": 2},
	}, nil)))

	src.EXPECT().Supports("todos").Return(true)
	src.EXPECT().Destroy(mock.Anything, "todos", resource.ID(int64(2))).Return(nil)

	got, err := svc.Destroy(context.Background(), "todos", int64(2))
	require.NoError(t, err)

	assert.Equal(t, []resource.ID{int64(1)}, got.Results)
	assert.NotContains(t, got.Entities, resource.ID(int64(2)))
	assert.Equal(t, int64(2), got.Status[resource.OpDestroy].Payload)
}

// --- FetchAll ---

func TestResourceService_FetchAll(t *testing.T) {
	t.Parallel()
	svc, _, src := newTestService(t, "todos", "projects", "drafts")

	src.EXPECT().Supports("TODOS").Return(true)
	src.EXPECT().Supports("PROJECTS").Return(true)
	src.EXPECT().Supports("DRAFTS").Return(false)
	src.EXPECT().Fetch(mock.Anything, "TODOS").Return([]any{map[string]any{"id": 1}}, nil)
	src.EXPECT().Fetch(mock.Anything, "PROJECTS").Return(nil, fmt.Errorf("boom: %w", domain.ErrUnavailable))

	errs := svc.FetchAll(context.Background())

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs["PROJECTS"], domain.ErrUnavailable)
}

func TestResourceService_FetchAllBoundedConcurrency(t *testing.T) {
	t.Parallel()
	svc, _, src := newTestService(t, "a", "b", "c", "d", "e")

	var inFlight, peak atomic.Int32
	src.EXPECT().Supports(mock.Anything).Return(true)
	src.EXPECT().Fetch(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, string) (any, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
		return []any{}, nil
	})

	errs := svc.FetchAll(context.Background())

	assert.Empty(t, errs)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestResourceService_FetchCoalescesConcurrentCalls(t *testing.T) {
	t.Parallel()
	svc, _, src := newTestService(t, "todos")

	entered := make(chan struct{})
	release := make(chan struct{})
	// The shared call runs with the first caller's spelling of the name.
	src.EXPECT().Supports("todos").Return(true).Once()
	src.EXPECT().Fetch(mock.Anything, "todos").RunAndReturn(func(context.Context, string) (any, error) {
		close(entered)
		<-release
		return []any{map[string]any{"id": 1}}, nil
	}).Once()

	type outcome struct {
		st  resource.State
		err error
	}
	first := make(chan outcome, 1)
	second := make(chan outcome, 1)
	receive := func(ch <-chan outcome) outcome {
		t.Helper()
		select {
		case o := <-ch:
			return o
		case <-time.After(2 * time.Second):
			t.Fatal("fetch did not return")
			return outcome{}
		}
	}

	go func() {
		st, err := svc.Fetch(context.Background(), "todos")
		first <- outcome{st, err}
	}()
	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("source was not called")
	}
	go func() {
		st, err := svc.Fetch(context.Background(), "Todos")
		second <- outcome{st, err}
	}()
	// Give the second caller time to join before the source answers.
	time.Sleep(50 * time.Millisecond)
	close(release)

	a, b := receive(first), receive(second)
	require.NoError(t, a.err)
	require.NoError(t, b.err)
	assert.Equal(t, []resource.ID{int64(1)}, a.st.Results)
	assert.Equal(t, a.st.Results, b.st.Results)
}

// --- Submit ---

func TestResourceService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("creates from the form buffer and resets it", func(t *testing.T) {
		t.Parallel()
		svc, st, src := newTestService(t, "users")
		ctx := context.Background()

		require.NoError(t, st.Dispatch(ctx, resource.MergeChanges("users", "signup", resource.Fields{"name": "Al"})))
		require.NoError(t, st.Dispatch(ctx, resource.MergeChanges("users", "other", resource.Fields{"name": "Bo"})))

		src.EXPECT().Supports("users").Return(true)
		src.EXPECT().Create(mock.Anything, "users", resource.Fields{"name": "Al"}).
			Return(map[string]any{"id": "u1", "name": "Al"}, nil)

		got, err := svc.Submit(ctx, "users", "signup", nil)
		require.NoError(t, err)

		assert.Equal(t, []resource.ID{"u1"}, got.Results)
		assert.Empty(t, got.Changeset["signup"])
		assert.Equal(t, resource.Fields{"name": "Bo"}, got.Changeset["other"])
	})

	t.Run("updates when an id is given", func(t *testing.T) {
		t.Parallel()
		svc, st, src := newTestService(t, "users")
		ctx := context.Background()

		require.NoError(t, st.Dispatch(ctx, resource.MergeChanges("users", "", resource.Fields{"name": "Cy"})))

		src.EXPECT().Supports("users").Return(true)
		src.EXPECT().Update(mock.Anything, "users", resource.ID("u1"), resource.Fields{"name": "Cy"}).
			Return(map[string]any{"id": "u1", "name": "Cy"}, nil)

		got, err := svc.Submit(ctx, "users", "", "u1")
		require.NoError(t, err)
		assert.Empty(t, got.Changeset[resource.DefaultForm])
		assert.Equal(t, resource.Entity{"id": "u1", "name": "Cy"}, got.Entities["u1"])
	})

	t.Run("keeps edits made while the call is in flight", func(t *testing.T) {
		t.Parallel()
		svc, st, src := newTestService(t, "users")
		ctx := context.Background()

		require.NoError(t, st.Dispatch(ctx, resource.MergeChanges("users", "signup", resource.Fields{"name": "Al", "age": 3})))

		src.EXPECT().Supports("users").Return(true)
		src.EXPECT().Create(mock.Anything, "users", resource.Fields{"name": "Al", "age": 3}).
			RunAndReturn(func(ctx context.Context, _ string, _ resource.Fields) (any, error) {
				require.NoError(t, st.Dispatch(ctx, resource.MergeChanges("users", "signup",
					resource.Fields{"age": 4, "email": "al@example.com"})))
				return map[string]any{"id": "u1", "name": "Al", "age": 3}, nil
			})

		got, err := svc.Submit(ctx, "users", "signup", nil)
		require.NoError(t, err)

		assert.Equal(t, resource.Fields{"age": 4, "email": "al@example.com"}, got.Changeset["signup"])
	})

	t.Run("keeps the form when the call fails", func(t *testing.T) {
		t.Parallel()
		svc, st, src := newTestService(t, "users")
		ctx := context.Background()

		require.NoError(t, st.Dispatch(ctx, resource.MergeChanges("users", "signup", resource.Fields{"name": "Al"})))

		src.EXPECT().Supports("users").Return(true)
		src.EXPECT().Create(mock.Anything, "users", mock.Anything).Return(nil, errors.New("timeout"))

		_, err := svc.Submit(ctx, "users", "signup", nil)
		require.Error(t, err)

		after, err := st.State("users")
		require.NoError(t, err)
		assert.Equal(t, resource.Fields{"name": "Al"}, after.Changeset["signup"])
		assert.Equal(t, "internal", after.Status[resource.OpCreate].Payload.(map[string]any)["kind"])
	})

	t.Run("empty form is a validation error", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newTestService(t, "users")

		_, err := svc.Submit(context.Background(), "users", "signup", nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

// --- Dispatch / Query / Resources ---

func TestResourceService_DispatchUnclaimed(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t, "users")

	err := svc.Dispatch(context.Background(), resource.Start("posts", resource.OpFetch, nil))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResourceService_Query(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t, "users")
	ctx := context.Background()

	require.NoError(t, svc.DispatchBatch(ctx, []resource.Action{
		resource.Success("users", resource.OpFetch, []any{
			map[string]any{"id": 1, "role": "admin"},
			map[string]any{"id": 2, "role": "user"},
		}, nil),
	}))

	got, err := svc.Query(ctx, "users", `role == "admin"`)
	require.NoError(t, err)
	assert.Equal(t, []resource.Entity{{"id": 1, "role": "admin"}}, got)

	_, err = svc.Query(ctx, "users", `role ==`)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Query(ctx, "posts", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResourceService_Resources(t *testing.T) {
	t.Parallel()
	svc, st, _ := newTestService(t, "users", "posts")
	ctx := context.Background()

	require.NoError(t, st.DispatchBatch(ctx, []resource.Action{
		resource.Success("users", resource.OpFetch, []any{map[string]any{"id": 1}}, nil),
		resource.Start("users", resource.OpUpdate, nil),
		resource.MergeChanges("posts", "edit", resource.Fields{"title": "x"}),
	}))

	got := svc.Resources(ctx)

	require.Len(t, got, 2)
	assert.Equal(t, "USERS", got[0].Name)
	assert.Equal(t, 1, got[0].Count)
	assert.True(t, got[0].Busy)
	assert.Empty(t, got[0].Forms)
	assert.Equal(t, "POSTS", got[1].Name)
	assert.False(t, got[1].Busy)
	assert.Equal(t, []string{"edit"}, got[1].Forms)
}

// --- FailurePayload ---

func TestFailurePayload_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrNotFound, "not_found"},
		{fmt.Errorf("x: %w", domain.ErrConflict), "conflict"},
		{domain.ErrForbidden, "forbidden"},
		{context.DeadlineExceeded, "canceled"},
		{errors.New("other"), "internal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FailurePayload(tt.err)["kind"], tt.err.Error())
	}
}

// --- store failures ---

func TestResourceService_StartRejectedSkipsSource(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	src := mocks.NewMockResourceSource(t)
	svc := NewResourceService(st, src, 1, discardLogger())

	rejected := errors.New("store closed")
	st.EXPECT().State("todos").Return(resource.InitialState(), nil)
	src.EXPECT().Supports("todos").Return(true)
	st.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(a resource.Action) bool {
		return a.Type.String() == "TODOS/FETCH/START"
	})).Return(rejected)

	_, err := svc.Fetch(context.Background(), "todos")
	require.ErrorIs(t, err, rejected)
	src.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
}

func TestResourceService_FailureDispatchErrorJoined(t *testing.T) {
	t.Parallel()

	st := mocks.NewMockStore(t)
	src := mocks.NewMockResourceSource(t)
	svc := NewResourceService(st, src, 1, discardLogger())

	downstream := fmt.Errorf("gone: %w", domain.ErrNotFound)
	dispatchErr := errors.New("store closed")

	st.EXPECT().State("todos").Return(resource.InitialState(), nil)
	src.EXPECT().Supports("todos").Return(true)
	src.EXPECT().Destroy(mock.Anything, "todos", resource.ID(int64(3))).Return(downstream)
	st.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(a resource.Action) bool {
		return a.Type.String() == "TODOS/DESTROY/START"
	})).Return(nil)
	st.EXPECT().Dispatch(mock.Anything, mock.MatchedBy(func(a resource.Action) bool {
		return a.Type.String() == "TODOS/DESTROY/FAILURE"
	})).Return(dispatchErr)

	_, err := svc.Destroy(context.Background(), "todos", int64(3))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, dispatchErr)
}
