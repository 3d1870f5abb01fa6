// Package schedule refreshes every registered resource from the downstream
// source on a cron schedule (github.com/robfig/cron/v3).
//
//	sch, err := schedule.New("@every 30s", svc, logger)
//	sch.Start(ctx)
//	defer sch.Stop(shutdownCtx)
//
// Runs never overlap: a tick that fires while the previous refresh is still
// in flight is skipped.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/HumzahChoudry/redux-api-resources/internal/domain"
)

// Refresher refreshes all resources and reports per-resource failures.
// Implemented by app.ResourceService.
type Refresher interface {
	FetchAll(ctx context.Context) map[string]error
}

// Scheduler periodically calls Refresher.FetchAll.
type Scheduler struct {
	spec      string
	cron      *cron.Cron
	refresher Refresher
	logger    *slog.Logger
	cancel    context.CancelFunc
}

// New parses spec (standard five-field cron or an "@every" descriptor) and
// returns a stopped Scheduler. An empty spec returns a nil Scheduler, whose
// Start and Stop are no-ops.
func New(spec string, refresher Refresher, logger *slog.Logger) (*Scheduler, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, &domain.ValidationError{
			Fields: map[string]string{"sync.schedule": err.Error()},
		}
	}

	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	return &Scheduler{
		spec:      spec,
		cron:      c,
		refresher: refresher,
		logger:    logger,
	}, nil
}

// Start registers the refresh job and starts the cron loop. Jobs run with a
// context derived from ctx that is canceled by Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return nil
	}

	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	if _, err := s.cron.AddFunc(s.spec, func() { s.Run(jobCtx) }); err != nil {
		cancel()
		return fmt.Errorf("schedule: adding refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("resource refresh scheduled", slog.String("schedule", s.spec))
	return nil
}

// Stop halts the cron loop and waits for a running refresh to finish or for
// ctx to be done, whichever comes first. In-flight downstream calls are
// canceled when ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s == nil {
		return nil
	}

	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.cancelJobs()
		return nil
	case <-ctx.Done():
		s.cancelJobs()
		return fmt.Errorf("schedule: waiting for refresh: %w", ctx.Err())
	}
}

// Run performs one refresh and logs per-resource failures.
func (s *Scheduler) Run(ctx context.Context) {
	errs := s.refresher.FetchAll(ctx)
	if len(errs) == 0 {
		s.logger.DebugContext(ctx, "resources refreshed")
		return
	}

	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s.logger.WarnContext(ctx, "resource refresh failed",
			slog.String("operation", "Scheduler.Run"),
			slog.String("resource", name),
			slog.Any("error", errs[name]),
		)
	}
}

func (s *Scheduler) cancelJobs() {
	if s.cancel != nil {
		s.cancel()
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
