package rota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arloliu/rota/internal/hooks"
	"github.com/arloliu/rota/internal/logger"
	"github.com/arloliu/rota/internal/metrics"
	"github.com/arloliu/rota/internal/shuffle"
	"github.com/arloliu/rota/roster"
	"github.com/arloliu/rota/store"
	"github.com/arloliu/rota/strategy"
)

// Operation names used in logs, metrics and hooks.
const (
	OpAssign         = "assign"
	OpClear          = "clear"
	OpResetHistory   = "reset_history"
	OpResetAll       = "reset_all"
	OpAddStudent     = "add_student"
	OpRemoveStudent  = "remove_student"
	OpAddJobTitle    = "add_job_title"
	OpRemoveJobTitle = "remove_job_title"
	opSnapshot       = "snapshot"
)

// Result is the outcome of a Service operation.
type Result struct {
	// RunID identifies the operation in logs.
	RunID string

	// State is the state after the operation.
	State AppState

	// Notices are the advisories raised by the operation, in order.
	Notices []Notice

	// Revision is the store revision of State, 0 when State was never saved.
	Revision uint64
}

// Service runs rota operations against a StateStore.
//
// Every mutating operation loads the namespace's state (or starts from the
// configured default rosters), applies a pure state transition and saves the
// result with compare-and-swap on the loaded revision. A concurrent writer
// makes the save fail with ErrRevisionConflict; the operation is not retried
// and the stored state stays authoritative.
//
// Service is safe for concurrent use.
type Service struct {
	cfg      Config
	store    StateStore
	strategy AssignmentStrategy
	src      RandSource
	now      func() time.Time
	hooks    Hooks
	metrics  MetricsCollector
	logger   Logger
}

// NewService creates a new Service.
//
// Parameters:
//   - cfg: Configuration (defaults applied in place, then validated)
//   - st: State store (store.NewMemory, store.NewKV or a custom implementation)
//   - opts: Optional configuration (WithStrategy, WithLogger, WithMetrics, WithHooks, WithRand, WithClock)
//
// Returns:
//   - *Service: Initialized service
//   - error: ErrInvalidConfig, ErrStateStoreRequired or ErrAssignmentStrategyRequired
//
// Example:
//
//	cfg := rota.DefaultConfig()
//	svc, err := rota.NewService(&cfg, store.NewMemory())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := svc.Assign(ctx, "room-12")
func NewService(cfg *Config, st StateStore, opts ...Option) (*Service, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if st == nil {
		return nil, ErrStateStoreRequired
	}

	SetDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &serviceOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.strategySet && options.strategy == nil {
		return nil, ErrAssignmentStrategyRequired
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	cfg.ValidateWithWarnings(loggerInstance)

	src := shuffle.Locked(options.src)
	now := options.now
	if now == nil {
		now = time.Now
	}

	strat := options.strategy
	if strat == nil {
		strat = newStrategy(cfg, src, now)
	}

	return &Service{
		cfg:      *cfg,
		store:    store.Instrument(st, metricsCollector),
		strategy: strat,
		src:      src,
		now:      now,
		hooks:    hooks.Fill(options.hooks),
		metrics:  metricsCollector,
		logger:   loggerInstance,
	}, nil
}

func newStrategy(cfg *Config, src RandSource, now func() time.Time) AssignmentStrategy {
	if cfg.Strategy == StrategyRoundRobin {
		return strategy.NewRoundRobin(strategy.WithRand(src), strategy.WithClock(now))
	}

	return strategy.NewTiered(
		strategy.WithRecentWindow(cfg.RecentWindow),
		strategy.WithRand(src),
		strategy.WithClock(now),
	)
}

// Config returns a copy of the effective configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Snapshot returns the current state of namespace without modifying it.
//
// A namespace with no stored state yields the initial state built from the
// configured default rosters, with Revision 0. The returned state is
// reconciled (see roster.Validate).
//
// Parameters:
//   - ctx: Context for cancellation
//   - namespace: Caller-scoped identifier
//
// Returns:
//   - Result: Current state; Notices is empty
//   - error: ErrNamespaceRequired, ErrInvariantViolation for a malformed stored state, store errors
func (s *Service) Snapshot(ctx context.Context, namespace string) (Result, error) {
	if namespace == "" {
		return Result{}, ErrNamespaceRequired
	}

	opCtx, cancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer cancel()

	state, rev, err := s.load(opCtx, namespace)
	if err == nil {
		state, err = roster.Validate(state)
	}
	if err != nil {
		err = fmt.Errorf("%s %q: %w", opSnapshot, namespace, err)
		s.reportError(ctx, opSnapshot, namespace, err)

		return Result{}, err
	}

	return Result{RunID: uuid.NewString(), State: state, Revision: rev}, nil
}

// Assign generates this week's assignments with the configured strategy.
//
// Notices are advisories, never errors. An empty roster yields a
// NoticeEmptyRoster and an unchanged, saved state.
func (s *Service) Assign(ctx context.Context, namespace string) (Result, error) {
	return s.mutate(ctx, namespace, OpAssign, s.strategy.Assign)
}

// ClearCurrentAssignments empties this week's assignments. History and the
// cycle queue are kept.
func (s *Service) ClearCurrentAssignments(ctx context.Context, namespace string) (Result, error) {
	return s.mutate(ctx, namespace, OpClear, func(state AppState) (AppState, []Notice, error) {
		return roster.ClearCurrentAssignments(state), nil, nil
	})
}

// ResetAssignmentHistory empties assignments and history and starts a new
// fairness cycle. Rosters are kept.
func (s *Service) ResetAssignmentHistory(ctx context.Context, namespace string) (Result, error) {
	return s.mutate(ctx, namespace, OpResetHistory, func(state AppState) (AppState, []Notice, error) {
		return roster.ResetAssignmentHistory(state, s.src), nil, nil
	})
}

// ResetAll replaces the rosters and discards all assignments and history.
//
// Parameters:
//   - ctx: Context for cancellation
//   - namespace: Caller-scoped identifier
//   - students: New student roster, the configured default when empty
//   - jobTitles: New job roster, the configured default when empty
//
// Returns:
//   - Result: Fresh state
//   - error: ErrInvariantViolation for malformed rosters, store errors
func (s *Service) ResetAll(ctx context.Context, namespace string, students []Student, jobTitles []JobTitle) (Result, error) {
	if len(students) == 0 {
		students = s.cfg.DefaultStudents
	}
	if len(jobTitles) == 0 {
		jobTitles = s.cfg.DefaultJobTitles
	}

	return s.mutate(ctx, namespace, OpResetAll, func(state AppState) (AppState, []Notice, error) {
		next, err := roster.ResetAll(state, students, jobTitles, s.src)
		return next, nil, err
	})
}

// AddStudent adds id to the student roster.
func (s *Service) AddStudent(ctx context.Context, namespace string, id Student) (Result, error) {
	return s.mutate(ctx, namespace, OpAddStudent, func(state AppState) (AppState, []Notice, error) {
		next, err := roster.AddStudent(state, id)
		return next, nil, err
	})
}

// RemoveStudent removes id from the student roster together with its current
// assignment, cycle queue entry and history.
func (s *Service) RemoveStudent(ctx context.Context, namespace string, id Student) (Result, error) {
	return s.mutate(ctx, namespace, OpRemoveStudent, func(state AppState) (AppState, []Notice, error) {
		next, err := roster.RemoveStudent(state, id)
		return next, nil, err
	})
}

// AddJobTitle adds title to the job roster.
func (s *Service) AddJobTitle(ctx context.Context, namespace string, title JobTitle) (Result, error) {
	return s.mutate(ctx, namespace, OpAddJobTitle, func(state AppState) (AppState, []Notice, error) {
		next, err := roster.AddJobTitle(state, title)
		return next, nil, err
	})
}

// RemoveJobTitle removes title from the job roster. Current assignments and
// history that mention it are kept.
func (s *Service) RemoveJobTitle(ctx context.Context, namespace string, title JobTitle) (Result, error) {
	return s.mutate(ctx, namespace, OpRemoveJobTitle, func(state AppState) (AppState, []Notice, error) {
		next, err := roster.RemoveJobTitle(state, title)
		return next, nil, err
	})
}

type transition func(AppState) (AppState, []Notice, error)

// mutate runs the load, transition, save sequence of one operation and
// reports its outcome to metrics, logs and hooks.
func (s *Service) mutate(ctx context.Context, namespace, op string, fn transition) (Result, error) {
	if namespace == "" {
		return Result{}, ErrNamespaceRequired
	}

	runID := uuid.NewString()
	start := time.Now()

	res, err := s.apply(ctx, namespace, op, fn)
	s.metrics.RecordOperation(op, err == nil, time.Since(start).Seconds())
	if err != nil {
		err = fmt.Errorf("%s %q: %w", op, namespace, err)
		s.reportError(ctx, op, namespace, err, "run_id", runID)

		return Result{}, err
	}
	res.RunID = runID

	s.logger.Info("state saved",
		"namespace", namespace,
		"op", op,
		"run_id", runID,
		"revision", res.Revision,
		"notices", len(res.Notices),
	)

	if op == OpAssign {
		s.metrics.RecordAssignments(len(res.State.CurrentAssignments))
		s.metrics.RecordCycleRemaining(len(res.State.CycleQueue))
	}
	for _, n := range res.Notices {
		s.metrics.RecordNotice(n.Kind.String())
		s.logNotice(namespace, runID, n)
	}

	s.runHooks(ctx, namespace, op, res)

	return res, nil
}

func (s *Service) apply(ctx context.Context, namespace, op string, fn transition) (Result, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer cancel()

	state, rev, err := s.load(opCtx, namespace)
	if err != nil {
		return Result{}, err
	}

	next, notices, err := fn(state)
	if err != nil {
		return Result{}, err
	}

	newRev, err := s.store.Save(opCtx, namespace, next, rev)
	if err != nil {
		if errors.Is(err, ErrRevisionConflict) {
			s.logger.Warn("state changed concurrently, operation discarded",
				"namespace", namespace, "op", op, "revision", rev)
		}

		return Result{}, err
	}

	return Result{State: next, Notices: notices, Revision: newRev}, nil
}

// load returns the stored state, or the initial state with revision 0 when
// the namespace has none.
func (s *Service) load(ctx context.Context, namespace string) (AppState, uint64, error) {
	state, rev, err := s.store.Load(ctx, namespace)
	if err == nil {
		return state, rev, nil
	}
	if !errors.Is(err, ErrStateNotFound) {
		return AppState{}, 0, err
	}

	s.logger.Debug("no stored state, using default rosters", "namespace", namespace)

	initial, err := roster.NewState(s.cfg.DefaultStudents, s.cfg.DefaultJobTitles)
	if err != nil {
		return AppState{}, 0, err
	}

	return initial, 0, nil
}

func (s *Service) logNotice(namespace, runID string, n Notice) {
	kv := []any{"namespace", namespace, "run_id", runID, "kind", n.Kind.String(), "message", n.Message}
	if n.Student != 0 {
		kv = append(kv, "student", int(n.Student))
	}
	if n.Job != "" {
		kv = append(kv, "job", string(n.Job))
	}

	if n.Kind.IsWarning() {
		s.logger.Warn("assignment notice", kv...)
	} else {
		s.logger.Info("assignment notice", kv...)
	}
}

func (s *Service) runHooks(ctx context.Context, namespace, op string, res Result) {
	if err := s.hooks.OnStateSaved(ctx, namespace, op, res.State.Clone()); err != nil {
		s.logger.Error("OnStateSaved hook failed", "namespace", namespace, "op", op, "error", err)
	}
	for _, n := range res.Notices {
		if err := s.hooks.OnNotice(ctx, namespace, n); err != nil {
			s.logger.Error("OnNotice hook failed", "namespace", namespace, "kind", n.Kind.String(), "error", err)
		}
	}
}

func (s *Service) reportError(ctx context.Context, op, namespace string, err error, keysAndValues ...any) {
	kv := append([]any{"namespace", namespace, "op", op, "error", err}, keysAndValues...)

	switch {
	case errors.Is(err, ErrRevisionConflict), errors.Is(err, ErrNotFound), errors.Is(err, ErrInvariantViolation):
		s.logger.Warn("operation rejected", kv...)
	default:
		s.logger.Error("operation failed", kv...)
	}

	if hookErr := s.hooks.OnError(ctx, err); hookErr != nil {
		s.logger.Error("OnError hook failed", "namespace", namespace, "op", op, "error", hookErr)
	}
}
