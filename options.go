package rota

import "time"

// Option configures a Service with optional dependencies.
type Option func(*serviceOptions)

// serviceOptions holds optional Service configuration.
type serviceOptions struct {
	strategy    AssignmentStrategy
	strategySet bool
	hooks       *Hooks
	metrics     MetricsCollector
	logger      Logger
	src         RandSource
	now         func() time.Time
}

// WithStrategy injects an assignment strategy, overriding Config.Strategy.
//
// Parameters:
//   - strategy: AssignmentStrategy implementation (must not be nil)
//
// Returns:
//   - Option: Functional option for NewService
//
// Example:
//
//	strat := strategy.NewTiered(strategy.WithRecentWindow(3))
//	svc, err := rota.NewService(&cfg, st, rota.WithStrategy(strat))
func WithStrategy(strategy AssignmentStrategy) Option {
	return func(o *serviceOptions) {
		o.strategy = strategy
		o.strategySet = true
	}
}

// WithHooks sets event hooks.
//
// Example:
//
//	hooks := &rota.Hooks{
//	    OnStateSaved: func(ctx context.Context, ns, op string, st rota.AppState) error {
//	        return audit.Record(ctx, ns, op)
//	    },
//	}
//	svc, err := rota.NewService(&cfg, st, rota.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *serviceOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Example:
//
//	collector := metrics.NewPrometheus(prometheus.DefaultRegisterer, "rota")
//	svc, err := rota.NewService(&cfg, st, rota.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *serviceOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewService
func WithLogger(logger Logger) Option {
	return func(o *serviceOptions) {
		o.logger = logger
	}
}

// WithRand sets the random source used by the configured strategy and by the
// reset operations. The Service serializes access to it, so one seeded
// generator may be shared by concurrent calls.
//
// Example:
//
//	svc, err := rota.NewService(&cfg, st, rota.WithRand(rand.New(rand.NewPCG(1, 2))))
func WithRand(src RandSource) Option {
	return func(o *serviceOptions) {
		o.src = src
	}
}

// WithClock sets the clock used to timestamp assignment runs.
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		o.now = now
	}
}
