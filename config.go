package rota

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/rota/roster"
	"github.com/arloliu/rota/strategy"
)

// Strategy names accepted by Config.Strategy.
const (
	StrategyTiered     = "tiered"
	StrategyRoundRobin = "round-robin"
)

// KVConfig configures the NATS JetStream KV bucket that holds rota state.
type KVConfig struct {
	// Bucket is the bucket name.
	Bucket string `yaml:"bucket"`

	// KeyPrefix prefixes every namespace key ("<prefix>.<hash>").
	KeyPrefix string `yaml:"keyPrefix"`

	// History is the number of revisions JetStream keeps per namespace (1-64).
	// Older revisions allow manual recovery after a bad edit.
	History int `yaml:"history"`

	// Replicas is the stream replication factor.
	Replicas int `yaml:"replicas"`

	// CreateRetries is the number of bucket create/open attempts at startup.
	CreateRetries int `yaml:"createRetries"`
}

// Config is the configuration for the Service.
//
// All duration fields accept standard Go duration strings like "10s" or "1m".
type Config struct {
	// Strategy selects the assignment strategy: "tiered" (default) or "round-robin".
	// Ignored when a strategy is injected with WithStrategy.
	Strategy string `yaml:"strategy"`

	// RecentWindow is how many of a student's most recent jobs the tiered
	// strategy avoids repeating. Default: 2.
	RecentWindow int `yaml:"recentWindow"`

	// DefaultStudents is the student roster of a namespace that has no stored
	// state yet, and the roster ResetAll falls back to.
	DefaultStudents []Student `yaml:"defaultStudents"`

	// DefaultJobTitles is the job roster of a namespace that has no stored
	// state yet, and the roster ResetAll falls back to.
	DefaultJobTitles []JobTitle `yaml:"defaultJobTitles"`

	// OperationTimeout bounds the store calls of one Service operation.
	// Recommended: 10 seconds.
	OperationTimeout time.Duration `yaml:"operationTimeout"`

	// KV controls the NATS JetStream KV bucket used by the CLI.
	KV KVConfig `yaml:"kv"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Strategy:         StrategyTiered,
		RecentWindow:     strategy.DefaultRecentWindow,
		DefaultStudents:  roster.DefaultStudents(),
		DefaultJobTitles: roster.DefaultJobTitles(),
		OperationTimeout: 10 * time.Second,
		KV: KVConfig{
			Bucket:        "rota-state",
			KeyPrefix:     "state",
			History:       5,
			Replicas:      1,
			CreateRetries: 3,
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Strategy == "" {
		cfg.Strategy = defaults.Strategy
	}
	if cfg.RecentWindow == 0 {
		cfg.RecentWindow = defaults.RecentWindow
	}
	if len(cfg.DefaultStudents) == 0 {
		cfg.DefaultStudents = defaults.DefaultStudents
	}
	if len(cfg.DefaultJobTitles) == 0 {
		cfg.DefaultJobTitles = defaults.DefaultJobTitles
	}
	if cfg.OperationTimeout == 0 {
		cfg.OperationTimeout = defaults.OperationTimeout
	}
	if cfg.KV.Bucket == "" {
		cfg.KV.Bucket = defaults.KV.Bucket
	}
	if cfg.KV.KeyPrefix == "" {
		cfg.KV.KeyPrefix = defaults.KV.KeyPrefix
	}
	if cfg.KV.History == 0 {
		cfg.KV.History = defaults.KV.History
	}
	if cfg.KV.Replicas == 0 {
		cfg.KV.Replicas = defaults.KV.Replicas
	}
	if cfg.KV.CreateRetries == 0 {
		cfg.KV.CreateRetries = defaults.KV.CreateRetries
	}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - Strategy is "tiered" or "round-robin"
//   - RecentWindow >= 1
//   - DefaultStudents and DefaultJobTitles are valid rosters
//   - OperationTimeout > 0
//   - KV.History between 1 and 64, KV.Replicas >= 1
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	var errs []error

	switch cfg.Strategy {
	case StrategyTiered, StrategyRoundRobin:
	default:
		errs = append(errs, fmt.Errorf("strategy must be %q or %q, got %q",
			StrategyTiered, StrategyRoundRobin, cfg.Strategy))
	}

	if cfg.RecentWindow < 1 {
		errs = append(errs, fmt.Errorf("recentWindow must be >= 1, got %d", cfg.RecentWindow))
	}
	if err := roster.CheckStudents(cfg.DefaultStudents); err != nil {
		errs = append(errs, fmt.Errorf("defaultStudents: %w", err))
	}
	if err := roster.CheckJobTitles(cfg.DefaultJobTitles); err != nil {
		errs = append(errs, fmt.Errorf("defaultJobTitles: %w", err))
	}
	if cfg.OperationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("operationTimeout must be > 0, got %v", cfg.OperationTimeout))
	}
	if cfg.KV.History < 1 || cfg.KV.History > 64 {
		errs = append(errs, fmt.Errorf("kv.history must be between 1 and 64, got %d", cfg.KV.History))
	}
	if cfg.KV.Replicas < 1 {
		errs = append(errs, fmt.Errorf("kv.replicas must be >= 1, got %d", cfg.KV.Replicas))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// ValidateWithWarnings logs warnings for valid but questionable values.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	// Once a student has held every job within the window, tier 1 never matches.
	if cfg.Strategy == StrategyTiered && cfg.RecentWindow >= len(cfg.DefaultJobTitles) {
		logger.Warn(
			"recentWindow covers the whole default job roster, assignments will fall back to repeats",
			"recentWindow", cfg.RecentWindow,
			"defaultJobTitles", len(cfg.DefaultJobTitles),
		)
	}

	if len(cfg.DefaultJobTitles) > len(cfg.DefaultStudents) {
		logger.Warn(
			"default job roster is larger than the default student roster, some jobs will go unassigned",
			"defaultStudents", len(cfg.DefaultStudents),
			"defaultJobTitles", len(cfg.DefaultJobTitles),
		)
	}

	if cfg.OperationTimeout < time.Second {
		logger.Warn(
			"operationTimeout is very short, store calls may time out",
			"operationTimeout", cfg.OperationTimeout,
			"recommended", "10s",
		)
	}
}

// TestConfig returns a configuration for tests: small rosters and a short
// operation timeout.
//
// Example:
//
//	cfg := rota.TestConfig()
//	svc, err := rota.NewService(&cfg, store.NewMemory())
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.DefaultStudents = []Student{1, 2, 3, 4, 5}
	cfg.DefaultJobTitles = []JobTitle{"Line Leader", "Door Holder", "Messenger"}
	cfg.OperationTimeout = 2 * time.Second

	return cfg
}

// LoadConfig reads a YAML configuration file and applies defaults.
//
// The result is not validated; NewService validates it.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - Config: Loaded configuration with defaults applied
//   - error: Read or parse failure
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	SetDefaults(&cfg)

	return cfg, nil
}
