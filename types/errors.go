package types

import "errors"

// Sentinel errors for the rota library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Service, Roster, Store)
//   - Use consistent messages across similar error types

// Service errors - Public API errors returned by the Service.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStateStoreRequired is returned when the state store is nil.
	ErrStateStoreRequired = errors.New("state store is required")

	// ErrAssignmentStrategyRequired is returned when assignment strategy is nil.
	ErrAssignmentStrategyRequired = errors.New("assignment strategy is required")

	// ErrNamespaceRequired is returned when an operation is called with an empty namespace.
	ErrNamespaceRequired = errors.New("namespace is required")
)

// Roster errors - Invariant guard and roster edit errors.
var (
	// ErrInvariantViolation is returned when a state is malformed: duplicate or
	// non-positive student ids, duplicate or blank job titles.
	//
	// It is fatal to the operation: no new state is produced and the caller's
	// previous state stays authoritative.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNotFound is returned when a roster edit targets a student or job title
	// that is not in the roster.
	ErrNotFound = errors.New("not found in roster")
)

// Store errors - Persistence collaborator errors.
var (
	// ErrStateNotFound is returned by StateStore.Load when nothing is stored for a namespace.
	ErrStateNotFound = errors.New("state not found")

	// ErrRevisionConflict is returned by StateStore.Save when the stored revision
	// no longer matches the revision the caller loaded.
	ErrRevisionConflict = errors.New("state revision conflict")

	// ErrStoreUnavailable indicates a connectivity issue with the backing store.
	ErrStoreUnavailable = errors.New("state store unavailable")
)
