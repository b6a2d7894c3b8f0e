// Package types provides core type definitions and interfaces for the rota library.
//
// This package contains shared types that are used across multiple packages in the
// rota library. By keeping these types in a separate package, we avoid import cycles
// between the main rota package and its internal implementations.
//
// Key types:
//   - AppState: Rosters, current assignments, history and fairness-cycle queue
//   - Notice: Non-fatal advisory produced by an assignment run
//   - AssignmentStrategy: Assignment engine interface
//   - StateStore: Persistence collaborator interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
