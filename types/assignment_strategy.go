package types

// AssignmentStrategy generates one week of job assignments.
//
// Strategies implement different selection algorithms:
//   - Tiered: Randomized selection with recent-history, all-time and last-resort tiers
//   - RoundRobin: Deterministic rotation of each job to the next student
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Treat the input as immutable and return a new state
//   - Handle empty rosters by returning the state unchanged with a notice
//   - Report constraint shortfalls as notices, never as errors
//   - Keep history, cycle queue and timestamp bookkeeping consistent
type AssignmentStrategy interface {
	// Assign produces the next week's assignments.
	//
	// Parameters:
	//   - state: Current state (not modified)
	//
	// Returns:
	//   - AppState: New state with assignments, history, cycle queue and timestamp updated
	//   - []Notice: Advisories in the order they were raised
	//   - error: ErrInvariantViolation for malformed input, in which case no state is returned
	Assign(state AppState) (AppState, []Notice, error)
}
