package strategy

import (
	"github.com/arloliu/rota/types"
)

// RoundRobin implements a deterministic rotation.
type RoundRobin struct {
	opts options
}

var _ types.AssignmentStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// Every job moves to the student after its current holder in roster order, so
// with at least as many students as jobs each student walks through the jobs
// in turn. This provides predictable assignment but ignores history.
//
// Parameters:
//   - opts: Optional configuration (WithRand for the cycle refill, WithClock)
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	strat := strategy.NewRoundRobin()
//	svc, err := rota.NewService(&cfg, store, rota.WithStrategy(strat))
func NewRoundRobin(opts ...Option) *RoundRobin {
	return &RoundRobin{opts: newOptions(opts)}
}

// Assign rotates the current assignments by one student.
//
// The algorithm:
//  1. Jobs with a current holder go, in roster order, to the first unassigned
//     student after the holder (wrapping around the roster)
//  2. Jobs without a holder go, in roster order, to the first unassigned student
//
// With no current assignments (first week, or after a clear) job i goes to
// student i.
//
// Parameters:
//   - state: Current state (not modified)
//
// Returns:
//   - types.AppState: New state
//   - []types.Notice: Advisories in the order they were raised
//   - error: Wrapped types.ErrInvariantViolation for malformed input
func (rr *RoundRobin) Assign(state types.AppState) (types.AppState, []types.Notice, error) {
	r, done, err := begin(state, rr.opts)
	if err != nil {
		return types.AppState{}, nil, err
	}
	if done {
		return r.state, r.notices, nil
	}

	students := r.state.Students
	position := make(map[types.Student]int, len(students))
	for i, s := range students {
		position[s] = i
	}

	held := make([]types.JobTitle, 0, len(r.state.JobTitles))
	open := make([]types.JobTitle, 0, len(r.state.JobTitles))
	start := make(map[types.JobTitle]int, len(r.state.JobTitles))
	for _, job := range r.state.JobTitles {
		if holder, ok := r.state.CurrentAssignments.HolderOf(job); ok {
			held = append(held, job)
			start[job] = position[holder] + 1
		} else {
			open = append(open, job)
		}
	}

	for _, job := range append(held, open...) {
		s, ok := r.nextFree(students, start[job])
		if !ok {
			r.skip(job)
			continue
		}
		r.record(s, job)
	}

	return r.finish(rr.opts)
}

// nextFree returns the first unassigned student at or after index from,
// wrapping around the roster.
func (r *run) nextFree(students []types.Student, from int) (types.Student, bool) {
	n := len(students)
	for i := range n {
		s := students[(from+i)%n]
		if !r.isAssigned(s) {
			return s, true
		}
	}

	return 0, false
}
