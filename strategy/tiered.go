package strategy

import (
	"fmt"

	"github.com/arloliu/rota/internal/shuffle"
	"github.com/arloliu/rota/types"
)

// tier is the fallback level a pick was made at.
type tier int

const (
	tierFresh  tier = iota + 1 // job not in the recent window
	tierUnheld                 // job never held
	tierRepeat                 // any eligible student
)

// Tiered implements the randomized three-tier weekly assignment.
type Tiered struct {
	opts options
}

var _ types.AssignmentStrategy = (*Tiered)(nil)

// NewTiered creates a new tiered strategy.
//
// Parameters:
//   - opts: Optional configuration (WithRecentWindow, WithRand, WithClock)
//
// Returns:
//   - *Tiered: Initialized tiered strategy
//
// Example:
//
//	strat := strategy.NewTiered(
//	    strategy.WithRecentWindow(3),
//	    strategy.WithRand(rand.New(rand.NewPCG(1, 2))),
//	)
//	next, notices, err := strat.Assign(state)
func NewTiered(opts ...Option) *Tiered {
	return &Tiered{opts: newOptions(opts)}
}

// RecentWindow returns the configured recent-history window.
func (t *Tiered) RecentWindow() int {
	return t.opts.recentWindow
}

// Assign generates this week's assignments.
//
// The algorithm:
//  1. Validate and reconcile the input; stop with a notice on an empty roster
//  2. Refill an empty cycle queue with a shuffled roster
//  3. Shuffle the student roster (weekly pool) and the job roster (job order)
//  4. For each job, pick from the unassigned students of the pool by tier
//  5. Append each pick to history and remove the student from the cycle queue
//
// Parameters:
//   - state: Current state (not modified)
//
// Returns:
//   - types.AppState: New state
//   - []types.Notice: Advisories in the order they were raised
//   - error: Wrapped types.ErrInvariantViolation for malformed input
func (t *Tiered) Assign(state types.AppState) (types.AppState, []types.Notice, error) {
	r, done, err := begin(state, t.opts)
	if err != nil {
		return types.AppState{}, nil, err
	}
	if done {
		return r.state, r.notices, nil
	}

	pool := shuffle.Permute(t.opts.src, r.state.Students)
	jobOrder := shuffle.Permute(t.opts.src, r.state.JobTitles)

	for _, job := range jobOrder {
		eligible := r.eligible(pool)
		if len(eligible) == 0 {
			r.skip(job)
			continue
		}

		s, level := t.pick(r.state.History, eligible, job)
		switch level {
		case tierUnheld:
			r.notify(types.Notice{
				Kind:    types.NoticeFallbackRecent,
				Message: fmt.Sprintf("student %d assigned %q despite recent history, no better option", s, job),
				Student: s,
				Job:     job,
			})
		case tierRepeat:
			r.notify(types.Notice{
				Kind: types.NoticeFallbackRepeat,
				Message: fmt.Sprintf("student %d assigned %q despite having held this job before, all eligible students have",
					s, job),
				Student: s,
				Job:     job,
			})
		}

		r.record(s, job)
	}

	return r.finish(t.opts)
}

// pick selects a student for job from a non-empty eligible list.
func (t *Tiered) pick(history types.HistoryLog, eligible []types.Student, job types.JobTitle) (types.Student, tier) {
	for _, s := range eligible {
		if !history.HeldRecently(s, job, t.opts.recentWindow) {
			return s, tierFresh
		}
	}

	for _, s := range eligible {
		if !history.Held(s, job) {
			return s, tierUnheld
		}
	}

	return eligible[0], tierRepeat
}
