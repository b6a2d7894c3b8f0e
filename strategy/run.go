package strategy

import (
	"fmt"

	"github.com/arloliu/rota/internal/cycle"
	"github.com/arloliu/rota/roster"
	"github.com/arloliu/rota/types"
)

// run is the working copy of one assignment run.
//
// It owns a validated clone of the input state, so recording assignments never
// touches the caller's value.
type run struct {
	state    types.AppState
	next     types.AssignmentMap
	assigned map[types.Student]struct{}
	notices  []types.Notice
}

// begin validates the input and performs the steps shared by every strategy
// before selection starts: the empty-roster check, the unassigned-jobs
// advisory and the cycle refill.
//
// Returns:
//   - *run: Working copy ready for selection
//   - bool: true when the run is over already (empty roster)
//   - error: Wrapped types.ErrInvariantViolation for malformed input
func begin(state types.AppState, o options) (*run, bool, error) {
	validated, err := roster.Validate(state)
	if err != nil {
		return nil, false, err
	}

	r := &run{
		state:    validated,
		next:     make(types.AssignmentMap, len(validated.JobTitles)),
		assigned: make(map[types.Student]struct{}, len(validated.Students)),
	}

	students, jobs := len(validated.Students), len(validated.JobTitles)
	if students == 0 || jobs == 0 {
		r.notify(types.Notice{
			Kind:    types.NoticeEmptyRoster,
			Message: "cannot assign: empty roster",
		})

		return r, true, nil
	}

	if jobs > students {
		r.notify(types.Notice{
			Kind: types.NoticeUnassignedJobs,
			Message: fmt.Sprintf("%d job(s) will go unassigned this week: %d jobs for %d students",
				jobs-students, jobs, students),
		})
	}

	if len(r.state.CycleQueue) == 0 {
		r.state.CycleQueue = cycle.Refill(o.src, r.state.Students)
		r.notify(types.Notice{
			Kind:    types.NoticeCycleRefilled,
			Message: fmt.Sprintf("new fairness cycle started with %d students", students),
		})
	}

	return r, false, nil
}

func (r *run) notify(n types.Notice) {
	r.notices = append(r.notices, n)
}

// isAssigned reports whether s already holds a job this week.
func (r *run) isAssigned(s types.Student) bool {
	_, ok := r.assigned[s]
	return ok
}

// eligible returns the students of pool not assigned yet, in pool order.
func (r *run) eligible(pool []types.Student) []types.Student {
	out := make([]types.Student, 0, len(pool))
	for _, s := range pool {
		if !r.isAssigned(s) {
			out = append(out, s)
		}
	}

	return out
}

// skip records that job could not be filled.
func (r *run) skip(job types.JobTitle) {
	r.notify(types.Notice{
		Kind:    types.NoticeInsufficientStudents,
		Message: "not enough unique students to assign all jobs this week; some jobs skipped",
		Job:     job,
	})
}

// record assigns job to s: the assignment, the history entry and the cycle
// queue removal happen together.
func (r *run) record(s types.Student, job types.JobTitle) {
	r.next[s] = job
	r.assigned[s] = struct{}{}
	r.state.History[s] = append(r.state.History[s], job)
	r.state.CycleQueue = cycle.Remove(r.state.CycleQueue, s)
}

// finish installs the new assignments and timestamp and raises the
// cycle-completed notice when the queue ran empty.
func (r *run) finish(o options) (types.AppState, []types.Notice, error) {
	if len(r.state.CycleQueue) == 0 {
		r.notify(types.Notice{
			Kind:    types.NoticeCycleCompleted,
			Message: "fairness cycle complete: every student was assigned; the next run starts a new cycle",
		})
	}

	now := o.now()
	r.state.CurrentAssignments = r.next
	r.state.LastAssignment = &now

	return r.state, r.notices, nil
}
