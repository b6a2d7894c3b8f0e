package roster

import (
	"github.com/arloliu/rota/internal/cycle"
	"github.com/arloliu/rota/internal/shuffle"
	"github.com/arloliu/rota/types"
)

// ClearCurrentAssignments empties this week's assignments and clears the
// timestamp. History and the cycle queue are untouched.
func ClearCurrentAssignments(state types.AppState) types.AppState {
	out := state.Clone()
	out.CurrentAssignments = types.AssignmentMap{}
	out.LastAssignment = nil

	return out
}

// ResetAssignmentHistory empties assignments and history and starts a new
// fairness cycle with a fresh permutation of the current roster. Rosters are
// untouched.
//
// Parameters:
//   - state: Current state
//   - src: Random source for the new cycle (nil means the process-wide generator)
func ResetAssignmentHistory(state types.AppState, src shuffle.Source) types.AppState {
	out := state.Clone()
	out.CurrentAssignments = types.AssignmentMap{}
	out.History = types.HistoryLog{}
	out.CycleQueue = cycle.Refill(src, out.Students)
	out.LastAssignment = nil

	return out
}

// ResetAll replaces the rosters and drops every piece of derived state.
//
// Empty fallbacks select the built-in DefaultStudents and DefaultJobTitles.
// Nothing of the previous state survives.
//
// Parameters:
//   - state: Current state
//   - students: New student roster (empty for the built-in default)
//   - jobTitles: New job roster (empty for the built-in default)
//   - src: Random source for the new cycle (nil means the process-wide generator)
//
// Returns:
//   - types.AppState: New state
//   - error: Wrapped types.ErrInvariantViolation for malformed rosters
func ResetAll(
	_ types.AppState,
	students []types.Student,
	jobTitles []types.JobTitle,
	src shuffle.Source,
) (types.AppState, error) {
	if len(students) == 0 {
		students = DefaultStudents()
	}
	if len(jobTitles) == 0 {
		jobTitles = DefaultJobTitles()
	}

	out, err := NewState(students, jobTitles)
	if err != nil {
		return types.AppState{}, err
	}
	out.CycleQueue = cycle.Refill(src, out.Students)

	return out, nil
}
