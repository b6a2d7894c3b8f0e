package roster

import (
	"fmt"
	"slices"

	"github.com/arloliu/rota/internal/cycle"
	"github.com/arloliu/rota/types"
)

// NewState returns a fresh state for the given rosters with no assignments,
// no history and an empty cycle queue (the first run starts a cycle).
//
// Parameters:
//   - students: Student roster
//   - jobTitles: Job roster
//
// Returns:
//   - types.AppState: New state
//   - error: Wrapped types.ErrInvariantViolation for malformed rosters
func NewState(students []types.Student, jobTitles []types.JobTitle) (types.AppState, error) {
	if err := CheckStudents(students); err != nil {
		return types.AppState{}, err
	}
	if err := CheckJobTitles(jobTitles); err != nil {
		return types.AppState{}, err
	}

	return types.AppState{
		Students:           slices.Clone(students),
		JobTitles:          slices.Clone(jobTitles),
		CurrentAssignments: types.AssignmentMap{},
		CycleQueue:         types.CycleQueue{},
		History:            types.HistoryLog{},
	}, nil
}

// AddStudent appends id to the student roster.
//
// A student joining mid-cycle is appended to a non-empty cycle queue since they
// are owed an assignment in the running cycle. With an empty queue the next
// run refills it with everyone.
//
// Returns:
//   - types.AppState: New state
//   - error: Wrapped types.ErrInvariantViolation for a duplicate or non-positive id
func AddStudent(state types.AppState, id types.Student) (types.AppState, error) {
	if !id.Valid() {
		return types.AppState{}, fmt.Errorf("%w: student id %d is not positive", types.ErrInvariantViolation, id)
	}
	if state.HasStudent(id) {
		return types.AppState{}, fmt.Errorf("%w: duplicate student id %d", types.ErrInvariantViolation, id)
	}

	out := state.Clone()
	out.Students = append(out.Students, id)
	if len(out.CycleQueue) > 0 {
		out.CycleQueue = append(out.CycleQueue, id)
	}

	return out, nil
}

// RemoveStudent removes id from the roster together with their current
// assignment, cycle-queue membership and history.
//
// Returns:
//   - types.AppState: New state
//   - error: Wrapped types.ErrNotFound when id is not in the roster
func RemoveStudent(state types.AppState, id types.Student) (types.AppState, error) {
	if !state.HasStudent(id) {
		return types.AppState{}, fmt.Errorf("student %d: %w", id, types.ErrNotFound)
	}

	out := state.Clone()
	out.Students = slices.DeleteFunc(out.Students, func(s types.Student) bool { return s == id })
	out.CycleQueue = cycle.Remove(out.CycleQueue, id)
	delete(out.CurrentAssignments, id)
	delete(out.History, id)

	return out, nil
}

// AddJobTitle appends title to the job roster.
//
// Returns:
//   - types.AppState: New state
//   - error: Wrapped types.ErrInvariantViolation for a duplicate or blank title
func AddJobTitle(state types.AppState, title types.JobTitle) (types.AppState, error) {
	if isBlank(title) {
		return types.AppState{}, fmt.Errorf("%w: blank job title", types.ErrInvariantViolation)
	}
	if state.HasJobTitle(title) {
		return types.AppState{}, fmt.Errorf("%w: duplicate job title %q", types.ErrInvariantViolation, title)
	}

	out := state.Clone()
	out.JobTitles = append(out.JobTitles, title)

	return out, nil
}

// RemoveJobTitle removes title from the job roster only. History entries and
// this week's assignments that reference it are kept.
//
// Returns:
//   - types.AppState: New state
//   - error: Wrapped types.ErrNotFound when title is not in the roster
func RemoveJobTitle(state types.AppState, title types.JobTitle) (types.AppState, error) {
	if !state.HasJobTitle(title) {
		return types.AppState{}, fmt.Errorf("job title %q: %w", title, types.ErrNotFound)
	}

	out := state.Clone()
	out.JobTitles = slices.DeleteFunc(out.JobTitles, func(j types.JobTitle) bool { return j == title })

	return out, nil
}
