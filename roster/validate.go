package roster

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/arloliu/rota/internal/cycle"
	"github.com/arloliu/rota/types"
)

// Validate checks the rosters of state and returns a reconciled copy.
//
// Reconciliation keeps the state usable after roster changes between sessions:
//   - CycleQueue keeps only roster members (first occurrence, order preserved)
//   - CurrentAssignments keeps only roster students with a non-blank job; when
//     two students hold the same job the lower id keeps it
//   - nil containers are replaced with empty ones
//
// History is never touched: it records the past, including students and jobs
// that have since left the rosters.
//
// Parameters:
//   - state: State to validate (not modified)
//
// Returns:
//   - types.AppState: Reconciled copy
//   - error: Wrapped types.ErrInvariantViolation for duplicate or non-positive
//     student ids and duplicate or blank job titles
func Validate(state types.AppState) (types.AppState, error) {
	if err := CheckStudents(state.Students); err != nil {
		return types.AppState{}, err
	}
	if err := CheckJobTitles(state.JobTitles); err != nil {
		return types.AppState{}, err
	}

	out := state.Clone()
	out.CycleQueue = cycle.Filter(out.CycleQueue, out.Students)
	out.CurrentAssignments = reconcileAssignments(out.CurrentAssignments, out.Students)

	return out, nil
}

// CheckStudents reports duplicate or non-positive ids.
func CheckStudents(students []types.Student) error {
	seen := make(map[types.Student]struct{}, len(students))
	for _, s := range students {
		if !s.Valid() {
			return fmt.Errorf("%w: student id %d is not positive", types.ErrInvariantViolation, s)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: duplicate student id %d", types.ErrInvariantViolation, s)
		}
		seen[s] = struct{}{}
	}

	return nil
}

// CheckJobTitles reports duplicate or blank titles. Titles are compared exactly.
func CheckJobTitles(titles []types.JobTitle) error {
	seen := make(map[types.JobTitle]struct{}, len(titles))
	for _, j := range titles {
		if isBlank(j) {
			return fmt.Errorf("%w: blank job title", types.ErrInvariantViolation)
		}
		if _, dup := seen[j]; dup {
			return fmt.Errorf("%w: duplicate job title %q", types.ErrInvariantViolation, j)
		}
		seen[j] = struct{}{}
	}

	return nil
}

func isBlank(j types.JobTitle) bool {
	return strings.TrimSpace(string(j)) == ""
}

func reconcileAssignments(current types.AssignmentMap, students []types.Student) types.AssignmentMap {
	roster := make(map[types.Student]struct{}, len(students))
	for _, s := range students {
		roster[s] = struct{}{}
	}

	out := make(types.AssignmentMap, len(current))
	taken := make(map[types.JobTitle]struct{}, len(current))
	for _, s := range slices.Sorted(maps.Keys(current)) {
		job := current[s]
		if _, ok := roster[s]; !ok || isBlank(job) {
			continue
		}
		if _, dup := taken[job]; dup {
			continue
		}
		taken[job] = struct{}{}
		out[s] = job
	}

	return out
}
