package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func TestTiered_Assign(t *testing.T) {
	t.Run("three students two jobs", func(t *testing.T) {
		in := types.AppState{
			Students:   students(3),
			JobTitles:  jobs("A", "B"),
			CycleQueue: types.CycleQueue{1, 2, 3},
		}

		out, notices, err := newSeededTiered(1).Assign(in)
		require.NoError(t, err)

		require.Len(t, out.CurrentAssignments, 2)
		requireUniqueAssignments(t, out)

		for s, job := range out.CurrentAssignments {
			require.Equal(t, []types.JobTitle{job}, out.History[s])
		}
		require.Len(t, out.History, 2)

		require.Len(t, out.CycleQueue, 1)
		_, assigned := out.CurrentAssignments[out.CycleQueue[0]]
		require.False(t, assigned, "the queue must hold the one unassigned student")

		require.Empty(t, notices)
		require.NotNil(t, out.LastAssignment)
		require.Equal(t, fixedNow, *out.LastAssignment)
	})

	t.Run("empty student roster", func(t *testing.T) {
		in := types.AppState{JobTitles: jobs("A")}

		out, notices, err := newSeededTiered(1).Assign(in)
		require.NoError(t, err)

		require.Empty(t, out.CurrentAssignments)
		require.Nil(t, out.LastAssignment)
		require.Equal(t, []types.NoticeKind{types.NoticeEmptyRoster}, kinds(notices))
		require.Equal(t, "cannot assign: empty roster", notices[0].Message)
	})

	t.Run("empty job roster leaves state unchanged", func(t *testing.T) {
		in := types.AppState{
			Students:           students(2),
			CurrentAssignments: types.AssignmentMap{1: "Old"},
			CycleQueue:         types.CycleQueue{2},
			History:            types.HistoryLog{1: {"Old"}},
		}

		out, notices, err := newSeededTiered(1).Assign(in)
		require.NoError(t, err)

		require.Equal(t, in.CurrentAssignments, out.CurrentAssignments)
		require.Equal(t, in.CycleQueue, out.CycleQueue)
		require.Equal(t, in.History, out.History)
		require.Equal(t, []types.NoticeKind{types.NoticeEmptyRoster}, kinds(notices))
	})

	t.Run("only eligible student repeats a job", func(t *testing.T) {
		in := types.AppState{
			Students:   students(1),
			JobTitles:  jobs("A"),
			CycleQueue: types.CycleQueue{1},
			History:    types.HistoryLog{1: {"A", "B", "A"}},
		}

		out, notices, err := newSeededTiered(1).Assign(in)
		require.NoError(t, err)

		require.Equal(t, types.AssignmentMap{1: "A"}, out.CurrentAssignments)
		require.Equal(t, []types.JobTitle{"A", "B", "A", "A"}, out.History[1])

		require.Equal(t, 1, countKind(notices, types.NoticeFallbackRepeat))
		for _, n := range notices {
			if n.Kind == types.NoticeFallbackRepeat {
				require.Equal(t, types.Student(1), n.Student)
				require.Equal(t, types.JobTitle("A"), n.Job)
				require.Contains(t, n.Message, "held this job before")
			}
		}
	})

	t.Run("rejects duplicate students", func(t *testing.T) {
		in := types.AppState{Students: []types.Student{1, 1}, JobTitles: jobs("A")}

		out, notices, err := newSeededTiered(1).Assign(in)
		require.ErrorIs(t, err, types.ErrInvariantViolation)
		require.Nil(t, notices)
		require.Empty(t, out.Students)
	})

	t.Run("does not modify the input", func(t *testing.T) {
		in := types.AppState{
			Students:           students(4),
			JobTitles:          jobs("A", "B"),
			CurrentAssignments: types.AssignmentMap{2: "B"},
			CycleQueue:         types.CycleQueue{4, 3},
			History:            types.HistoryLog{1: {"A"}, 2: {"B"}},
		}
		before := in.Clone()

		_, _, err := newSeededTiered(9).Assign(in)
		require.NoError(t, err)
		require.Equal(t, before, in)
	})
}

func TestTiered_MoreJobsThanStudents(t *testing.T) {
	in := types.AppState{
		Students:  students(2),
		JobTitles: jobs("A", "B", "C", "D"),
	}

	out, notices, err := newSeededTiered(3).Assign(in)
	require.NoError(t, err)

	require.Len(t, out.CurrentAssignments, 2)
	requireUniqueAssignments(t, out)

	require.Equal(t, types.NoticeUnassignedJobs, notices[0].Kind)
	require.Equal(t, 2, countKind(notices, types.NoticeInsufficientStudents))
	require.Equal(t, 1, countKind(notices, types.NoticeCycleRefilled))
	require.Equal(t, 1, countKind(notices, types.NoticeCycleCompleted))
}

func TestTiered_UniquenessAcrossSeeds(t *testing.T) {
	shapes := []struct {
		students int
		jobs     []types.JobTitle
	}{
		{5, jobs("A", "B", "C")},
		{3, jobs("A", "B", "C")},
		{2, jobs("A", "B", "C", "D", "E")},
		{8, jobs("A")},
	}

	for _, shape := range shapes {
		state := types.AppState{Students: students(shape.students), JobTitles: shape.jobs}
		strat := newSeededTiered(uint64(shape.students))

		for week := range 25 {
			next, _, err := strat.Assign(state)
			require.NoError(t, err)
			requireUniqueAssignments(t, next)

			want := min(shape.students, len(shape.jobs))
			require.Len(t, next.CurrentAssignments, want, "week %d", week)
			if shape.students >= len(shape.jobs) {
				for _, j := range shape.jobs {
					_, ok := next.CurrentAssignments.HolderOf(j)
					require.True(t, ok, "job %q unassigned in week %d", j, week)
				}
			}

			state = next
		}
	}
}

func TestTiered_PrefersStudentsWithoutRecentRepeat(t *testing.T) {
	in := types.AppState{
		Students:   students(3),
		JobTitles:  jobs("A"),
		CycleQueue: types.CycleQueue{1, 2, 3},
		History: types.HistoryLog{
			1: {"B", "A"},
			2: {"A", "C"},
			3: {"C", "D", "A", "E", "F"}, // A is outside the last two entries
		},
	}

	for seed := range uint64(30) {
		out, notices, err := newSeededTiered(seed).Assign(in)
		require.NoError(t, err)

		require.Equal(t, types.AssignmentMap{3: "A"}, out.CurrentAssignments, "seed %d", seed)
		require.Zero(t, countKind(notices, types.NoticeFallbackRecent))
		require.Zero(t, countKind(notices, types.NoticeFallbackRepeat))
	}
}

func TestTiered_RecentWindow(t *testing.T) {
	in := types.AppState{
		Students:   students(2),
		JobTitles:  jobs("A"),
		CycleQueue: types.CycleQueue{1, 2},
		History: types.HistoryLog{
			1: {"A", "B", "C"},
			2: {"A"},
		},
	}

	t.Run("default window of two", func(t *testing.T) {
		require.Equal(t, DefaultRecentWindow, newSeededTiered(1).RecentWindow())

		for seed := range uint64(20) {
			out, _, err := newSeededTiered(seed).Assign(in)
			require.NoError(t, err)
			require.Equal(t, types.AssignmentMap{1: "A"}, out.CurrentAssignments)
		}
	})

	t.Run("wider window falls through to a repeat", func(t *testing.T) {
		out, notices, err := newSeededTiered(1, WithRecentWindow(3)).Assign(in)
		require.NoError(t, err)

		require.Len(t, out.CurrentAssignments, 1)
		require.Equal(t, 1, countKind(notices, types.NoticeFallbackRepeat))
	})

	t.Run("invalid window is ignored", func(t *testing.T) {
		require.Equal(t, DefaultRecentWindow, NewTiered(WithRecentWindow(0)).RecentWindow())
	})
}

func TestTiered_CycleBookkeeping(t *testing.T) {
	t.Run("refills an empty queue before assigning", func(t *testing.T) {
		in := types.AppState{Students: students(4), JobTitles: jobs("A")}

		out, notices, err := newSeededTiered(2).Assign(in)
		require.NoError(t, err)

		require.Equal(t, types.NoticeCycleRefilled, notices[0].Kind)
		require.Len(t, out.CycleQueue, 3)
		for s := range out.CurrentAssignments {
			require.NotContains(t, out.CycleQueue, s)
		}
	})

	t.Run("stale queue entries are dropped", func(t *testing.T) {
		in := types.AppState{
			Students:   students(3),
			JobTitles:  jobs("A"),
			CycleQueue: types.CycleQueue{9, 2, 8},
		}

		out, _, err := newSeededTiered(2).Assign(in)
		require.NoError(t, err)
		for _, s := range out.CycleQueue {
			require.True(t, out.HasStudent(s))
		}
	})

	t.Run("every student leaves the queue before anyone re-enters", func(t *testing.T) {
		state := types.AppState{Students: students(6), JobTitles: jobs("A", "B")}
		strat := newSeededTiered(77)

		var inCycle map[types.Student]bool
		cycles := 0
		for week := 0; week < 300 && cycles < 3; week++ {
			next, notices, err := strat.Assign(state)
			require.NoError(t, err)

			if countKind(notices, types.NoticeCycleRefilled) == 1 {
				require.Nil(t, inCycle, "cycle refilled before the previous one completed")
				inCycle = map[types.Student]bool{}
			}
			require.NotNil(t, inCycle)

			// The queue only shrinks within a cycle.
			if countKind(notices, types.NoticeCycleRefilled) == 0 {
				require.LessOrEqual(t, len(next.CycleQueue), len(state.CycleQueue))
			}
			for s := range next.CurrentAssignments {
				inCycle[s] = true
			}

			if countKind(notices, types.NoticeCycleCompleted) == 1 {
				require.Empty(t, next.CycleQueue)
				require.Len(t, inCycle, 6, "every student must be assigned within a cycle")
				inCycle = nil
				cycles++
			}

			state = next
		}

		require.Equal(t, 3, cycles, "cycles must complete on a stable roster")
	})
}

func TestTiered_Deterministic(t *testing.T) {
	in := types.AppState{Students: students(7), JobTitles: jobs("A", "B", "C", "D")}

	a, an, err := newSeededTiered(123).Assign(in)
	require.NoError(t, err)
	b, bn, err := newSeededTiered(123).Assign(in)
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, an, bn)
}

func TestTiered_LongRunCoverage(t *testing.T) {
	// With equal rosters every student should hold every job eventually.
	state := types.AppState{Students: students(4), JobTitles: jobs("A", "B", "C", "D")}
	strat := newSeededTiered(4242)

	for range 60 {
		next, _, err := strat.Assign(state)
		require.NoError(t, err)
		state = next
	}

	for _, s := range state.Students {
		for _, j := range state.JobTitles {
			require.True(t, state.History.Held(s, j), "student %d never held %q", s, j)
		}
	}
}
