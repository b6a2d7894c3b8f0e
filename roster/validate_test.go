package roster

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func TestValidate(t *testing.T) {
	t.Run("rejects malformed rosters", func(t *testing.T) {
		tests := []struct {
			name  string
			state types.AppState
		}{
			{"duplicate student", types.AppState{Students: []types.Student{1, 2, 1}}},
			{"zero student", types.AppState{Students: []types.Student{0}}},
			{"negative student", types.AppState{Students: []types.Student{4, -1}}},
			{"duplicate job", types.AppState{JobTitles: []types.JobTitle{"A", "B", "A"}}},
			{"empty job", types.AppState{JobTitles: []types.JobTitle{""}}},
			{"whitespace job", types.AppState{JobTitles: []types.JobTitle{"A", "  \t"}}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Validate(tt.state)
				require.ErrorIs(t, err, types.ErrInvariantViolation)
			})
		}
	})

	t.Run("job titles are case-sensitive", func(t *testing.T) {
		_, err := Validate(types.AppState{JobTitles: []types.JobTitle{"Messenger", "messenger"}})
		require.NoError(t, err)
	})

	t.Run("reconciles the cycle queue against the roster", func(t *testing.T) {
		in := types.AppState{
			Students:   []types.Student{1, 2, 3},
			CycleQueue: types.CycleQueue{3, 8, 1, 3},
		}

		out, err := Validate(in)
		require.NoError(t, err)
		require.Equal(t, types.CycleQueue{3, 1}, out.CycleQueue)
		require.Equal(t, types.CycleQueue{3, 8, 1, 3}, in.CycleQueue, "input must not change")
	})

	t.Run("reconciles current assignments", func(t *testing.T) {
		in := types.AppState{
			Students:  []types.Student{1, 2, 3},
			JobTitles: []types.JobTitle{"A", "B"},
			CurrentAssignments: types.AssignmentMap{
				1: "A",
				2: "A", // duplicate job, lower id keeps it
				3: " ",
				9: "B", // not in roster
			},
		}

		out, err := Validate(in)
		require.NoError(t, err)
		require.Equal(t, types.AssignmentMap{1: "A"}, out.CurrentAssignments)
	})

	t.Run("keeps history of departed students and removed jobs", func(t *testing.T) {
		in := types.AppState{
			Students:  []types.Student{1},
			JobTitles: []types.JobTitle{"A"},
			History:   types.HistoryLog{1: {"Z"}, 5: {"A"}},
		}

		out, err := Validate(in)
		require.NoError(t, err)
		require.Equal(t, in.History, out.History)
	})

	t.Run("fills nil containers", func(t *testing.T) {
		out, err := Validate(types.AppState{})
		require.NoError(t, err)
		require.NotNil(t, out.CurrentAssignments)
		require.NotNil(t, out.History)
		require.NotNil(t, out.CycleQueue)
	})
}
