package store

import (
	"encoding/json"
	"time"

	"github.com/arloliu/rota/types"
)

func sampleState() types.AppState {
	ts := time.Date(2026, time.September, 7, 9, 30, 0, 0, time.UTC)

	return types.AppState{
		Students:           []types.Student{1, 2, 3},
		JobTitles:          []types.JobTitle{"Line Leader", "Messenger"},
		CurrentAssignments: types.AssignmentMap{1: "Messenger", 3: "Line Leader"},
		CycleQueue:         types.CycleQueue{2},
		History: types.HistoryLog{
			1: {"Line Leader", "Messenger"},
			3: {"Line Leader"},
		},
		LastAssignment: &ts,
	}
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return data
}
