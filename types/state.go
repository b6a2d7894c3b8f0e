package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// AppState is the complete state of one classroom rotation.
//
// AppState is a value: operations take a state and return a new one. Because
// the containers are maps and slices, every operation that returns a modified
// state starts from Clone() so the caller's value is never mutated.
type AppState struct {
	// Students is the student roster in display order.
	Students []Student

	// JobTitles is the job roster in display order.
	JobTitles []JobTitle

	// CurrentAssignments holds this week's assignments.
	CurrentAssignments AssignmentMap

	// CycleQueue holds the students not yet assigned in the current fairness cycle.
	CycleQueue CycleQueue

	// History holds every past assignment per student, oldest first.
	History HistoryLog

	// LastAssignment is when assignments were last generated (nil if never or cleared).
	LastAssignment *time.Time
}

// Clone returns a deep copy of the state.
//
// Returns:
//   - AppState: Copy sharing no maps, slices or pointers with s
func (s AppState) Clone() AppState {
	out := AppState{
		Students:           append([]Student(nil), s.Students...),
		JobTitles:          append([]JobTitle(nil), s.JobTitles...),
		CurrentAssignments: s.CurrentAssignments.Clone(),
		CycleQueue:         append(CycleQueue(nil), s.CycleQueue...),
		History:            s.History.Clone(),
	}
	if s.LastAssignment != nil {
		ts := *s.LastAssignment
		out.LastAssignment = &ts
	}

	return out
}

// HasStudent reports whether id is in the student roster.
func (s AppState) HasStudent(id Student) bool {
	for _, st := range s.Students {
		if st == id {
			return true
		}
	}

	return false
}

// HasJobTitle reports whether title is in the job roster.
func (s AppState) HasJobTitle(title JobTitle) bool {
	for _, j := range s.JobTitles {
		if j == title {
			return true
		}
	}

	return false
}

// wireState is the persisted form of AppState. Map keys are stringified
// student ids so the document stays valid JSON for any key type.
type wireState struct {
	Students                []int               `json:"students"`
	JobTitles               []string            `json:"jobTitles"`
	CurrentAssignments      map[string]string   `json:"currentAssignments"`
	CycleQueue              []int               `json:"cycleQueue"`
	History                 map[string][]string `json:"history"`
	LastAssignmentTimestamp string              `json:"lastAssignmentTimestamp,omitempty"`
}

// MarshalJSON encodes the state in its persisted form.
func (s AppState) MarshalJSON() ([]byte, error) {
	w := wireState{
		Students:           make([]int, len(s.Students)),
		JobTitles:          make([]string, len(s.JobTitles)),
		CurrentAssignments: make(map[string]string, len(s.CurrentAssignments)),
		CycleQueue:         make([]int, len(s.CycleQueue)),
		History:            make(map[string][]string, len(s.History)),
	}
	for i, st := range s.Students {
		w.Students[i] = int(st)
	}
	for i, j := range s.JobTitles {
		w.JobTitles[i] = string(j)
	}
	for st, j := range s.CurrentAssignments {
		w.CurrentAssignments[st.String()] = string(j)
	}
	for i, st := range s.CycleQueue {
		w.CycleQueue[i] = int(st)
	}
	for st, jobs := range s.History {
		entries := make([]string, len(jobs))
		for i, j := range jobs {
			entries[i] = string(j)
		}
		w.History[st.String()] = entries
	}
	if s.LastAssignment != nil {
		w.LastAssignmentTimestamp = s.LastAssignment.Format(time.RFC3339Nano)
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the persisted form. Absent containers decode as empty
// (non-nil) containers.
func (s *AppState) UnmarshalJSON(data []byte) error {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	out := AppState{
		Students:           make([]Student, len(w.Students)),
		JobTitles:          make([]JobTitle, len(w.JobTitles)),
		CurrentAssignments: make(AssignmentMap, len(w.CurrentAssignments)),
		CycleQueue:         make(CycleQueue, len(w.CycleQueue)),
		History:            make(HistoryLog, len(w.History)),
	}
	for i, st := range w.Students {
		out.Students[i] = Student(st)
	}
	for i, j := range w.JobTitles {
		out.JobTitles[i] = JobTitle(j)
	}
	for key, j := range w.CurrentAssignments {
		st, err := parseStudentKey(key)
		if err != nil {
			return fmt.Errorf("currentAssignments: %w", err)
		}
		out.CurrentAssignments[st] = JobTitle(j)
	}
	for i, st := range w.CycleQueue {
		out.CycleQueue[i] = Student(st)
	}
	for key, entries := range w.History {
		st, err := parseStudentKey(key)
		if err != nil {
			return fmt.Errorf("history: %w", err)
		}
		jobs := make([]JobTitle, len(entries))
		for i, j := range entries {
			jobs[i] = JobTitle(j)
		}
		out.History[st] = jobs
	}
	if w.LastAssignmentTimestamp != "" {
		ts, err := time.Parse(time.RFC3339Nano, w.LastAssignmentTimestamp)
		if err != nil {
			return fmt.Errorf("lastAssignmentTimestamp: %w", err)
		}
		out.LastAssignment = &ts
	}

	*s = out

	return nil
}

func parseStudentKey(key string) (Student, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("invalid student key %q: %w", key, err)
	}
	// "01" or "+1" would alias another entry for the same student.
	if strconv.Itoa(id) != key {
		return 0, fmt.Errorf("invalid student key %q: not in canonical form", key)
	}

	return Student(id), nil
}
