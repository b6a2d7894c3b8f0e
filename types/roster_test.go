package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryLog_Recent(t *testing.T) {
	h := HistoryLog{1: {"A", "B", "A"}}

	require.Equal(t, []JobTitle{"B", "A"}, h.Recent(1, 2))
	require.Equal(t, []JobTitle{"A", "B", "A"}, h.Recent(1, 5))
	require.Empty(t, h.Recent(1, 0))
	require.Empty(t, h.Recent(2, 2))
}

func TestHistoryLog_Held(t *testing.T) {
	h := HistoryLog{1: {"A", "B", "C"}}

	require.True(t, h.Held(1, "A"))
	require.False(t, h.Held(1, "D"))
	require.False(t, h.Held(2, "A"))

	require.False(t, h.HeldRecently(1, "A", 2))
	require.True(t, h.HeldRecently(1, "B", 2))
	require.True(t, h.HeldRecently(1, "A", 3))
}

func TestAssignmentMap_HolderOf(t *testing.T) {
	m := AssignmentMap{4: "Messenger", 7: "Librarian"}

	s, ok := m.HolderOf("Librarian")
	require.True(t, ok)
	require.Equal(t, Student(7), s)

	_, ok = m.HolderOf("Door Holder")
	require.False(t, ok)
}

func TestStudent(t *testing.T) {
	require.Equal(t, "12", Student(12).String())
	require.True(t, Student(1).Valid())
	require.False(t, Student(0).Valid())
	require.False(t, Student(-3).Valid())
}

func TestNoticeKind(t *testing.T) {
	tests := []struct {
		kind    NoticeKind
		label   string
		warning bool
	}{
		{NoticeEmptyRoster, "empty_roster", true},
		{NoticeUnassignedJobs, "unassigned_jobs", true},
		{NoticeInsufficientStudents, "insufficient_students", true},
		{NoticeFallbackRecent, "fallback_recent", true},
		{NoticeFallbackRepeat, "fallback_repeat", true},
		{NoticeCycleRefilled, "cycle_refilled", false},
		{NoticeCycleCompleted, "cycle_completed", false},
		{NoticeKind(999), "unknown", true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			require.Equal(t, tt.label, tt.kind.String())
			require.Equal(t, tt.warning, tt.kind.IsWarning())
		})
	}

	require.Equal(t, "hello", Notice{Message: "hello"}.String())
}
