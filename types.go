package rota

import (
	"github.com/arloliu/rota/internal/shuffle"
	"github.com/arloliu/rota/types"
)

// Re-export types from the types package.
//
// Internal packages depend on types rather than on the root package, which
// avoids import cycles while still giving users rota.AppState, rota.Logger
// and friends.
type (
	Student       = types.Student
	JobTitle      = types.JobTitle
	AssignmentMap = types.AssignmentMap
	HistoryLog    = types.HistoryLog
	CycleQueue    = types.CycleQueue
	AppState      = types.AppState
	Notice        = types.Notice
	NoticeKind    = types.NoticeKind
)

// Re-export interfaces from the types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	StateStore         = types.StateStore
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks

	// RandSource is a source of random integers in [0, n). *math/rand/v2.Rand
	// satisfies it.
	RandSource = shuffle.Source
)

// Re-export NoticeKind constants from the types package.
const (
	NoticeEmptyRoster          = types.NoticeEmptyRoster
	NoticeUnassignedJobs       = types.NoticeUnassignedJobs
	NoticeInsufficientStudents = types.NoticeInsufficientStudents
	NoticeFallbackRecent       = types.NoticeFallbackRecent
	NoticeFallbackRepeat       = types.NoticeFallbackRepeat
	NoticeCycleRefilled        = types.NoticeCycleRefilled
	NoticeCycleCompleted       = types.NoticeCycleCompleted
)
