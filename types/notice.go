package types

// NoticeKind classifies a Notice.
type NoticeKind int

const (
	// NoticeEmptyRoster indicates the run was skipped because the student or job roster is empty.
	NoticeEmptyRoster NoticeKind = iota

	// NoticeUnassignedJobs indicates there are more jobs than students, so some jobs stay open.
	NoticeUnassignedJobs

	// NoticeInsufficientStudents indicates a job was skipped because no eligible student was left.
	NoticeInsufficientStudents

	// NoticeFallbackRecent indicates a tier-2 pick: no eligible student was free of the
	// job in their recent history, so one who never held it at all was chosen.
	NoticeFallbackRecent

	// NoticeFallbackRepeat indicates a tier-3 pick: every eligible student has held the job.
	NoticeFallbackRepeat

	// NoticeCycleRefilled indicates a new fairness cycle started with a reshuffled queue.
	NoticeCycleRefilled

	// NoticeCycleCompleted indicates every student was assigned in the current cycle.
	NoticeCycleCompleted
)

// String returns the snake_case label of the kind.
//
// Returns:
//   - string: Label suitable for logs and metric labels
func (k NoticeKind) String() string {
	switch k {
	case NoticeEmptyRoster:
		return "empty_roster"
	case NoticeUnassignedJobs:
		return "unassigned_jobs"
	case NoticeInsufficientStudents:
		return "insufficient_students"
	case NoticeFallbackRecent:
		return "fallback_recent"
	case NoticeFallbackRepeat:
		return "fallback_repeat"
	case NoticeCycleRefilled:
		return "cycle_refilled"
	case NoticeCycleCompleted:
		return "cycle_completed"
	default:
		return "unknown"
	}
}

// IsWarning reports whether the kind is a warning rather than an informational notice.
func (k NoticeKind) IsWarning() bool {
	switch k {
	case NoticeCycleRefilled, NoticeCycleCompleted:
		return false
	default:
		return true
	}
}

// Notice is a non-fatal advisory returned alongside a new state.
//
// Notices are data for the caller to display; they never abort an operation.
type Notice struct {
	// Kind classifies the notice.
	Kind NoticeKind `json:"kind"`

	// Message is a human-readable description.
	Message string `json:"message"`

	// Student is the student involved, zero when not applicable.
	Student Student `json:"student,omitempty"`

	// Job is the job involved, empty when not applicable.
	Job JobTitle `json:"job,omitempty"`
}

// String returns the human-readable message.
func (n Notice) String() string {
	return n.Message
}
