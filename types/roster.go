package types

import "strconv"

// Student identifies a student in the roster. Valid identifiers are positive.
type Student int

// String returns the decimal form of the identifier, which is also the key
// used for the student in the serialized state.
func (s Student) String() string {
	return strconv.Itoa(int(s))
}

// Valid reports whether the identifier is positive.
func (s Student) Valid() bool {
	return s > 0
}

// JobTitle is a classroom job label. Titles are compared case-sensitively.
type JobTitle string

// AssignmentMap maps a student to the job they hold for the current week.
//
// A student holds at most one job and a job appears as a value at most once.
type AssignmentMap map[Student]JobTitle

// Clone returns an independent copy of the map. A nil map clones to an empty map.
func (m AssignmentMap) Clone() AssignmentMap {
	out := make(AssignmentMap, len(m))
	for s, j := range m {
		out[s] = j
	}

	return out
}

// HolderOf returns the student currently holding job, if any.
func (m AssignmentMap) HolderOf(job JobTitle) (Student, bool) {
	for s, j := range m {
		if j == job {
			return s, true
		}
	}

	return 0, false
}

// HistoryLog records, per student, every job they were assigned, oldest first.
type HistoryLog map[Student][]JobTitle

// Clone returns a deep copy of the log. A nil log clones to an empty log.
func (h HistoryLog) Clone() HistoryLog {
	out := make(HistoryLog, len(h))
	for s, jobs := range h {
		out[s] = append([]JobTitle(nil), jobs...)
	}

	return out
}

// Recent returns at most the last n entries of the student's history.
func (h HistoryLog) Recent(s Student, n int) []JobTitle {
	jobs := h[s]
	if n <= 0 {
		return nil
	}
	if len(jobs) <= n {
		return jobs
	}

	return jobs[len(jobs)-n:]
}

// Held reports whether the student has ever been assigned job.
func (h HistoryLog) Held(s Student, job JobTitle) bool {
	return containsJob(h[s], job)
}

// HeldRecently reports whether job is among the student's last n entries.
func (h HistoryLog) HeldRecently(s Student, job JobTitle, n int) bool {
	return containsJob(h.Recent(s, n), job)
}

func containsJob(jobs []JobTitle, job JobTitle) bool {
	for _, j := range jobs {
		if j == job {
			return true
		}
	}

	return false
}

// CycleQueue lists the students still owed an assignment in the current
// fairness cycle.
type CycleQueue []Student
