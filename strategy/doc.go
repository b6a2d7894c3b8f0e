// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies produce one week of classroom job assignments from the
// current rotation state. The package includes two built-in strategies:
//
//   - Tiered: Randomized selection that avoids recent repeats first, then all-time
//     repeats, and only repeats a job as a last resort (recommended)
//   - RoundRobin: Deterministic rotation that moves every job to the next student
//
// # Tiered Selection
//
// For every job, in a random order, Tiered walks a random permutation of the
// students not yet assigned this week and picks:
//
//  1. the first student whose last RecentWindow history entries exclude the job
//  2. otherwise the first student who never held the job (fallback_recent notice)
//  3. otherwise the first eligible student (fallback_repeat notice)
//
// An assignment is therefore always produced while any eligible student is left.
//
// A student who never held a job has not held it recently either, so step 2
// only ever sees students step 1 already rejected and never fires in
// practice. It stays in the order for strategies sharing the notice set.
//
// # Fairness Cycle
//
// Both strategies share the cycle bookkeeping: an empty cycle queue is refilled
// with a shuffled copy of the roster before assigning, each assigned student
// leaves the queue, and a cycle_completed notice is raised when it runs empty.
//
// Custom strategies can be implemented by satisfying the types.AssignmentStrategy interface.
package strategy
