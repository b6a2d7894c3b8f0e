// Package roster guards the invariants of a rotation state and provides the
// whole-state-replacing edits applied to it.
//
// Every function takes a types.AppState by value and returns a new one; the
// input is never modified. Malformed rosters are reported with
// types.ErrInvariantViolation, while stale references left behind by roster
// changes (cycle-queue entries or assignments for removed students) are
// silently reconciled by Validate.
//
// Edits:
//   - AddStudent, RemoveStudent: roster edits; removal cascades to the current
//     assignment, the cycle queue and the student's history
//   - AddJobTitle, RemoveJobTitle: job roster edits; history is kept
//
// Resets:
//   - ClearCurrentAssignments: drops this week's assignments only
//   - ResetAssignmentHistory: drops assignments and history, starts a new cycle
//   - ResetAll: replaces the rosters and drops all derived state
package roster
