// Package rota assigns rotating classroom jobs to students with long-run fairness.
//
// Every week each job goes to a different student. Over time every student
// performs every job, no student repeats a job too soon, and a fairness cycle
// guarantees that every student is assigned before anyone starts a new round.
//
// # Quick Start
//
//	import (
//	    "github.com/arloliu/rota"
//	    "github.com/arloliu/rota/store"
//	)
//
//	cfg := rota.DefaultConfig()
//	svc, err := rota.NewService(&cfg, store.NewMemory())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := svc.Assign(ctx, "room-12")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, n := range res.Notices {
//	    fmt.Println(n.Message)
//	}
//
// # Architecture
//
// The library is split into pure state transitions and an orchestration layer:
//
//   - types: AppState, Notice, sentinel errors and the collaborator interfaces
//   - roster: invariant checks, roster edits and reset operations
//   - strategy: the assignment engine (Tiered and RoundRobin)
//   - store: StateStore implementations (NATS JetStream KV, in-memory)
//   - Service (this package): load, transition, compare-and-swap save, then
//     logs, metrics and hooks
//
// A Service operation never applies a state that failed to save. Concurrent
// writers to one namespace are detected through store revisions and surface
// as ErrRevisionConflict.
//
// # Tiered assignment
//
// For each job, in random order, the tiered strategy picks from a randomly
// ordered pool of students not yet assigned this week:
//
//  1. the first student whose recent history (RecentWindow entries) lacks the job
//  2. otherwise the first student who never held the job (NoticeFallbackRecent)
//  3. otherwise the first student (NoticeFallbackRepeat)
//
// Notices are advisories returned next to the new state; they never abort an
// operation.
package rota
