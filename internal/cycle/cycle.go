// Package cycle implements the fairness-cycle queue bookkeeping.
//
// The queue lists the students still owed an assignment in the current cycle.
// A student leaves the queue when assigned; an empty queue is refilled with a
// shuffled copy of the whole roster before the next run assigns anyone.
package cycle

import (
	"github.com/arloliu/rota/internal/shuffle"
	"github.com/arloliu/rota/types"
)

// Refill returns a new queue holding a random permutation of students.
func Refill(src shuffle.Source, students []types.Student) types.CycleQueue {
	return types.CycleQueue(shuffle.Permute(src, students))
}

// Remove returns queue without s, preserving the order of the remaining students.
// The input queue is not modified.
func Remove(queue types.CycleQueue, s types.Student) types.CycleQueue {
	out := make(types.CycleQueue, 0, len(queue))
	for _, q := range queue {
		if q != s {
			out = append(out, q)
		}
	}

	return out
}

// Contains reports whether s is in queue.
func Contains(queue types.CycleQueue, s types.Student) bool {
	for _, q := range queue {
		if q == s {
			return true
		}
	}

	return false
}

// Filter returns the queue restricted to members of students. Order is
// preserved and only the first occurrence of a student is kept.
func Filter(queue types.CycleQueue, students []types.Student) types.CycleQueue {
	roster := make(map[types.Student]struct{}, len(students))
	for _, s := range students {
		roster[s] = struct{}{}
	}

	seen := make(map[types.Student]struct{}, len(queue))
	out := make(types.CycleQueue, 0, len(queue))
	for _, q := range queue {
		if _, ok := roster[q]; !ok {
			continue
		}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}

	return out
}
