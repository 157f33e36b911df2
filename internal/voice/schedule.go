package voice

import (
	"container/heap"
	"time"
)

type taskKind int

const (
	taskOnset taskKind = iota
	taskDecay
	taskStop
)

// task is one pending audio-clock action: a delayed note start, the
// attack-to-decay envelope transition, or a post-release generator stop.
type task struct {
	at   time.Time
	kind taskKind
	run  func(now time.Time)
	// Onset tasks carry their pitch so StopAll can cancel them before they
	// ever start sounding.
	pitch     int
	cancelled bool
}

// taskQueue is a min-heap of pending tasks ordered by due time.
type taskQueue []*task

func (q taskQueue) Len() int           { return len(q) }
func (q taskQueue) Less(i, j int) bool { return q[i].at.Before(q[j].at) }
func (q taskQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)        { *q = append(*q, x.(*task)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

func (s *Scheduler) schedule(at time.Time, kind taskKind, pitch int, run func(now time.Time)) *task {
	t := &task{at: at, kind: kind, pitch: pitch, run: run}
	heap.Push(&s.tasks, t)
	return t
}

// Advance runs every task due at or before now, in due order. Cancelled tasks
// are discarded silently.
func (s *Scheduler) Advance(now time.Time) {
	for s.tasks.Len() > 0 && !s.tasks[0].at.After(now) {
		t := heap.Pop(&s.tasks).(*task)
		if t.cancelled {
			continue
		}
		t.run(now)
	}
}

// cancelPendingOnsets marks every not-yet-started onset task cancelled.
func (s *Scheduler) cancelPendingOnsets() {
	for _, t := range s.tasks {
		if t.kind == taskOnset {
			t.cancelled = true
		}
	}
}
