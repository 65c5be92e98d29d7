package audit

import (
	"sync"
	"time"

	"pos-engine/internal/domain/actor"
	"pos-engine/internal/pkg/clock"
)

// Capacity bounds the in-memory trail; the oldest entries fall off silently.
const Capacity = 100

type Entry struct {
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Actor       string    `json:"actor"`
	IsError     bool      `json:"is_error"`
}

// Recorder is the best-effort action log consumed by the engine. Logging
// never returns an error: a failed audit write must not abort the operation
// that triggered it.
type Recorder interface {
	Log(description string, a actor.Actor, isError bool)
	Entries() []Entry
}

// RingRecorder keeps the newest Capacity entries, newest first.
type RingRecorder struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries []Entry
}

func NewRingRecorder(c clock.Clock) *RingRecorder {
	return &RingRecorder{clock: c}
}

func (r *RingRecorder) Log(description string, a actor.Actor, isError bool) {
	who := a.Email
	if who == "" {
		who = actor.System.Email
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Entry, 0, min(len(r.entries)+1, Capacity))
	next = append(next, Entry{
		Timestamp:   r.clock.Now(),
		Description: description,
		Actor:       who,
		IsError:     isError,
	})
	keep := r.entries
	if len(keep) > Capacity-1 {
		keep = keep[:Capacity-1]
	}
	r.entries = append(next, keep...)
}

// Entries returns a copy of the trail, newest first.
func (r *RingRecorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
