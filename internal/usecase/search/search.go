package search

import (
	"context"
	"sync"
	"time"

	"pos-engine/internal/usecase/queries"
)

// DefaultDebounce matches the keystroke cadence the dashboard search was
// tuned for.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces rapid search invocations into one catalog query with
// latest-request-wins semantics: each invocation gets a monotonic sequence
// number, only one timer is ever pending, and results belonging to a
// superseded invocation are discarded instead of being delivered out of
// order.
type Debouncer struct {
	mu      sync.Mutex
	catalog queries.CatalogQueries
	delay   time.Duration
	timer   *time.Timer
	seq     uint64
}

func NewDebouncer(catalog queries.CatalogQueries, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{catalog: catalog, delay: delay}
}

// Search schedules a catalog search for term, superseding any still-pending
// invocation. deliver runs at most once, and never for a stale sequence
// number. The returned sequence number identifies this invocation.
func (d *Debouncer) Search(ctx context.Context, term string, deliver func([]*queries.ProductView, error)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		products, err := d.catalog.Search(ctx, term)

		// Re-check after the query returns: a slow response for a stale
		// request must not clobber a newer one.
		d.mu.Lock()
		stale := seq != d.seq
		d.mu.Unlock()
		if stale {
			return
		}
		deliver(products, err)
	})

	return seq
}

// Cancel discards any pending invocation without delivering results.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
