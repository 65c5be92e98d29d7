//go:build unit

package search_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pos-engine/internal/infra/memory"
	"pos-engine/internal/usecase/queries"
	"pos-engine/internal/usecase/search"
	"pos-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector records every delivery the debouncer lets through.
type collector struct {
	mu    sync.Mutex
	names [][]string
}

func (c *collector) deliver(views []*queries.ProductView, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	c.names = append(c.names, names)
}

func (c *collector) deliveries() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([][]string, len(c.names))
	copy(out, c.names)
	return out
}

func newTestDebouncer() *search.Debouncer {
	catalog := memory.NewCatalog(
		builder.NewProductBuilder().MustBuild(),
		builder.NewProductBuilder().With(func(b *builder.ProductBuilder) {
			b.SKU = "TEA-002"
			b.Name = "Green Tea"
		}).MustBuild(),
	)
	return search.NewDebouncer(queries.NewCatalogQueries(catalog), 10*time.Millisecond)
}

func TestDebouncerSearch(t *testing.T) {
	t.Run("delivers after the quiet period", func(t *testing.T) {
		d := newTestDebouncer()
		c := &collector{}

		d.Search(context.Background(), "green", c.deliver)

		require.Eventually(t, func() bool {
			return len(c.deliveries()) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, []string{"Green Tea"}, c.deliveries()[0])
	})

	t.Run("rapid invocations collapse to the latest", func(t *testing.T) {
		d := newTestDebouncer()
		c := &collector{}

		d.Search(context.Background(), "coffee", c.deliver)
		d.Search(context.Background(), "gr", c.deliver)
		d.Search(context.Background(), "green", c.deliver)

		require.Eventually(t, func() bool {
			return len(c.deliveries()) >= 1
		}, time.Second, 5*time.Millisecond)

		// Give superseded timers room to misfire before asserting.
		time.Sleep(50 * time.Millisecond)
		deliveries := c.deliveries()
		require.Len(t, deliveries, 1)
		assert.Equal(t, []string{"Green Tea"}, deliveries[0])
	})

	t.Run("cancel discards the pending search", func(t *testing.T) {
		d := newTestDebouncer()
		c := &collector{}

		d.Search(context.Background(), "green", c.deliver)
		d.Cancel()

		time.Sleep(50 * time.Millisecond)
		assert.Empty(t, c.deliveries())
	})

	t.Run("sequence numbers are monotonic", func(t *testing.T) {
		d := newTestDebouncer()
		c := &collector{}

		first := d.Search(context.Background(), "a", c.deliver)
		second := d.Search(context.Background(), "b", c.deliver)

		assert.Greater(t, second, first)
	})
}
