package memdb

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Tags []string
}

func (r *row) Clone() *row {
	c := *r
	c.Tags = append([]string(nil), r.Tags...)
	return &c
}

func newRows() *Table[row, *row] {
	return NewTable[row](func(r *row) string { return r.ID })
}

func ids(rs []*row) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestTable_AppendPrependOrder(t *testing.T) {
	tb := newRows()
	tb.Append(&row{ID: "a"})
	tb.Append(&row{ID: "b"})
	tb.Prepend(&row{ID: "z"})

	assert.Equal(t, []string{"z", "a", "b"}, ids(tb.All()))
	assert.Equal(t, 3, tb.Len())
}

func TestTable_GetReturnsCopy(t *testing.T) {
	tb := newRows()
	in := &row{ID: "a", Tags: []string{"x"}}
	tb.Append(in)

	in.Tags[0] = "mutated-after-insert"

	got, ok := tb.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, got.Tags)

	got.Tags[0] = "mutated-after-get"
	again, _ := tb.Get("a")
	assert.Equal(t, []string{"x"}, again.Tags)

	_, ok = tb.Get("missing")
	assert.False(t, ok)
}

func TestTable_ReplaceAndDelete(t *testing.T) {
	tb := newRows()
	tb.Append(&row{ID: "a"})
	tb.Append(&row{ID: "b"})

	assert.True(t, tb.Replace(&row{ID: "a", Tags: []string{"new"}}))
	assert.False(t, tb.Replace(&row{ID: "nope"}))

	got, _ := tb.Get("a")
	assert.Equal(t, []string{"new"}, got.Tags)
	assert.Equal(t, []string{"a", "b"}, ids(tb.All()), "replace keeps position")

	del, ok := tb.Delete("a")
	require.True(t, ok)
	assert.Equal(t, "a", del.ID)
	assert.Equal(t, []string{"b"}, ids(tb.All()))

	_, ok = tb.Delete("a")
	assert.False(t, ok)
}

func TestTable_ConcurrentAppends(t *testing.T) {
	tb := newRows()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tb.Append(&row{ID: string(rune('A' + i%26))})
			_ = tb.All()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, tb.Len())
}

func TestExclusive_Do(t *testing.T) {
	var x Exclusive

	called := false
	err := x.Do(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	boom := errors.New("boom")
	err = x.Do(context.Background(), func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestExclusive_CancelledContext(t *testing.T) {
	var x Exclusive
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := x.Do(ctx, func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestExclusive_PanicReleasesLock(t *testing.T) {
	var x Exclusive

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = x.Do(context.Background(), func(ctx context.Context) error { panic("kaboom") })
	})

	// lock must be free again
	err := x.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
}
