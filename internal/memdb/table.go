// Package memdb provides the in-memory storage primitives shared by the
// repositories: an ordered, clone-on-read Table and a store-wide exclusive
// section for compound operations.
package memdb

import (
	"slices"
	"sync"
)

// Record is implemented by every stored model.
type Record[T any] interface {
	*T
	Clone() *T
}

// Table is an ordered collection of records keyed by id. Values going in and
// coming out are cloned, so callers never alias stored state.
type Table[T any, P Record[T]] struct {
	mu   sync.RWMutex
	rows []P
	key  func(P) string
}

// NewTable creates an empty table. key extracts the record id.
func NewTable[T any, P Record[T]](key func(P) string) *Table[T, P] {
	return &Table[T, P]{key: key}
}

// Append adds v at the end.
func (t *Table[T, P]) Append(v P) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, P(v.Clone()))
}

// Prepend adds v at the front.
func (t *Table[T, P]) Prepend(v P) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = slices.Insert(t.rows, 0, P(v.Clone()))
}

// Get returns a copy of the record with the given id.
func (t *Table[T, P]) Get(id string) (P, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := t.index(id)
	if i < 0 {
		return nil, false
	}
	return P(t.rows[i].Clone()), true
}

// Replace swaps the stored record that has v's id for a copy of v.
func (t *Table[T, P]) Replace(v P) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(t.key(v))
	if i < 0 {
		return false
	}
	t.rows[i] = P(v.Clone())
	return true
}

// Delete removes the record with the given id and returns it.
func (t *Table[T, P]) Delete(id string) (P, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.index(id)
	if i < 0 {
		return nil, false
	}
	v := t.rows[i]
	t.rows = slices.Delete(t.rows, i, i+1)
	return v, true
}

// All returns copies of every record in table order.
func (t *Table[T, P]) All() []P {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]P, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, P(r.Clone()))
	}
	return out
}

func (t *Table[T, P]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *Table[T, P]) index(id string) int {
	return slices.IndexFunc(t.rows, func(r P) bool { return t.key(r) == id })
}
