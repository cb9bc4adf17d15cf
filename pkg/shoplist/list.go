package shoplist

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// List is an ordered, in-memory collection of items. Display order is
// insertion order. Safe for concurrent use.
type List struct {
	mu    sync.RWMutex
	items []Item
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Add appends item, assigning an id when it has none, and returns the stored copy.
func (l *List) Add(item Item) Item {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = append(l.items, item)
	return item
}

// Get returns the item with the given id.
func (l *List) Get(id uuid.UUID) (Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOf(id)
	if i < 0 {
		return Item{}, ErrItemNotFound
	}
	return l.items[i], nil
}

// Toggle flips the completed flag of an item and returns its new state.
func (l *List) Toggle(id uuid.UUID) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return Item{}, ErrItemNotFound
	}
	l.items[i].Completed = !l.items[i].Completed
	return l.items[i], nil
}

// Remove deletes an item and returns it.
func (l *List) Remove(id uuid.UUID) (Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return Item{}, ErrItemNotFound
	}
	item := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return item, nil
}

// Items returns a copy of the items in display order.
func (l *List) Items() []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.items)
}

// Stats recomputes the summary from the current items.
func (l *List) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return StatsOf(l.items)
}

// Snapshot returns items and their stats taken under a single lock.
func (l *List) Snapshot() ([]Item, Stats) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.items), StatsOf(l.items)
}

// Must be called with lock held.
func (l *List) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(l.items, func(it Item) bool {
		return it.ID == id
	})
}
