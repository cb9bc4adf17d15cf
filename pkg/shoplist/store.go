package shoplist

import (
	"container/list"
	"sync"
)

// DefaultMaxLists bounds how many visitor lists a Store keeps in memory.
const DefaultMaxLists = 1024

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithEvictHook registers a callback invoked when the least recently used
// list is evicted to make room. It runs with the store lock held and must
// not call back into the Store.
func WithEvictHook(fn func(visitorID string, l *List)) StoreOption {
	return func(s *Store) {
		s.onEvict = fn
	}
}

type visitorEntry struct {
	visitorID string
	list      *List
}

// Store maps visitor ids to their lists. When full, the least recently used
// list is evicted and its items are lost.
type Store struct {
	mu       sync.Mutex
	capacity int
	byID     map[string]*list.Element
	recency  *list.List // front is most recently used
	onEvict  func(visitorID string, l *List)
}

// NewStore creates a store holding at most maxLists lists.
// A non-positive maxLists falls back to DefaultMaxLists.
func NewStore(maxLists int, opts ...StoreOption) *Store {
	if maxLists <= 0 {
		maxLists = DefaultMaxLists
	}
	s := &Store{
		capacity: maxLists,
		byID:     make(map[string]*list.Element),
		recency:  list.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the visitor's list, creating an empty one on first access.
func (s *Store) List(visitorID string) *List {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.byID[visitorID]; ok {
		s.recency.MoveToFront(elem)
		return elem.Value.(*visitorEntry).list
	}

	entry := &visitorEntry{visitorID: visitorID, list: NewList()}
	s.byID[visitorID] = s.recency.PushFront(entry)

	if s.recency.Len() > s.capacity {
		s.evictOldest()
	}
	return entry.list
}

// Drop forgets the visitor's list. It reports whether a list existed.
func (s *Store) Drop(visitorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.byID[visitorID]
	if !ok {
		return false
	}
	s.recency.Remove(elem)
	delete(s.byID, visitorID)
	return true
}

// Len returns the number of lists held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recency.Len()
}

// Must be called with lock held.
func (s *Store) evictOldest() {
	elem := s.recency.Back()
	if elem == nil {
		return
	}
	entry := s.recency.Remove(elem).(*visitorEntry)
	delete(s.byID, entry.visitorID)

	if s.onEvict != nil {
		s.onEvict(entry.visitorID, entry.list)
	}
}
