package memory

import (
	"container/list"
	"sync"
	"time"
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	createdAt time.Time
}

// TTLStore is a threadsafe, capacity-bounded store with per-entry TTL.
//
// Entries are kept in insertion order: a Get never refreshes an entry, so
// when the store is over capacity the evicted entry is always the one with
// the oldest createdAt. Stale entries are removed on read.
type TTLStore[K comparable, V any] struct {
	mu         sync.Mutex
	ll         *list.List
	items      map[K]*list.Element
	maxEntries int
	ttl        time.Duration

	now func() time.Time // test seam
}

func NewTTLStore[K comparable, V any](maxEntries int, ttl time.Duration) *TTLStore[K, V] {
	if maxEntries <= 0 {
		maxEntries = 1
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TTLStore[K, V]{
		ll:         list.New(),
		items:      make(map[K]*list.Element),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Get returns the stored value while it is still fresh. An expired entry is
// removed and reported as a miss.
func (s *TTLStore[K, V]) Get(key K) (V, bool) {
	var zero V
	if s == nil {
		return zero, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ele, ok := s.items[key]
	if !ok {
		return zero, false
	}
	ent := ele.Value.(*entry[K, V])
	if s.now().Sub(ent.createdAt) >= s.ttl {
		s.removeElement(ele)
		return zero, false
	}
	return ent.value, true
}

// Set inserts or overwrites the entry with createdAt = now, then evicts the
// oldest entries until the store is back under capacity.
func (s *TTLStore[K, V]) Set(key K, value V) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if ele, ok := s.items[key]; ok {
		ent := ele.Value.(*entry[K, V])
		ent.value = value
		ent.createdAt = s.now()
		s.ll.MoveToFront(ele)
		return
	}

	ele := s.ll.PushFront(&entry[K, V]{key: key, value: value, createdAt: s.now()})
	s.items[key] = ele
	s.evictLocked()
}

func (s *TTLStore[K, V]) Delete(key K) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if ele, ok := s.items[key]; ok {
		s.removeElement(ele)
	}
}

func (s *TTLStore[K, V]) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ll.Len()
}

func (s *TTLStore[K, V]) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ll = list.New()
	s.items = make(map[K]*list.Element)
}

func (s *TTLStore[K, V]) evictLocked() {
	for s.ll.Len() > s.maxEntries {
		s.removeElement(s.ll.Back())
	}
}

func (s *TTLStore[K, V]) removeElement(ele *list.Element) {
	if ele == nil {
		return
	}
	s.ll.Remove(ele)
	ent := ele.Value.(*entry[K, V])
	delete(s.items, ent.key)
}
