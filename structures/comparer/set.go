package comparer

import "sync"

// Set is a concurrency safe set whose membership is decided by an [EqualityComparer].
// Values are kept in insertion order.
type Set[T any] struct {
	mux      sync.Mutex
	comparer EqualityComparer[T]
	buckets  map[uint64][]T
	order    []T
}

// NewSet creates a new [Set] containing the given values.
func NewSet[T any](comparer EqualityComparer[T], vals ...T) *Set[T] {
	if comparer == nil {
		panic("nil comparer")
	}
	s := &Set[T]{comparer: comparer, buckets: map[uint64][]T{}}
	for _, val := range vals {
		s.Add(val)
	}
	return s
}

func (s *Set[T]) indexIn(bucket []T, val T) int {
	for i, existing := range bucket {
		if s.comparer.Equal(existing, val) {
			return i
		}
	}
	return -1
}

// Add inserts val if no equal value is present, and reports whether it was added.
func (s *Set[T]) Add(val T) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	hash := s.comparer.Hash(val)
	if s.indexIn(s.buckets[hash], val) >= 0 {
		return false
	}
	s.buckets[hash] = append(s.buckets[hash], val)
	s.order = append(s.order, val)
	return true
}

func (s *Set[T]) Has(val T) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.indexIn(s.buckets[s.comparer.Hash(val)], val) >= 0
}

// Remove deletes the value equal to val, and reports whether one was present.
func (s *Set[T]) Remove(val T) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	hash := s.comparer.Hash(val)
	bucket := s.buckets[hash]
	i := s.indexIn(bucket, val)
	if i < 0 {
		return false
	}
	if len(bucket) == 1 {
		delete(s.buckets, hash)
	} else {
		s.buckets[hash] = append(bucket[:i:i], bucket[i+1:]...)
	}
	if j := s.indexIn(s.order, val); j >= 0 {
		s.order = append(s.order[:j:j], s.order[j+1:]...)
	}
	return true
}

func (s *Set[T]) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.order)
}

// Slice returns the values in the order they were first added.
func (s *Set[T]) Slice() []T {
	s.mux.Lock()
	defer s.mux.Unlock()
	if len(s.order) == 0 {
		return nil
	}
	vals := make([]T, len(s.order))
	copy(vals, s.order)
	return vals
}
