package repositories

import (
	"sync"

	"github.com/google/uuid"
	"tabi/internal/models/db_models"
)

// recordPtr ties a value type to its pointer so stores can hold values and
// hand out pointers to copies.
type recordPtr[T any] interface {
	*T
	db_models.Record
}

// memoryStore keeps records in insertion order. Writes and reads go through
// detached copies, so callers never alias what the store holds.
type memoryStore[T any, P recordPtr[T]] struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]T
}

func newMemoryStore[T any, P recordPtr[T]]() *memoryStore[T, P] {
	return &memoryStore[T, P]{items: make(map[uuid.UUID]T)}
}

// detached copies v and, for records with reference fields, the data behind
// them.
func detached[T any, P recordPtr[T]](v T) T {
	if d, ok := any(P(&v)).(db_models.Detacher); ok {
		d.Detach()
	}
	return v
}

func (s *memoryStore[T, P]) insert(v P) {
	v.PrepareCreate()

	s.mu.Lock()
	defer s.mu.Unlock()
	id := v.GetID()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = detached[T, P](*v)
}

func (s *memoryStore[T, P]) get(id uuid.UUID) (P, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	if !ok {
		var zero P
		return zero, false
	}
	v = detached[T, P](v)
	return P(&v), true
}

func (s *memoryStore[T, P]) update(v P) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := v.GetID()
	if _, ok := s.items[id]; !ok {
		return false
	}
	v.PrepareUpdate()
	s.items[id] = detached[T, P](*v)
	return true
}

func (s *memoryStore[T, P]) delete(match func(P) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	kept := s.order[:0]
	for _, id := range s.order {
		v := s.items[id]
		if match(P(&v)) {
			delete(s.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed
}

// list returns matching records oldest first.
func (s *memoryStore[T, P]) list(match func(P) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0)
	for _, id := range s.order {
		v := s.items[id]
		if match == nil || match(P(&v)) {
			out = append(out, detached[T, P](v))
		}
	}
	return out
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
