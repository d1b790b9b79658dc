package engine

import (
	"sync"
)

// AnyStore provides type-erased operations so World can manage lifecycle without knowing T
type AnyStore interface {
	Remove(e Entity)
	Has(e Entity) bool
	Count() int
	Clear()
	All() []Entity
}

// Store is a generic container for a specific component type T
// Components are held by pointer so systems mutate them in place
// Iteration follows insertion order
type Store[T any] struct {
	mu         sync.RWMutex
	components map[Entity]*T
	entities   []Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]*T),
		entities:   make([]Entity, 0, 64),
	}
}

// Set inserts or replaces the component of an entity and returns the stored pointer
func (s *Store[T]) Set(e Entity, val T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, exists := s.components[e]; exists {
		*p = val
		return p
	}
	p := new(T)
	*p = val
	s.components[e] = p
	s.entities = append(s.entities, e)
	return p
}

// Get returns the stored pointer, valid until the entity is removed
func (s *Store[T]) Get(e Entity) (*T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.components[e]
	return p, ok
}

// Remove deletes the component of an entity, preserving the order of the rest
func (s *Store[T]) Remove(e Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// RemoveBatch deletes multiple entities in a single pass
func (s *Store[T]) RemoveBatch(entities []Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.components) == 0 {
		return
	}

	removed := 0
	for _, e := range entities {
		if _, exists := s.components[e]; exists {
			delete(s.components, e)
			removed++
		}
	}
	if removed == 0 {
		return
	}

	kept := s.entities[:0]
	for _, e := range s.entities {
		if _, ok := s.components[e]; ok {
			kept = append(kept, e)
		}
	}
	s.entities = kept
}

func (s *Store[T]) Has(e Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns a copy of the entities holding this component, in insertion order
func (s *Store[T]) All() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[Entity]*T)
	s.entities = make([]Entity, 0, 64)
}

// Each visits components in insertion order over a snapshot of the entity list
// Entities removed during the walk are skipped, entities added are not visited
func (s *Store[T]) Each(fn func(e Entity, c *T)) {
	s.mu.RLock()
	entities := make([]Entity, len(s.entities))
	copy(entities, s.entities)
	s.mu.RUnlock()

	for _, e := range entities {
		s.mu.RLock()
		p, ok := s.components[e]
		s.mu.RUnlock()
		if ok {
			fn(e, p)
		}
	}
}
