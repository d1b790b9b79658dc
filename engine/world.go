package engine

import (
	"sync"

	"github.com/lixenwraith/gridmotion/collision"
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/physics"
)

// Collider binds an entity to a tile mover and an optional ground checker
type Collider struct {
	Mover  *physics.GridMover
	Ground collision.GroundChecker
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID Entity

	Bodies           *Store[component.Body]
	Kinetics         *Store[component.Kinetic]
	Gravities        *Store[component.Gravity]
	Colliders        *Store[Collider]
	Platformers      *Store[component.PlatformerComponent]
	EntityCollisions *Store[component.EntityCollisionComponent]
	RenderBounds     *Store[component.RenderBoundsComponent]

	// Transient per-tick arenas
	Events   *CollisionEvents
	Overlaps *Overlaps

	Time TimeResource

	stores       []AnyStore
	systems      []System
	frameSystems []System
	updateMutex  sync.Mutex
}

// NewWorld creates an empty world
func NewWorld() *World {
	w := &World{
		nextEntityID:     1,
		Bodies:           NewStore[component.Body](),
		Kinetics:         NewStore[component.Kinetic](),
		Gravities:        NewStore[component.Gravity](),
		Colliders:        NewStore[Collider](),
		Platformers:      NewStore[component.PlatformerComponent](),
		EntityCollisions: NewStore[component.EntityCollisionComponent](),
		RenderBounds:     NewStore[component.RenderBoundsComponent](),
		Events:           NewCollisionEvents(),
		Overlaps:         NewOverlaps(),
	}
	w.stores = []AnyStore{
		w.Bodies,
		w.Kinetics,
		w.Gravities,
		w.Colliders,
		w.Platformers,
		w.EntityCollisions,
		w.RenderBounds,
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components and transient records of an entity
func (w *World) DestroyEntity(e Entity) {
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.Events.Remove(e)
	w.Overlaps.Remove(e)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.stores {
		s.Clear()
	}
	w.Events.Clear()
	w.Overlaps.Clear()
}

// CountEntities returns the number of entities holding at least one component
func (w *World) CountEntities() int {
	seen := make(map[Entity]struct{})
	for _, s := range w.stores {
		for _, e := range s.All() {
			seen[e] = struct{}{}
		}
	}
	return len(seen)
}

// AddSystem registers a fixed tick system, kept sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.systems = insertSorted(w.systems, system)
}

// AddFrameSystem registers a system run once per rendered frame after fixed ticks
func (w *World) AddFrameSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frameSystems = insertSorted(w.frameSystems, system)
}

// insertSorted keeps registration order among equal priorities
func insertSorted(list []System, s System) []System {
	i := len(list)
	for i > 0 && list[i-1].Priority() > s.Priority() {
		i--
	}
	list = append(list, nil)
	copy(list[i+1:], list[i:])
	list[i] = s
	return list
}

// Systems returns a copy of the fixed tick systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// FrameSystems returns a copy of the frame systems in run order
func (w *World) FrameSystems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.frameSystems))
	copy(result, w.frameSystems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Tick runs every fixed tick system once
func (w *World) Tick() {
	w.RunSafe(func() {
		for _, s := range w.Systems() {
			s.Update()
		}
		w.Time.Tick++
	})
}

// Frame runs every frame system once
func (w *World) Frame() {
	w.RunSafe(func() {
		for _, s := range w.FrameSystems() {
			s.Update()
		}
		w.Time.FrameNumber++
	})
}
