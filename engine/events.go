package engine

import (
	"github.com/lixenwraith/gridmotion/component"
)

type eventSlot struct {
	dir int
	set bool
}

type eventRecord struct {
	entity Entity
	slots  [component.AxisCount]eventSlot
}

// CollisionEvents holds the transient tile collision events of the current tick
// One slot per entity and axis, a later emit on the same slot overwrites the direction
// Cleared once per tick by the cleanup system before movement runs
type CollisionEvents struct {
	index   map[Entity]int
	records []eventRecord
	count   int
}

func NewCollisionEvents() *CollisionEvents {
	return &CollisionEvents{
		index:   make(map[Entity]int),
		records: make([]eventRecord, 0, 64),
	}
}

// Emit records an event for the entity
func (c *CollisionEvents) Emit(e Entity, ev component.CollisionEvent) {
	if ev.Axis >= component.AxisCount {
		return
	}
	i, ok := c.index[e]
	if !ok {
		i = len(c.records)
		c.records = append(c.records, eventRecord{entity: e})
		c.index[e] = i
	}
	slot := &c.records[i].slots[ev.Axis]
	if !slot.set {
		c.count++
	}
	slot.dir = ev.Dir
	slot.set = true
}

// Get returns the direction recorded on the axis
func (c *CollisionEvents) Get(e Entity, axis component.Axis) (int, bool) {
	i, ok := c.index[e]
	if !ok || axis >= component.AxisCount {
		return 0, false
	}
	slot := c.records[i].slots[axis]
	return slot.dir, slot.set
}

func (c *CollisionEvents) Has(e Entity, axis component.Axis) bool {
	_, ok := c.Get(e, axis)
	return ok
}

// Each visits events by first emission of the entity, then axis order
func (c *CollisionEvents) Each(fn func(e Entity, ev component.CollisionEvent)) {
	for i := range c.records {
		r := &c.records[i]
		for axis, slot := range r.slots {
			if slot.set {
				fn(r.entity, component.CollisionEvent{Axis: component.Axis(axis), Dir: slot.dir})
			}
		}
	}
}

// Len returns the number of occupied slots
func (c *CollisionEvents) Len() int { return c.count }

// Remove drops every slot of an entity
func (c *CollisionEvents) Remove(e Entity) {
	i, ok := c.index[e]
	if !ok {
		return
	}
	for _, slot := range c.records[i].slots {
		if slot.set {
			c.count--
		}
	}
	c.records[i].slots = [component.AxisCount]eventSlot{}
}

// Clear empties the arena, retaining capacity
func (c *CollisionEvents) Clear() {
	clear(c.index)
	c.records = c.records[:0]
	c.count = 0
}
