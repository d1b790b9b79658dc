package engine

import (
	"slices"

	"github.com/lixenwraith/gridmotion/collision"
)

// Overlaps records the entity pair overlaps of the current tick
// Pairs are symmetric: adding (a, b) makes it visible from both sides
type Overlaps struct {
	byEntity map[Entity]map[Entity]collision.Overlap
	order    []Entity
	pairs    [3]int
}

func NewOverlaps() *Overlaps {
	return &Overlaps{
		byEntity: make(map[Entity]map[Entity]collision.Overlap),
	}
}

func kindIndex(kind collision.Overlap) int {
	switch kind {
	case collision.OverlapOuter:
		return 0
	case collision.OverlapInner:
		return 1
	case collision.OverlapRect:
		return 2
	}
	return -1
}

// Add records an overlap of the given kind between a and b
// Repeated adds of the same kind are counted once
func (o *Overlaps) Add(a, b Entity, kind collision.Overlap) {
	if a == b || kind == 0 {
		return
	}
	prev := o.peer(a)[b]
	next := prev | kind
	if next == prev {
		return
	}
	for _, k := range [...]collision.Overlap{collision.OverlapOuter, collision.OverlapInner, collision.OverlapRect} {
		if next.Has(k) && !prev.Has(k) {
			o.pairs[kindIndex(k)]++
		}
	}
	o.peer(a)[b] = next
	o.peer(b)[a] = next
}

func (o *Overlaps) peer(e Entity) map[Entity]collision.Overlap {
	m, ok := o.byEntity[e]
	if !ok {
		m = make(map[Entity]collision.Overlap)
		o.byEntity[e] = m
		o.order = append(o.order, e)
	}
	return m
}

// Get returns the overlap flags between a and b, 0 when none
func (o *Overlaps) Get(a, b Entity) collision.Overlap {
	return o.byEntity[a][b]
}

// Has reports whether a and b overlap with the given kind
func (o *Overlaps) Has(a, b Entity, kind collision.Overlap) bool {
	return o.Get(a, b).Has(kind)
}

// With returns the number of entities overlapping e
func (o *Overlaps) With(e Entity) int {
	return len(o.byEntity[e])
}

// Each visits the peers of e, order unspecified
func (o *Overlaps) Each(e Entity, fn func(other Entity, flags collision.Overlap)) {
	for other, flags := range o.byEntity[e] {
		fn(other, flags)
	}
}

// Count returns the number of unordered pairs recorded with the kind
func (o *Overlaps) Count(kind collision.Overlap) int {
	i := kindIndex(kind)
	if i < 0 {
		return 0
	}
	return o.pairs[i]
}

// Remove drops every pair involving e
func (o *Overlaps) Remove(e Entity) {
	peers, ok := o.byEntity[e]
	if !ok {
		return
	}
	for other, flags := range peers {
		for _, k := range [...]collision.Overlap{collision.OverlapOuter, collision.OverlapInner, collision.OverlapRect} {
			if flags.Has(k) {
				o.pairs[kindIndex(k)]--
			}
		}
		delete(o.byEntity[other], e)
	}
	delete(o.byEntity, e)
	if i := slices.Index(o.order, e); i >= 0 {
		o.order = slices.Delete(o.order, i, i+1)
	}
}

// Clear empties the arena
// Inner maps of entities that overlapped this tick are kept for reuse, idle ones are released
func (o *Overlaps) Clear() {
	kept := o.order[:0]
	for _, e := range o.order {
		m := o.byEntity[e]
		if len(m) == 0 {
			delete(o.byEntity, e)
			continue
		}
		clear(m)
		kept = append(kept, e)
	}
	clear(o.order[len(kept):])
	o.order = kept
	o.pairs = [3]int{}
}
