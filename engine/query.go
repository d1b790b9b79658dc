package engine

import "sort"

// QueryBuilder intersects component stores, smallest first
type QueryBuilder struct {
	stores   []AnyStore
	executed bool
	results  []Entity
}

// Query starts an intersection query
//
//	movers := world.Query().
//	    With(world.Bodies).
//	    With(world.Kinetics).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		stores: make([]AnyStore, 0, 4),
	}
}

// With adds a store filter, panics after Execute
func (qb *QueryBuilder) With(store AnyStore) *QueryBuilder {
	if qb.executed {
		panic("engine: query already executed")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute returns entities present in every store
// Result order follows the first store passed to With, so iteration stays deterministic
func (qb *QueryBuilder) Execute() []Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]Entity, 0)
		return qb.results
	}

	candidates := qb.stores[0].All()
	if len(qb.stores) == 1 {
		qb.results = candidates
		return qb.results
	}

	// Filter through the remaining stores smallest first so misses exit early
	rest := make([]AnyStore, len(qb.stores)-1)
	copy(rest, qb.stores[1:])
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Count() < rest[j].Count()
	})

	for _, store := range rest {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
