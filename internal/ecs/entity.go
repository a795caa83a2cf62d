package ecs

// EntityCreateCtx is handed to the configure callback passed to
// EntityService.Create / Configure, giving it the World (for Mapper[T]
// lookups) and the Entity being built, per spec.md §4.5.
type EntityCreateCtx struct {
	World  *World
	Entity Entity
}

// EntityService allocates, recycles, and tracks the per-entity component
// bitset, grounded on the teacher's DefaultEntityManager (entity_manager.go)
// but trimmed to spec.md §4.5's scope: no hierarchy, tags, groups,
// archetypes, or serialization — those were the teacher's non-goals for
// this core (see DESIGN.md). Single-threaded: no mutex, matching spec.md
// §5's "no internal locking".
type EntityService struct {
	world     *World
	nextID    Entity
	recycled  []Entity
	compMasks *Bag[*BitArray]
	active    *BitArray
	families  []*Family

	delayDepth     int
	delayedRemoves []Entity
}

func newEntityService(w *World, initialCapacity int) *EntityService {
	return &EntityService{
		world:     w,
		compMasks: NewBag[*BitArray](initialCapacity),
		active:    NewBitArray(),
	}
}

// registerFamily adds f to the set notified on every entity mutation. Called
// once per distinct family, from World.Family.
func (es *EntityService) registerFamily(f *Family) {
	es.families = append(es.families, f)
}

func (es *EntityService) markAllFamiliesDirty() {
	for _, f := range es.families {
		f.dirty = true
	}
}

func (es *EntityService) noteComponentAdded(e Entity, id ComponentID) {
	es.compMasks.Get(int(e)).Set(int(id))
	es.markAllFamiliesDirty()
}

func (es *EntityService) noteComponentRemoved(e Entity, id ComponentID) {
	es.compMasks.Get(int(e)).Clear(int(id))
	es.markAllFamiliesDirty()
}

// Create allocates an entity — a recycled id if one is available (LIFO),
// otherwise the next unused id — runs configure on it, and notifies every
// family. A re-allocated id always starts with an empty component mask
// (spec.md §8 invariant 5).
func (es *EntityService) Create(configure func(ctx EntityCreateCtx)) Entity {
	var e Entity
	if n := len(es.recycled); n > 0 {
		e = es.recycled[n-1]
		es.recycled = es.recycled[:n-1]
	} else {
		e = es.nextID
		es.nextID++
	}

	es.active.Set(int(e))
	es.compMasks.Set(int(e), NewBitArray())

	if configure != nil {
		configure(EntityCreateCtx{World: es.world, Entity: e})
	}
	es.markAllFamiliesDirty()
	return e
}

// Configure runs f against an existing entity and notifies families.
func (es *EntityService) Configure(e Entity, f func(ctx EntityCreateCtx)) {
	if f != nil {
		f(EntityCreateCtx{World: es.world, Entity: e})
	}
	es.markAllFamiliesDirty()
}

// Remove destroys entity: every component it carries is cleared (firing
// OnRemove listeners), its mask is reset, its id returns to the recycle
// stack, and families are notified. If a family iteration currently has
// delayRemoval engaged, the removal is queued and applied when the
// outermost iteration exits instead (spec.md §4.5, §4.6).
func (es *EntityService) Remove(e Entity) {
	if es.delayDepth > 0 {
		es.delayedRemoves = append(es.delayedRemoves, e)
		return
	}
	es.removeNow(e)
}

func (es *EntityService) removeNow(e Entity) {
	if !es.active.Get(int(e)) {
		return
	}
	mask := es.compMasks.Get(int(e))
	mask.ForEachSetBit(func(id int) {
		es.world.components.mapperByID(ComponentID(id)).removeInternal(e)
	})
	mask.Reset()
	es.active.Clear(int(e))
	es.recycled = append(es.recycled, e)
	es.markAllFamiliesDirty()
}

// RemoveAll removes every active entity, honoring delayRemoval.
func (es *EntityService) RemoveAll() {
	toRemove := make([]Entity, 0, es.NumEntities())
	es.active.ForEachSetBit(func(i int) {
		toRemove = append(toRemove, Entity(i))
	})
	for _, e := range toRemove {
		es.Remove(e)
	}
}

// ForEach iterates active entities in ascending id order. Safe under
// concurrent mutation only when delayRemoval is engaged (i.e. called from
// inside a Family.ForEach), per spec.md §4.5.
func (es *EntityService) ForEach(f func(e Entity)) {
	es.active.ForEachSetBit(func(i int) {
		f(Entity(i))
	})
}

// Capacity returns the current size of the backing component-mask bag.
func (es *EntityService) Capacity() int {
	return es.compMasks.Size()
}

// NumEntities returns the number of currently active entities.
func (es *EntityService) NumEntities() int {
	count := 0
	es.active.ForEachSetBit(func(int) { count++ })
	return count
}

// acquireDelay increments the reference-counted delayRemoval guard.
func (es *EntityService) acquireDelay() {
	es.delayDepth++
}

// releaseDelay decrements the guard and, once it returns to zero, drains
// every queued removal exactly once (spec.md §9 "Deferred mutation during
// iteration"). Safe to call from a deferred/recover path: draining happens
// regardless of whether the iteration exited normally or via panic.
func (es *EntityService) releaseDelay() {
	es.delayDepth--
	if es.delayDepth > 0 {
		return
	}
	pending := es.delayedRemoves
	es.delayedRemoves = nil
	for _, e := range pending {
		es.removeNow(e)
	}
}

// Mask returns entity's current component bitset, for Family predicate
// evaluation.
func (es *EntityService) Mask(e Entity) *BitArray {
	return es.compMasks.Get(int(e))
}

// IsActive reports whether e is currently a live entity.
func (es *EntityService) IsActive(e Entity) bool {
	return es.active.Get(int(e))
}
