package ecs

// Family is a cached entity set matching a composite predicate over
// component presence, reacting to entity mutations the way the teacher's
// go-ecs-derived Filter type does (other_examples Leopotam-go-ecs
// world.go/UpdateFilters), except here matching is re-evaluated lazily on
// access (updateIfDirty) rather than incrementally per mutated component —
// spec.md §4.6 allows either as long as the observable result is the same.
type Family struct {
	world  *World
	allOf  *BitArray
	noneOf *BitArray
	anyOf  *BitArray

	members    *BitArray
	memberList *Bag[Entity]
	dirty      bool
}

func newFamily(w *World, allOf, noneOf, anyOf *BitArray) *Family {
	return &Family{
		world:      w,
		allOf:      allOf,
		noneOf:     noneOf,
		anyOf:      anyOf,
		members:    NewBitArray(),
		memberList: NewBag[Entity](64),
		dirty:      true,
	}
}

func (f *Family) matches(mask *BitArray) bool {
	if !f.allOf.IsEmpty() && !mask.Contains(f.allOf) {
		return false
	}
	if !f.noneOf.IsEmpty() && mask.Intersects(f.noneOf) {
		return false
	}
	if !f.anyOf.IsEmpty() && !mask.Intersects(f.anyOf) {
		return false
	}
	return true
}

// UpdateIfDirty rebuilds members/memberList by rescanning every active
// entity, then clears dirty. A no-op when already clean.
func (f *Family) UpdateIfDirty() {
	if !f.dirty {
		return
	}
	f.members = NewBitArray()
	f.memberList = NewBag[Entity](f.memberList.Size())
	f.world.entities.ForEach(func(e Entity) {
		if f.matches(f.world.entities.Mask(e)) {
			f.members.Set(int(e))
			f.memberList.Add(e)
		}
	})
	f.dirty = false
}

// ForEach updates membership if needed, then visits the member snapshot in
// ascending id order while deferring entity removal: any RemoveEntity call
// triggered from inside fn is queued and applied only once the outermost
// ForEach (of this or any other family) exits. Entity creation and
// component add/remove from inside fn take effect immediately; the
// snapshot being visited does not change, and membership is recomputed on
// the next access (spec.md §4.6, §5). The delayRemoval guard is
// reference-counted so nested iteration — of the same family or a
// different one — is safe.
func (f *Family) ForEach(fn func(e Entity)) {
	f.UpdateIfDirty()
	es := f.world.entities
	es.acquireDelay()
	defer es.releaseDelay()
	f.memberList.Iter(func(_ int, e Entity) {
		fn(e)
	})
}

// NumEntities returns the current member count, calling UpdateIfDirty
// first so the count reflects every mutation made so far.
func (f *Family) NumEntities() int {
	f.UpdateIfDirty()
	return f.memberList.Size()
}

// IsEmpty reports whether the family currently has no members.
func (f *Family) IsEmpty() bool {
	return f.NumEntities() == 0
}

// Contains reports whether e is currently a member.
func (f *Family) Contains(e Entity) bool {
	f.UpdateIfDirty()
	return f.members.Get(int(e))
}
