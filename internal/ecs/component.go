package ecs

import "reflect"

// Listener is notified synchronously around a component's add/remove.
// OnAdd runs after the value is installed; OnRemove runs before the slot
// is cleared. Multiple listeners on one mapper fire in registration order
// (spec.md §4.3, §8 S6).
type Listener[T any] interface {
	OnAdd(w *World, e Entity, c *T)
	OnRemove(w *World, e Entity, c *T)
}

// erasedMapper is the type-erased face every ComponentMapper[T] presents to
// ComponentService and EntityService, so the registry can hold mappers of
// different T in one dense array (spec.md §9 "typed heterogeneous mapper
// registry" — a per-type stable id plus a dense array of type-erased
// slots; the typed accessor in ComponentService.Mapper[T] is the only
// downcast point).
type erasedMapper interface {
	id() ComponentID
	typeName() string
	contains(e Entity) bool
	removeInternal(e Entity) error
}

// ComponentMapper owns the dense, entity-id-indexed storage for one
// component type T, grounded on the teacher's sparse-set dense array
// (storage/sparse_set.go) but indexed directly by entity id rather than
// through a hashmap — per spec.md §4.3 growth is "on access to an id ≥
// length, the array doubles (at least to id+1)".
type ComponentMapper[T any] struct {
	componentID ComponentID
	name        string
	world       *World
	factory     func() T
	present     *BitArray
	values      []T
	listeners   []Listener[T]
}

func newComponentMapper[T any](id ComponentID, w *World, factory func() T) *ComponentMapper[T] {
	var zero T
	name := reflect.TypeOf(zero).String()
	return &ComponentMapper[T]{
		componentID: id,
		name:        name,
		world:       w,
		factory:     factory,
		present:     NewBitArray(),
	}
}

func (m *ComponentMapper[T]) id() ComponentID  { return m.componentID }
func (m *ComponentMapper[T]) typeName() string { return m.name }

// ID returns the stable component id assigned to T at registration time, for
// building Family predicates.
func (m *ComponentMapper[T]) ID() ComponentID {
	return m.componentID
}

// TypeName returns T's reflect-derived name, used in diagnostics.
func (m *ComponentMapper[T]) TypeName() string {
	return m.name
}

func (m *ComponentMapper[T]) growTo(n int) {
	if n <= len(m.values) {
		return
	}
	newCap := cap(m.values)
	if newCap == 0 {
		newCap = n
	}
	for newCap < n {
		newCap *= 2
	}
	grown := make([]T, len(m.values), newCap)
	copy(grown, m.values)
	m.values = grown[:n]
}

// Add installs a component on entity, creating it from the mapper's
// factory and running configure on it. If entity already carries this
// component, the existing value is reconfigured in place and no listener
// fires — an intentional, documented overwrite-silent contract (spec.md §9
// Open Questions: re-adding a present component overwrites rather than
// firing onRemove+onAdd).
func (m *ComponentMapper[T]) Add(e Entity, configure func(c *T)) *T {
	idx := int(e)
	m.growTo(idx + 1)
	already := m.present.Get(idx)
	if !already {
		m.values[idx] = m.factory()
	}
	c := &m.values[idx]
	if configure != nil {
		configure(c)
	}
	if !already {
		m.present.Set(idx)
		m.world.entities.noteComponentAdded(e, m.componentID)
		for _, l := range m.listeners {
			l.OnAdd(m.world, e, c)
		}
	}
	return c
}

// Remove removes entity's component, firing OnRemove listeners first, then
// clearing the slot. Fails with NoSuchEntityComponent if entity does not
// carry this component.
func (m *ComponentMapper[T]) Remove(e Entity) error {
	idx := int(e)
	if idx >= len(m.values) || !m.present.Get(idx) {
		return NoSuchEntityComponentErr(e, m.name)
	}
	m.fireRemoveAndClear(e, idx)
	m.world.entities.noteComponentRemoved(e, m.componentID)
	return nil
}

func (m *ComponentMapper[T]) removeInternal(e Entity) error {
	idx := int(e)
	if idx >= len(m.values) {
		return IndexOutOfBoundsErr(e)
	}
	if !m.present.Get(idx) {
		return nil
	}
	m.fireRemoveAndClear(e, idx)
	return nil
}

func (m *ComponentMapper[T]) fireRemoveAndClear(e Entity, idx int) {
	c := &m.values[idx]
	for _, l := range m.listeners {
		l.OnRemove(m.world, e, c)
	}
	var zero T
	m.values[idx] = zero
	m.present.Clear(idx)
}

// Get returns a pointer to entity's component without checking presence.
// Callers must know entity carries this component (e.g. via a Family that
// requires it) — Get only panics if entity's id is beyond the highest id
// this mapper has stored; for an id within range but lacking the component it
// silently returns a pointer to a zeroed value. Use GetOrNull when presence
// is not already guaranteed.
func (m *ComponentMapper[T]) Get(e Entity) *T {
	return &m.values[int(e)]
}

// GetOrNull returns entity's component, or nil if absent.
func (m *ComponentMapper[T]) GetOrNull(e Entity) *T {
	idx := int(e)
	if idx >= len(m.values) || !m.present.Get(idx) {
		return nil
	}
	return &m.values[idx]
}

func (m *ComponentMapper[T]) contains(e Entity) bool {
	idx := int(e)
	return idx < len(m.values) && m.present.Get(idx)
}

// Contains reports whether entity currently carries this component.
func (m *ComponentMapper[T]) Contains(e Entity) bool {
	return m.contains(e)
}

// AddListener registers l; listeners fire in registration order.
func (m *ComponentMapper[T]) AddListener(l Listener[T]) {
	m.listeners = append(m.listeners, l)
}

// RemoveListener unregisters l (identity comparison via interface equality).
func (m *ComponentMapper[T]) RemoveListener(l Listener[T]) {
	for i, existing := range m.listeners {
		if existing == l {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}
