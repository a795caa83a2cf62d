package ecs

import "reflect"

// ComponentService is the registry of component mappers: lookup by type or
// by stable id, grounded on the teacher's ComponentStore type registration
// (storage/component_store.go RegisterComponentType), but keyed on Go's
// reflect.Type instead of a hand-assigned string, and backed by a Bag in
// registration order for the id-indexed lookup EntityService needs when
// walking a component mask.
type ComponentService struct {
	byType map[reflect.Type]erasedMapper
	byID   *Bag[erasedMapper]
}

func newComponentService() *ComponentService {
	return &ComponentService{
		byType: make(map[reflect.Type]erasedMapper),
		byID:   NewBag[erasedMapper](8),
	}
}

// registerMapper is called by World during registration. Component ids are
// assigned as byID.Size() at insert time and never change.
func registerMapper[T any](cs *ComponentService, w *World, factory func() T) (*ComponentMapper[T], error) {
	var zero T
	key := reflect.TypeOf(zero)
	if _, exists := cs.byType[key]; exists {
		return nil, ComponentAlreadyAddedErr(key.String())
	}
	id := ComponentID(cs.byID.Size())
	m := newComponentMapper(id, w, factory)
	cs.byType[key] = m
	cs.byID.Add(m)
	return m, nil
}

// mapperFor returns the typed mapper for T, failing with NoSuchComponent if
// T was never registered. This downcast (the erasedMapper stored in byType
// back to *ComponentMapper[T]) is the one unsafe boundary spec.md §9 calls
// out; it is safe in practice because registerMapper is the only writer
// and it always stores a *ComponentMapper[T] under T's own reflect.Type key.
// The package-level Mapper[T] function wraps this for callers holding a
// *World.
func mapperFor[T any](cs *ComponentService) (*ComponentMapper[T], error) {
	var zero T
	key := reflect.TypeOf(zero)
	erased, ok := cs.byType[key]
	if !ok {
		return nil, NoSuchComponentErr(key.String())
	}
	return erased.(*ComponentMapper[T]), nil
}

// mapperByID returns the type-erased mapper for a stable component id, used
// internally by EntityService when clearing an entity's full component mask.
func (cs *ComponentService) mapperByID(id ComponentID) erasedMapper {
	return cs.byID.Get(int(id))
}

// Count returns the number of registered component types.
func (cs *ComponentService) Count() int {
	return cs.byID.Size()
}
