// Package ecs provides the core Entity Component System runtime for Kestrel.
//
// It is a sparse-set / component-indexed engine, not an archetype store:
// each component type owns one densely packed array indexed by entity id,
// and systems react to entities through cached families that are marked
// dirty on every mutation and rescanned lazily on next access. The runtime is single-threaded and cooperative — a World is
// owned by one goroutine for its lifetime and every operation runs to
// completion synchronously.
package ecs

// Entity is an opaque handle to a logical game object: a non-negative id.
// Two entities compare equal iff their ids are equal. Ids are dense and
// recycled; this design carries no generation counter (see DESIGN.md), so
// a recycled id may alias a prior entity handle — callers must not retain
// an Entity past its removal.
type Entity uint32

// InvalidEntity is never returned by EntityService.Create.
const InvalidEntity Entity = ^Entity(0)

// ComponentID is the stable small integer assigned to a component type at
// registration time, in registration order. Ids never change once issued.
type ComponentID uint16

// Interval selects how often an IntervalSystem's onTick fires relative to
// World.Update.
type Interval struct {
	fixed bool
	step  float32
}

// EachFrame runs onTick exactly once per World.Update call.
func EachFrame() Interval {
	return Interval{}
}

// Fixed runs onTick zero or more times per World.Update, accumulating
// delta time and subtracting stepSeconds each time the accumulator covers
// a full step.
func Fixed(stepSeconds float32) Interval {
	return Interval{fixed: true, step: stepSeconds}
}
