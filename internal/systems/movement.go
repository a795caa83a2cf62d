// Package systems provides the gameplay systems that drive Kestrel worlds:
// movement, physics, health, audio, and Lua-scripted AI as IteratingSystems,
// plus rendering, which draws from a separate Draw call. Each
// system is grounded on its namesake in the teacher's internal/core/systems
// package, rewritten against the ecs.IteratingSystem contract instead of
// the teacher's world.Query()...Execute() call per Update.
package systems

import (
	"math"

	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

// Boundary constrains entity positions to a rectangle, the generalized form
// of the teacher's MovementSystem.Rectangle
// (internal/core/systems/movement.go).
type Boundary struct {
	X, Y, Width, Height float32
}

func (b Boundary) clamp(pos *components.Vector2) {
	if pos.X < b.X {
		pos.X = b.X
	} else if pos.X > b.X+b.Width {
		pos.X = b.X + b.Width
	}
	if pos.Y < b.Y {
		pos.Y = b.Y
	} else if pos.Y > b.Y+b.Height {
		pos.Y = b.Y + b.Height
	}
}

// MovementSystem integrates Physics.Velocity into Transform.Position each
// tick, optionally clamping to a Boundary. Grounded on the teacher's
// MovementSystem (internal/core/systems/movement.go).
type MovementSystem struct {
	*ecs.IteratingSystem

	transform *ecs.ComponentMapper[components.Transform]
	physics   *ecs.ComponentMapper[components.Physics]

	boundary    Boundary
	hasBoundary bool
}

// NewMovementSystem builds a MovementSystem ticking every frame over every
// entity carrying both Transform and Physics.
func NewMovementSystem(w *ecs.World) *MovementSystem {
	transform := ecs.Mapper(w, components.NewTransform)
	physics := ecs.Mapper(w, components.NewPhysics)

	allOf := ecs.NewBitArray()
	allOf.Set(int(transform.ID()))
	allOf.Set(int(physics.ID()))
	family, err := w.Family(allOf, ecs.NewBitArray(), ecs.NewBitArray())
	if err != nil {
		panic(err)
	}

	ms := &MovementSystem{transform: transform, physics: physics}
	ms.IteratingSystem = ecs.NewIteratingSystem(ecs.EachFrame(), family, ms.tick)
	return ms
}

// SetBoundary constrains subsequent position updates to the given rectangle.
func (ms *MovementSystem) SetBoundary(b Boundary) {
	ms.boundary = b
	ms.hasBoundary = true
}

func (ms *MovementSystem) tick(w *ecs.World, e ecs.Entity, dt float32) {
	t := ms.transform.Get(e)
	p := ms.physics.Get(e)

	if p.IsStatic {
		return
	}

	speed := float32(math.Sqrt(float64(p.Velocity.X*p.Velocity.X + p.Velocity.Y*p.Velocity.Y)))
	if p.MaxSpeed > 0 && speed > p.MaxSpeed {
		scale := p.MaxSpeed / speed
		p.Velocity.X *= scale
		p.Velocity.Y *= scale
	}

	t.Position.X += p.Velocity.X * dt
	t.Position.Y += p.Velocity.Y * dt

	if ms.hasBoundary {
		ms.boundary.clamp(&t.Position)
	}
}
