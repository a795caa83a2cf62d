package systems

import (
	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

// PhysicsSystem applies gravity and friction to every entity's Physics
// component on a fixed 60Hz step, independent of the render frame rate.
// Grounded on the teacher's PhysicsSystem
// (internal/core/systems/physics.go), whose gravity/drag integration is
// kept here, with each entity's Physics.Friction acting as its drag;
// collision detection is out of scope (the teacher's own Update was an
// unimplemented TODO). The drag field is set but not applied by tick.
type PhysicsSystem struct {
	*ecs.IteratingSystem

	physics *ecs.ComponentMapper[components.Physics]

	gravity components.Vector2
	drag    float32
}

// NewPhysicsSystem builds a PhysicsSystem stepping at 60Hz with downward
// gravity, over every entity carrying Physics.
func NewPhysicsSystem(w *ecs.World) *PhysicsSystem {
	physics := ecs.Mapper(w, components.NewPhysics)

	allOf := ecs.NewBitArray()
	allOf.Set(int(physics.ID()))
	family, err := w.Family(allOf, ecs.NewBitArray(), ecs.NewBitArray())
	if err != nil {
		panic(err)
	}

	ps := &PhysicsSystem{
		physics: physics,
		gravity: components.Vector2{X: 0, Y: 980},
		drag:    0.98,
	}
	ps.IteratingSystem = ecs.NewIteratingSystem(ecs.Fixed(1.0/60.0), family, ps.tick)
	return ps
}

// SetGravity sets the global gravity vector applied to non-static bodies.
func (ps *PhysicsSystem) SetGravity(g components.Vector2) {
	ps.gravity = g
}

func (ps *PhysicsSystem) tick(w *ecs.World, e ecs.Entity, dt float32) {
	p := ps.physics.Get(e)
	if p.IsStatic || p.Mass <= 0 {
		return
	}

	if p.Gravity {
		p.Velocity.X += ps.gravity.X * dt
		p.Velocity.Y += ps.gravity.Y * dt
	}

	if p.Friction > 0 {
		factor := 1 - p.Friction*dt
		if factor < 0 {
			factor = 0
		}
		p.Velocity.X *= factor
		p.Velocity.Y *= factor
	}
}
