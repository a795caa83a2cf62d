package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

func Test_PhysicsSystem_AppliesGravity(t *testing.T) {
	// Arrange
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	ps, err := ecs.AddSystem(w, NewPhysicsSystem(w))
	require.NoError(t, err)
	ps.SetGravity(components.Vector2{X: 0, Y: 100})

	physics := ecs.Mapper(w, components.NewPhysics)
	e := w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
		physics.Add(ctx.Entity, func(p *components.Physics) {
			p.Gravity = true
			p.Friction = 0
		})
	})

	// Act: PhysicsSystem steps at a fixed 60Hz, so one full second of Update
	// calls should accumulate exactly 60 steps.
	for i := 0; i < 60; i++ {
		w.Update(1.0 / 60.0)
	}

	// Assert
	assert.InDelta(t, 100, physics.Get(e).Velocity.Y, 0.5)
}

func Test_PhysicsSystem_IgnoresStaticBodies(t *testing.T) {
	// Arrange
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	ecs.AddSystem(w, NewPhysicsSystem(w))
	physics := ecs.Mapper(w, components.NewPhysics)
	e := w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
		physics.Add(ctx.Entity, func(p *components.Physics) {
			p.Gravity = true
			p.IsStatic = true
		})
	})

	// Act
	w.Update(1.0)

	// Assert
	assert.Equal(t, float32(0), physics.Get(e).Velocity.Y)
}

func Test_PhysicsSystem_AppliesFrictionDecay(t *testing.T) {
	// Arrange
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	ecs.AddSystem(w, NewPhysicsSystem(w))
	physics := ecs.Mapper(w, components.NewPhysics)
	e := w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
		physics.Add(ctx.Entity, func(p *components.Physics) {
			p.Velocity = components.Vector2{X: 100}
			p.Friction = 1.0
			p.Gravity = false
		})
	})

	// Act
	w.Update(1.0 / 60.0)

	// Assert
	assert.Less(t, physics.Get(e).Velocity.X, float32(100))
}

func Test_PhysicsSystem_ZeroMass_IsSkipped(t *testing.T) {
	// Arrange
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	ecs.AddSystem(w, NewPhysicsSystem(w))
	physics := ecs.Mapper(w, components.NewPhysics)
	e := w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
		physics.Add(ctx.Entity, func(p *components.Physics) {
			p.Mass = 0
			p.Gravity = true
		})
	})

	// Act
	w.Update(1.0)

	// Assert
	assert.Equal(t, float32(0), physics.Get(e).Velocity.Y)
}
