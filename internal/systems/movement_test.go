package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

func Test_MovementSystem_IntegratesVelocityIntoPosition(t *testing.T) {
	// Arrange
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	ms, err := ecs.AddSystem(w, NewMovementSystem(w))
	require.NoError(t, err)

	transform := ecs.Mapper(w, components.NewTransform)
	physics := ecs.Mapper(w, components.NewPhysics)
	e := w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
		transform.Add(ctx.Entity, nil)
		physics.Add(ctx.Entity, func(p *components.Physics) {
			p.Velocity = components.Vector2{X: 10, Y: 0}
		})
	})
	_ = ms

	// Act
	w.Update(1.0)

	// Assert
	assert.Equal(t, float32(10), transform.Get(e).Position.X)
}

func Test_MovementSystem_StaticBody_DoesNotMove(t *testing.T) {
	// Arrange
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	ecs.AddSystem(w, NewMovementSystem(w))
	transform := ecs.Mapper(w, components.NewTransform)
	physics := ecs.Mapper(w, components.NewPhysics)
	e := w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
		transform.Add(ctx.Entity, nil)
		physics.Add(ctx.Entity, func(p *components.Physics) {
			p.Velocity = components.Vector2{X: 10}
			p.IsStatic = true
		})
	})

	// Act
	w.Update(1.0)

	// Assert
	assert.Equal(t, float32(0), transform.Get(e).Position.X)
}

func Test_MovementSystem_ClampsToMaxSpeed(t *testing.T) {
	// Arrange
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	ecs.AddSystem(w, NewMovementSystem(w))
	transform := ecs.Mapper(w, components.NewTransform)
	physics := ecs.Mapper(w, components.NewPhysics)
	w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
		transform.Add(ctx.Entity, nil)
		physics.Add(ctx.Entity, func(p *components.Physics) {
			p.Velocity = components.Vector2{X: 300, Y: 400} // magnitude 500
			p.MaxSpeed = 100
		})
	})

	// Act
	w.Update(1.0)

	// Assert
	e := ecs.Entity(0)
	v := physics.Get(e).Velocity
	speed := v.X*v.X + v.Y*v.Y
	assert.InDelta(t, 100*100, speed, 0.01)
}

func Test_MovementSystem_SetBoundary_ClampsPosition(t *testing.T) {
	// Arrange
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	ms, err := ecs.AddSystem(w, NewMovementSystem(w))
	require.NoError(t, err)
	ms.SetBoundary(Boundary{X: 0, Y: 0, Width: 50, Height: 50})

	transform := ecs.Mapper(w, components.NewTransform)
	physics := ecs.Mapper(w, components.NewPhysics)
	e := w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
		transform.Add(ctx.Entity, nil)
		physics.Add(ctx.Entity, func(p *components.Physics) {
			p.Velocity = components.Vector2{X: 1000}
		})
	})

	// Act
	w.Update(1.0)

	// Assert
	assert.Equal(t, float32(50), transform.Get(e).Position.X)
}
