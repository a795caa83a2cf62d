package components

// Physics holds the velocity/acceleration/mass state a physics system
// integrates each tick, grounded on the teacher's PhysicsComponent
// (internal/core/ecs/components/physics.go). The movement and physics
// systems read and write every field except Acceleration, which neither
// system uses.
type Physics struct {
	Velocity     Vector2
	Acceleration Vector2
	Mass         float32
	Friction     float32
	Gravity      bool
	IsStatic     bool
	MaxSpeed     float32
}

// NewPhysics returns a Physics with unit mass, no friction, and a generous
// max speed cap.
func NewPhysics() Physics {
	return Physics{Mass: 1, MaxSpeed: 10000}
}
