package components

// Transform holds an entity's 2D position, rotation (radians), and scale.
// Grounded on the teacher's TransformComponent
// (internal/core/ecs/components/transform.go), dropping its parent/child
// hierarchy and cached matrix — this runtime's Family/mapper model has no
// concept of scene-graph nesting, so every entity's transform is world-space.
type Transform struct {
	Position Vector2
	Rotation float32
	Scale    Vector2
}

// NewTransform returns a Transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: Vector2{X: 1, Y: 1}}
}
