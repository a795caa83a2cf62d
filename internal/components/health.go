package components

// Health holds an entity's hit points, shield, and active status effects.
// Grounded on the teacher's HealthComponent
// (internal/core/ecs/components/health.go), trimmed to data only — damage
// application, regeneration, and status-effect expiry move to a system
// (see internal/systems) rather than living as methods on the component.
type Health struct {
	Current          int
	Max              int
	Shield           int
	IsInvincible     bool
	RegenerationRate float32
	StatusEffects    []StatusEffect
}

// NewHealth returns a Health at full hit points for the given max.
func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// IsDead reports whether current health has reached zero.
func (h Health) IsDead() bool {
	return h.Current <= 0
}
