package systems

import (
	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

// HealthSystem applies regeneration and status-effect expiry to every entity
// carrying Health each tick, and removes an entity once it dies. Grounded on
// the teacher's HealthComponent (internal/core/ecs/components/health.go)
// whose TakeDamage/Heal/UpdateRegeneration/UpdateStatusEffects lived as
// methods on the component itself — per spec.md's "components are data,
// systems are behavior" stance (and DESIGN.md's note that this behavior
// moves to the owning system), those operations live here instead.
type HealthSystem struct {
	*ecs.IteratingSystem

	health *ecs.ComponentMapper[components.Health]

	OnDeath func(w *ecs.World, e ecs.Entity)
}

// NewHealthSystem builds a HealthSystem ticking every frame over every
// entity carrying Health.
func NewHealthSystem(w *ecs.World) *HealthSystem {
	health := ecs.Mapper(w, func() components.Health { return components.NewHealth(1) })

	allOf := ecs.NewBitArray()
	allOf.Set(int(health.ID()))
	family, err := w.Family(allOf, ecs.NewBitArray(), ecs.NewBitArray())
	if err != nil {
		panic(err)
	}

	hs := &HealthSystem{health: health}
	hs.IteratingSystem = ecs.NewIteratingSystem(ecs.EachFrame(), family, hs.tick)
	return hs
}

func (hs *HealthSystem) tick(w *ecs.World, e ecs.Entity, dt float32) {
	h := hs.health.Get(e)
	hs.updateRegeneration(h, dt)
	hs.updateStatusEffects(h, dt)
	if h.IsDead() {
		if hs.OnDeath != nil {
			hs.OnDeath(w, e)
		}
		w.RemoveEntity(e)
	}
}

// updateRegeneration restores health at RegenerationRate per second, capped
// at Max, the same linear accrual as the teacher's UpdateRegeneration.
func (hs *HealthSystem) updateRegeneration(h *components.Health, dt float32) {
	if h.RegenerationRate <= 0 || h.Current >= h.Max {
		return
	}
	next := float32(h.Current) + h.RegenerationRate*dt
	if next > float32(h.Max) {
		next = float32(h.Max)
	}
	h.Current = int(next)
}

// updateStatusEffects counts down every active effect's Duration and drops
// it once expired, grounded on the teacher's UpdateStatusEffects.
func (hs *HealthSystem) updateStatusEffects(h *components.Health, dt float32) {
	if len(h.StatusEffects) == 0 {
		return
	}
	remaining := h.StatusEffects[:0]
	for _, effect := range h.StatusEffects {
		effect.Duration -= dt
		if effect.Duration > 0 {
			remaining = append(remaining, effect)
		}
	}
	h.StatusEffects = remaining
}

// TakeDamage applies damage to entity's Health, shield first, and returns the
// amount actually deducted from Current. Grounded on the teacher's
// HealthComponent.TakeDamage.
func (hs *HealthSystem) TakeDamage(e ecs.Entity, damage int) int {
	h := hs.health.Get(e)
	if h.IsInvincible || damage <= 0 {
		return 0
	}

	remaining := damage
	if h.Shield > 0 {
		if h.Shield >= remaining {
			h.Shield -= remaining
			return 0
		}
		remaining -= h.Shield
		h.Shield = 0
	}

	if h.Current < remaining {
		remaining = h.Current
	}
	h.Current -= remaining
	return remaining
}

// Heal restores entity's Health up to Max and returns the amount actually
// restored. Grounded on the teacher's HealthComponent.Heal.
func (hs *HealthSystem) Heal(e ecs.Entity, amount int) int {
	if amount <= 0 {
		return 0
	}
	h := hs.health.Get(e)
	actual := amount
	if h.Current+amount > h.Max {
		actual = h.Max - h.Current
	}
	h.Current += actual
	return actual
}

// AddStatusEffect installs effect, replacing any existing effect of the same
// Type, grounded on the teacher's HealthComponent.AddStatusEffect.
func (hs *HealthSystem) AddStatusEffect(e ecs.Entity, effect components.StatusEffect) {
	h := hs.health.Get(e)
	for i, existing := range h.StatusEffects {
		if existing.Type == effect.Type {
			h.StatusEffects[i] = effect
			return
		}
	}
	h.StatusEffects = append(h.StatusEffects, effect)
}

// HasStatusEffect reports whether entity currently carries an active effect
// of the given type.
func (hs *HealthSystem) HasStatusEffect(e ecs.Entity, effectType components.StatusType) bool {
	h := hs.health.Get(e)
	for _, effect := range h.StatusEffects {
		if effect.Type == effectType {
			return true
		}
	}
	return false
}
