package components

import "github.com/kestrel-engine/kestrel/internal/ecs"

// AI holds the NPC behavior state an AI system drives, grounded on the
// teacher's AIComponent (internal/core/ecs/components/ai.go) minus its
// state-history log and serialization — this runtime has no save/replay
// feature to feed.
type AI struct {
	State           AIState
	Target          ecs.Entity
	HasTarget       bool
	PatrolPoints    []Vector2
	PatrolIndex     int
	DetectionRadius float32
	AttackRange     float32
	Speed           float32
	Behavior        AIBehavior

	// Script is the name of the Lua behavior script governing this entity,
	// resolved through the AI system's ScriptLoader and run on that system's
	// shared Lua state.
	Script string
}

// NewAI returns an idle, neutral AI with sensible default ranges.
func NewAI() AI {
	return AI{
		DetectionRadius: 50,
		AttackRange:     10,
		Speed:           100,
		Behavior:        AIBehaviorNeutral,
	}
}

// NextPatrolPoint returns the next patrol waypoint and advances the index,
// wrapping around. Returns the zero Vector2 if no patrol points are set.
func (a *AI) NextPatrolPoint() Vector2 {
	if len(a.PatrolPoints) == 0 {
		return Vector2{}
	}
	p := a.PatrolPoints[a.PatrolIndex]
	a.PatrolIndex = (a.PatrolIndex + 1) % len(a.PatrolPoints)
	return p
}
