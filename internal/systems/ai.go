package systems

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

// ScriptLoader loads and caches a Lua chunk by name, returning a fresh
// callable "update" function value from it each time an entity needs to
// invoke its behavior script. Grounded on the teacher's
// LuaBridge.LoadScript/ExecuteScript (internal/core/ecs/lua/lua_bridge.go),
// trimmed down from the teacher's sandboxed VM-pool abstraction to the one
// call an IteratingSystem needs per tick.
type ScriptLoader interface {
	Update(state *lua.LState, scriptName string) (*lua.LFunction, error)
}

// AISystem drives NPC behavior by calling into a Lua "update" function once
// per tick for every entity carrying an AI component with a Script set,
// grounded on the teacher's lua bridge (internal/core/ecs/lua/lua_bridge.go)
// — a single shared *lua.LState plays the role of the teacher's per-entity
// LuaVM, since spec.md's runtime is single-threaded and scripts never run
// concurrently with each other or with the rest of the tick.
type AISystem struct {
	*ecs.IteratingSystem

	ai        *ecs.ComponentMapper[components.AI]
	transform *ecs.ComponentMapper[components.Transform]
	physics   *ecs.ComponentMapper[components.Physics]

	state   *lua.LState
	scripts ScriptLoader
}

// NewAISystem builds an AISystem over every entity carrying both AI and
// Transform, evaluating scripts at a fixed 30Hz decision rate.
func NewAISystem(w *ecs.World, state *lua.LState, scripts ScriptLoader) *AISystem {
	ai := ecs.Mapper(w, components.NewAI)
	transform := ecs.Mapper(w, components.NewTransform)
	physics := ecs.Mapper(w, components.NewPhysics)

	allOf := ecs.NewBitArray()
	allOf.Set(int(ai.ID()))
	allOf.Set(int(transform.ID()))
	family, err := w.Family(allOf, ecs.NewBitArray(), ecs.NewBitArray())
	if err != nil {
		panic(err)
	}

	as := &AISystem{
		ai:        ai,
		transform: transform,
		physics:   physics,
		state:     state,
		scripts:   scripts,
	}
	as.IteratingSystem = ecs.NewIteratingSystem(ecs.Fixed(1.0/30.0), family, as.tick)
	return as
}

func (as *AISystem) tick(w *ecs.World, e ecs.Entity, dt float32) {
	ai := as.ai.Get(e)
	if ai.Script == "" {
		return
	}
	fn, err := as.scripts.Update(as.state, ai.Script)
	if err != nil || fn == nil {
		return
	}

	t := as.transform.Get(e)
	self := as.state.NewTable()
	self.RawSetString("x", lua.LNumber(t.Position.X))
	self.RawSetString("y", lua.LNumber(t.Position.Y))
	self.RawSetString("state", lua.LNumber(ai.State))
	self.RawSetString("detection_radius", lua.LNumber(ai.DetectionRadius))
	self.RawSetString("attack_range", lua.LNumber(ai.AttackRange))
	self.RawSetString("speed", lua.LNumber(ai.Speed))

	as.state.Push(fn)
	as.state.Push(self)
	as.state.Push(lua.LNumber(dt))
	if err := as.state.PCall(2, 1, nil); err != nil {
		return
	}
	result, ok := as.state.Get(-1).(*lua.LTable)
	as.state.Pop(1)
	if !ok {
		return
	}

	if next, ok := result.RawGetString("state").(lua.LNumber); ok {
		newState := components.AIState(next)
		if newState != ai.State {
			ai.State = newState
		}
	}
	if vx, ok := result.RawGetString("vx").(lua.LNumber); ok {
		if p := as.physics.GetOrNull(e); p != nil {
			p.Velocity.X = float32(vx)
		}
	}
	if vy, ok := result.RawGetString("vy").(lua.LNumber); ok {
		if p := as.physics.GetOrNull(e); p != nil {
			p.Velocity.Y = float32(vy)
		}
	}
}
