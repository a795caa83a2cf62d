// Package core wires one World to an ebiten.Game, grounded on the teacher's
// Game (internal/core/game.go) — it owns the render loop and the registered
// systems, and otherwise stays out of gameplay logic's way.
package core

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	lua "github.com/yuin/gopher-lua"

	"github.com/kestrel-engine/kestrel/internal/ecs"
	"github.com/kestrel-engine/kestrel/internal/systems"
)

const sampleRate = 44100

// Game owns the World and keeps handles to the systems that need direct
// access to ebiten (rendering, audio). Audio ticks through World.Update like
// the rest; rendering does its work in Draw, since it needs the
// *ebiten.Image that ebiten hands to Game.Draw.
type Game struct {
	World    *ecs.World
	luaState *lua.LState

	rendering *systems.RenderingSystem
	audioSys  *systems.AudioSystem

	width, height int
}

// NewGame constructs a World, registers the standard gameplay systems
// (movement, physics, health, rendering, audio, AI), and returns a Game ready to
// run. textures, sounds, and scripts supply the asset and script lookups
// rendering/audio/AI need; a host with no content of its own can pass
// placeholder implementations (see cmd/kestrel for an example).
func NewGame(textures systems.TextureSource, sounds systems.SoundSource, scripts systems.ScriptLoader) *Game {
	w := ecs.NewWorld(ecs.DefaultWorldConfig())
	luaState := lua.NewState()
	audioCtx := audio.NewContext(sampleRate)

	if _, err := ecs.AddSystem(w, systems.NewMovementSystem(w)); err != nil {
		panic(err)
	}
	if _, err := ecs.AddSystem(w, systems.NewPhysicsSystem(w)); err != nil {
		panic(err)
	}
	if _, err := ecs.AddSystem(w, systems.NewHealthSystem(w)); err != nil {
		panic(err)
	}
	rendering, err := ecs.AddSystem(w, systems.NewRenderingSystem(w, textures))
	if err != nil {
		panic(err)
	}
	audioSys, err := ecs.AddSystem(w, systems.NewAudioSystem(w, audioCtx, sounds))
	if err != nil {
		panic(err)
	}
	if _, err := ecs.AddSystem(w, systems.NewAISystem(w, luaState, scripts)); err != nil {
		panic(err)
	}

	w.Inject("lua", luaState)
	w.Inject("audioContext", audioCtx)

	return &Game{
		World:     w,
		luaState:  luaState,
		rendering: rendering,
		audioSys:  audioSys,
		width:     1280,
		height:    720,
	}
}

// Update advances the World by one frame.
func (g *Game) Update() error {
	g.World.Update(1.0 / 60.0)
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 20, B: 30, A: 255})
	g.rendering.Draw(screen)
	ebitenutil.DebugPrintAt(screen, "kestrel", 4, 4)
}

// Layout reports the logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run starts the ebiten render loop and blocks until the window closes.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("kestrel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	defer g.World.Dispose()
	defer g.luaState.Close()

	return ebiten.RunGame(g)
}
