// Command kestrel is a minimal playable host: one window, one World, and a
// handful of entities to prove the systems tick and draw together. Grounded
// on the teacher's cmd/game/main.go.
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	lua "github.com/yuin/gopher-lua"

	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/core"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

// blankAssets is a demo-only TextureSource/SoundSource backed
// by solid-color placeholder images and silent playback, so the host runs
// with zero external asset files.
type blankAssets struct {
	textures map[string]*ebiten.Image
}

func newBlankAssets() *blankAssets {
	img := ebiten.NewImage(16, 16)
	img.Fill(color.RGBA{R: 200, G: 200, B: 220, A: 255})
	return &blankAssets{textures: map[string]*ebiten.Image{"default": img}}
}

func (a *blankAssets) Texture(id string) *ebiten.Image {
	if img, ok := a.textures[id]; ok {
		return img
	}
	return a.textures["default"]
}

func (a *blankAssets) NewPlayer(ctx *audio.Context, soundID string) *audio.Player {
	player, err := audio.NewPlayer(ctx, emptyReader{})
	if err != nil {
		return nil
	}
	return player
}

// emptyReader is an io.Reader that yields silence, standing in for decoded
// sound data the demo host never loads.
type emptyReader struct{}

func (emptyReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

// noScripts satisfies systems.ScriptLoader by never finding a script, so
// AI-driven entities fall back to whatever velocity their Physics already
// carries.
type noScripts struct{}

func (noScripts) Update(state *lua.LState, scriptName string) (*lua.LFunction, error) {
	return nil, fmt.Errorf("kestrel: no script loader configured, cannot load %q", scriptName)
}

func main() {
	assets := newBlankAssets()
	game := core.NewGame(assets, assets, noScripts{})
	spawnDemoEntities(game.World)

	if err := game.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "kestrel:", err)
		os.Exit(1)
	}
}

// spawnDemoEntities seeds the world with a handful of falling sprites so
// the window shows movement immediately.
func spawnDemoEntities(w *ecs.World) {
	transform := ecs.Mapper(w, components.NewTransform)
	physics := ecs.Mapper(w, components.NewPhysics)
	sprite := ecs.Mapper(w, func() components.Sprite { return components.NewSprite("default") })

	for i := 0; i < 8; i++ {
		x := float32(80 + i*60)
		order := i
		w.CreateEntity(func(ctx ecs.EntityCreateCtx) {
			transform.Add(ctx.Entity, func(t *components.Transform) {
				t.Position = components.Vector2{X: x, Y: 40}
			})
			physics.Add(ctx.Entity, func(p *components.Physics) {
				p.Mass = 1
				p.Gravity = true
				p.Friction = 0.02
				p.MaxSpeed = 600
			})
			sprite.Add(ctx.Entity, func(s *components.Sprite) {
				s.ZOrder = order
				s.Visible = true
			})
		})
	}
}
