package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

// Camera is the world-to-screen projection a RenderingSystem draws through,
// grounded on the teacher's Camera (internal/core/systems/rendering.go).
type Camera struct {
	Position components.Vector2
	Zoom     float32
}

// TextureSource supplies the *ebiten.Image backing a sprite's TextureID. A
// host game registers its loaded textures here; the system does no asset
// loading of its own.
type TextureSource interface {
	Texture(id string) *ebiten.Image
}

// RenderingSystem draws every entity carrying Transform and Sprite, sorted
// by ZOrder, grounded on the teacher's RenderingSystem
// (internal/core/systems/rendering.go) — its Z sort is kept; there is no
// viewport culling, every visible member is drawn. Drawing itself, left as a
// TODO in the teacher, is implemented here against ebiten.
type RenderingSystem struct {
	*ecs.IntervalSystem

	transform *ecs.ComponentMapper[components.Transform]
	sprite    *ecs.ComponentMapper[components.Sprite]
	family    *ecs.Family
	textures  TextureSource

	Camera Camera

	order []ecs.Entity
}

// NewRenderingSystem builds a RenderingSystem over every entity carrying
// both Transform and Sprite. It does not tick on its own clock; the host
// calls Draw once per frame from ebiten.Game.Draw.
func NewRenderingSystem(w *ecs.World, textures TextureSource) *RenderingSystem {
	transform := ecs.Mapper(w, components.NewTransform)
	sprite := ecs.Mapper(w, func() components.Sprite { return components.NewSprite("") })

	allOf := ecs.NewBitArray()
	allOf.Set(int(transform.ID()))
	allOf.Set(int(sprite.ID()))
	family, err := w.Family(allOf, ecs.NewBitArray(), ecs.NewBitArray())
	if err != nil {
		panic(err)
	}

	rs := &RenderingSystem{
		transform: transform,
		sprite:    sprite,
		family:    family,
		textures:  textures,
		Camera:    Camera{Zoom: 1},
	}
	rs.IntervalSystem = ecs.NewIntervalSystem(ecs.EachFrame(), nil, nil)
	return rs
}

// Family returns the entity set this system draws.
func (rs *RenderingSystem) Family() *ecs.Family {
	return rs.family
}

// Draw renders every visible member of the family onto screen, ordered by
// ascending Sprite.ZOrder so higher layers paint over lower ones.
func (rs *RenderingSystem) Draw(screen *ebiten.Image) {
	rs.order = rs.order[:0]
	rs.family.ForEach(func(e ecs.Entity) {
		if rs.sprite.Get(e).Visible {
			rs.order = append(rs.order, e)
		}
	})
	sort.Slice(rs.order, func(i, j int) bool {
		return rs.sprite.Get(rs.order[i]).ZOrder < rs.sprite.Get(rs.order[j]).ZOrder
	})

	for _, e := range rs.order {
		rs.drawEntity(screen, e)
	}
}

func (rs *RenderingSystem) drawEntity(screen *ebiten.Image, e ecs.Entity) {
	t := rs.transform.Get(e)
	s := rs.sprite.Get(e)

	img := rs.textures.Texture(s.TextureID)
	if img == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	if s.FlipX {
		opts.GeoM.Scale(-1, 1)
	}
	if s.FlipY {
		opts.GeoM.Scale(1, -1)
	}
	opts.GeoM.Scale(float64(t.Scale.X*rs.Camera.Zoom), float64(t.Scale.Y*rs.Camera.Zoom))
	opts.GeoM.Rotate(float64(t.Rotation))
	opts.GeoM.Translate(
		float64((t.Position.X-rs.Camera.Position.X)*rs.Camera.Zoom),
		float64((t.Position.Y-rs.Camera.Position.Y)*rs.Camera.Zoom),
	)
	opts.ColorScale.ScaleWithColor(color.RGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A})

	screen.DrawImage(img, opts)
}
