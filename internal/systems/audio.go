package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/kestrel-engine/kestrel/internal/components"
	"github.com/kestrel-engine/kestrel/internal/ecs"
)

// SoundSource supplies a fresh audio.Player for a sound id, already decoded
// against the AudioSystem's shared audio.Context. A host registers its
// loaded sound banks here; the system does no decoding of its own.
type SoundSource interface {
	NewPlayer(ctx *audio.Context, soundID string) *audio.Player
}

// AudioSystem drives 3D positional playback for every entity carrying
// Audio, grounded on the teacher's AudioSystem
// (internal/core/systems/audio.go) — its AudioEngine abstraction becomes
// ebiten/audio directly, and its linear-falloff 3D volume model
// (calculate3DVolume) is kept as-is.
type AudioSystem struct {
	*ecs.IteratingSystem

	transform *ecs.ComponentMapper[components.Transform]
	audioC    *ecs.ComponentMapper[components.Audio]

	ctx      *audio.Context
	sounds   SoundSource
	players  map[ecs.Entity]*audio.Player
	listener components.Vector2

	MasterVolume float32
}

// NewAudioSystem builds an AudioSystem over every entity carrying Audio,
// ticking every frame to start/stop players and apply distance attenuation
// for entities that also carry Transform and have Is3D set.
func NewAudioSystem(w *ecs.World, ctx *audio.Context, sounds SoundSource) *AudioSystem {
	transform := ecs.Mapper(w, components.NewTransform)
	audioC := ecs.Mapper(w, func() components.Audio { return components.NewAudio("") })

	allOf := ecs.NewBitArray()
	allOf.Set(int(audioC.ID()))
	family, err := w.Family(allOf, ecs.NewBitArray(), ecs.NewBitArray())
	if err != nil {
		panic(err)
	}

	as := &AudioSystem{
		transform:    transform,
		audioC:       audioC,
		ctx:          ctx,
		sounds:       sounds,
		players:      make(map[ecs.Entity]*audio.Player),
		MasterVolume: 1,
	}
	as.IteratingSystem = ecs.NewIteratingSystem(ecs.EachFrame(), family, as.tick)
	// Entity ids are recycled with no generation counter (spec.md §9), so a
	// player left keyed under a removed entity's id would otherwise leak and,
	// worse, get handed to whatever new entity is later allocated that id.
	audioC.AddListener(audioPlayerCleanup{as})
	return as
}

// audioPlayerCleanup drops an entity's tracked audio.Player when its Audio
// component is removed, whether directly or via full entity removal.
type audioPlayerCleanup struct{ as *AudioSystem }

func (audioPlayerCleanup) OnAdd(*ecs.World, ecs.Entity, *components.Audio) {}

func (c audioPlayerCleanup) OnRemove(_ *ecs.World, e ecs.Entity, _ *components.Audio) {
	if player, ok := c.as.players[e]; ok {
		player.Pause()
		delete(c.as.players, e)
	}
}

// SetListener moves the 3D audio listener, usually to the player's position.
func (as *AudioSystem) SetListener(pos components.Vector2) {
	as.listener = pos
}

func (as *AudioSystem) tick(w *ecs.World, e ecs.Entity, dt float32) {
	a := as.audioC.Get(e)
	player, hasPlayer := as.players[e]

	if a.IsPlaying && !hasPlayer {
		player = as.sounds.NewPlayer(as.ctx, a.SoundID)
		if player == nil {
			return
		}
		as.players[e] = player
		player.Play()
	}
	if !a.IsPlaying && hasPlayer {
		player.Pause()
		delete(as.players, e)
		return
	}
	if player == nil {
		return
	}

	volume := float64(a.Volume * as.MasterVolume)
	if a.Is3D {
		if t := as.transform.GetOrNull(e); t != nil {
			volume *= as.attenuation(t.Position, a.MaxDistance)
		}
	}
	player.SetVolume(volume)

	if a.IsPaused {
		player.Pause()
	} else if !player.IsPlaying() && a.IsLoop {
		_ = player.Rewind()
		player.Play()
	}
}

// attenuation returns the teacher's linear distance falloff
// (calculate3DVolume), 0 at or beyond maxDistance and 1 at the listener.
func (as *AudioSystem) attenuation(pos components.Vector2, maxDistance float32) float64 {
	if maxDistance <= 0 {
		return 1
	}
	dx := float64(pos.X - as.listener.X)
	dy := float64(pos.Y - as.listener.Y)
	distance := math.Sqrt(dx*dx + dy*dy)
	if distance >= float64(maxDistance) {
		return 0
	}
	return 1 - distance/float64(maxDistance)
}
