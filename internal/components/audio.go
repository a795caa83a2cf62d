package components

// Audio holds 3D positional sound playback state for an entity, grounded on
// the teacher's AudioComponent (internal/core/ecs/components/audio.go)
// trimmed of its filter/reverb knobs, since this runtime has no DSP chain to
// apply them to. The audio system reads SoundID, Volume, the playing/loop/
// paused flags, Is3D and MaxDistance; Pitch, MinDistance, Rolloff and
// PlaybackPosition are carried but not read by it.
type Audio struct {
	SoundID string

	Volume float32
	Pitch  float32

	IsPlaying bool
	IsLoop    bool
	IsPaused  bool

	Is3D        bool
	MaxDistance float32
	MinDistance float32
	Rolloff     float32

	PlaybackPosition float32
}

// NewAudio returns an Audio at full volume and normal pitch, not yet playing.
func NewAudio(soundID string) Audio {
	return Audio{
		SoundID:     soundID,
		Volume:      1,
		Pitch:       1,
		MaxDistance: 100,
		MinDistance: 1,
		Rolloff:     1,
	}
}

// IsActive reports whether the sound is currently audible (playing and not
// paused).
func (a Audio) IsActive() bool {
	return a.IsPlaying && !a.IsPaused
}
