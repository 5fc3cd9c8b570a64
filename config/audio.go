package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundBoxBreak
	SoundItemPickup
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone is a synthesized square-wave blip used when no file is available.
type Tone struct {
	Frequencies []float64 // played back to back
	StepMillis  int       // length of each frequency step
}

// SoundConfig maps sound IDs to optional file paths and fallback tones
type SoundConfig struct {
	SFXPaths          map[SoundID]string
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		SFXPaths: map[SoundID]string{
			SoundBoxBreak:   "audio/sfx/box_break.wav",
			SoundItemPickup: "audio/sfx/item_pickup.wav",
		},
		Tones: map[SoundID]Tone{
			SoundBoxBreak:   {Frequencies: []float64{220, 165, 110}, StepMillis: 40},
			SoundItemPickup: {Frequencies: []float64{660, 880}, StepMillis: 50},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundBoxBreak: 1.2,
		},
	}
}
