package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundPew
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Muted         bool
}

// ToneConfig describes a synthesized sound effect: a sine sweep with a
// linear fade out.
type ToneConfig struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64 // multiplier on the SFX volume
}

var Audio AudioConfig
var Tones map[SoundID]ToneConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Tones = map[SoundID]ToneConfig{
		SoundPew: {StartHz: 1400, EndHz: 300, Duration: 0.12, Volume: 0.8},
	}
}
