package systems

import (
	"encoding/binary"
	"log"
	"math"
	"sync"

	"github.com/automoto/laststand/components"
	cfg "github.com/automoto/laststand/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalClips        map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders every tone once.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalClips = make(map[cfg.SoundID][]byte, len(cfg.Tones))
		for id, tone := range cfg.Tones {
			globalClips[id] = SynthesizeTone(tone, cfg.Audio.SampleRate)
		}
		log.Printf("[audio] rendered %d clips at %d Hz", len(globalClips), cfg.Audio.SampleRate)
	})
}

// PreloadAllSFX renders the clips up front so the first attack does not
// stall.
func PreloadAllSFX(e *ecs.ECS) {
	initGlobalAudio()
	getOrCreateAudio(e)
}

// QueueSFX asks UpdateAudio to play a sound this frame.
func QueueSFX(e *ecs.ECS, id cfg.SoundID) {
	a := getOrCreateAudio(e)
	a.PendingSFX = append(a.PendingSFX, id)
}

// UpdateAudio plays the sounds queued this frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	settings := GetOrCreateSettings(e)

	for _, id := range audioData.PendingSFX {
		if settings.Muted {
			continue
		}
		playSFX(audioData, id)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(a *components.AudioData, id cfg.SoundID) {
	if a.Context == nil || a.SFXVolume <= 0 {
		return
	}
	clip, ok := a.Clips[id]
	if !ok {
		return
	}

	volume := a.SFXVolume
	if tone, ok := cfg.Tones[id]; ok {
		volume *= tone.Volume
	}

	player := a.Context.NewPlayerFromBytes(clip)
	player.SetVolume(volume)
	player.Play()
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:   globalAudioContext,
			SFXVolume: cfg.Audio.DefaultSFXVol,
			Clips:     globalClips,
		})
	}
	return components.Audio.Get(entry)
}

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM, the
// format ebiten's audio players read. The pitch sweeps exponentially from
// StartHz to EndHz while the amplitude fades linearly to silence.
func SynthesizeTone(tone cfg.ToneConfig, sampleRate int) []byte {
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 || tone.StartHz <= 0 || tone.EndHz <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	ratio := tone.EndHz / tone.StartHz
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.StartHz * math.Pow(ratio, t)
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := (1 - t) * math.Sin(phase)
		v := int16(amp * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
