package components

import (
	cfg "github.com/automoto/laststand/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	SFXVolume  float64 // 0.0 - 1.0
	Clips      map[cfg.SoundID][]byte
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
