package main

import (
	"flag"
	"log"

	"github.com/automoto/laststand/config"
	"github.com/automoto/laststand/fonts"
	"github.com/automoto/laststand/scenes"
	"github.com/automoto/laststand/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	if err := fonts.Load(); err != nil {
		return nil, err
	}

	scene, err := scenes.NewArenaScene()
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.Close()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	tuning := flag.String("tuning", "", "YAML file overriding player and physics tuning")
	debug := flag.Bool("debug", false, "start with the debug overlay shown")
	logPew := flag.Bool("logpew", false, "log every attack")
	mute := flag.Bool("mute", false, "disable sound effects")
	flag.Parse()

	config.Debug.LogPew = *logPew

	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}
	// flags given on the command line win over saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			config.Debug.Overlay = *debug
		case "mute":
			config.Audio.Muted = *mute
		}
	})

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
