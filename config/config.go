package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidPlayerConfig marks a player configuration that must not reach play.
var ErrInvalidPlayerConfig = errors.New("invalid player config")

// PlayerConfig is the construction-time tuning of the character controller.
type PlayerConfig struct {
	// Movement
	MoveSpeed     float64 `yaml:"moveSpeed"`     // target speed in world units per second
	RotationSpeed float64 `yaml:"rotationSpeed"` // carried, not used by the controller
	SmoothTime    float64 `yaml:"smoothTime"`    // lerp factor per physics tick while moving (0-1]
	Inertia       float64 `yaml:"inertia"`       // lerp factor per physics tick toward rest (0-1]

	// Attack
	AttackRange    float64 `yaml:"attackRange"`    // carried, not used by the controller
	AttackCooldown float64 `yaml:"attackCooldown"` // seconds between attacks while fire is held
	AttackDisabled bool    `yaml:"attackDisabled"` // build the controller without the attack loop

	// Body
	Radius float64 `yaml:"radius"` // footprint radius in world units
}

// Validate reports the first setting that would leave the controller in a
// degenerate state.
func (p PlayerConfig) Validate() error {
	type rule struct {
		desc string
		ok   bool
		got  float64
	}
	rules := []rule{
		{"moveSpeed must be > 0", finite(p.MoveSpeed) && p.MoveSpeed > 0, p.MoveSpeed},
		{"smoothTime must be in (0, 1]", finite(p.SmoothTime) && p.SmoothTime > 0 && p.SmoothTime <= 1, p.SmoothTime},
		{"inertia must be in (0, 1]", finite(p.Inertia) && p.Inertia > 0 && p.Inertia <= 1, p.Inertia},
		{"rotationSpeed must be >= 0", finite(p.RotationSpeed) && p.RotationSpeed >= 0, p.RotationSpeed},
		{"attackRange must be >= 0", finite(p.AttackRange) && p.AttackRange >= 0, p.AttackRange},
		{"radius must be > 0", finite(p.Radius) && p.Radius > 0, p.Radius},
	}
	if !p.AttackDisabled {
		rules = append(rules, rule{"attackCooldown must be > 0", finite(p.AttackCooldown) && p.AttackCooldown > 0, p.AttackCooldown})
	}

	for _, r := range rules {
		if !r.ok {
			return fmt.Errorf("%w: %s (got %v)", ErrInvalidPlayerConfig, r.desc, r.got)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PhysicsConfig contains the fixed-step simulation settings
type PhysicsConfig struct {
	FixedStep     float64 `yaml:"fixedStep"`     // seconds per physics tick
	MaxSubSteps   int     `yaml:"maxSubSteps"`   // physics ticks allowed per frame before dropping time
	MaxFrameDelta float64 `yaml:"maxFrameDelta"` // longest logic tick accepted, in seconds
}

// ArenaConfig describes the walled floor the player moves on
type ArenaConfig struct {
	Width         float64 // world units along X
	Depth         float64 // world units along Z
	WallThickness float64
	SpawnX        float64
	SpawnZ        float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PixelsPerUnit       float64 // world unit to screen pixel scale
	FollowSmoothing     float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistance   float64 // Max look-ahead offset in world units
	LookAheadSmoothing  float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedLimit float64 // Minimum speed to update look-ahead
}

// ShotConfig contains the attack tracer effect settings
type ShotConfig struct {
	Length    float64 // world units
	Lifetime  float32 // seconds
	Thickness float32 // pixels
	Color     color.RGBA

	ShakeIntensity float64 // world units
	ShakeFrames    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Start with the debug overlay shown
	LogPew  bool // Log every attack
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Arena ArenaConfig
var Camera CameraConfig
var Shot ShotConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Floor        = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	WallGray     = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Last Stand",
	}

	Player = PlayerConfig{
		MoveSpeed:     5.0,
		RotationSpeed: 5.0,
		SmoothTime:    0.2,
		Inertia:       0.1,

		AttackRange:    5.0,
		AttackCooldown: 2.0,

		Radius: 0.5,
	}

	Physics = PhysicsConfig{
		FixedStep:     0.02, // 50 Hz
		MaxSubSteps:   5,
		MaxFrameDelta: 0.25,
	}

	Arena = ArenaConfig{
		Width:         40,
		Depth:         24,
		WallThickness: 1,
		SpawnX:        20,
		SpawnZ:        12,
	}

	Camera = CameraConfig{
		PixelsPerUnit:       32,
		FollowSmoothing:     0.1,
		LookAheadDistance:   2.0,
		LookAheadSmoothing:  0.05,
		LookAheadSpeedLimit: 0.5,
	}

	Shot = ShotConfig{
		Length:    3.0,
		Lifetime:  0.25,
		Thickness: 3,
		Color:     Orange,

		ShakeIntensity: 0.08,
		ShakeFrames:    8,
	}
}
