package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile is the on-disk shape of a tuning override. Keys that are absent
// keep their current value.
type tuningFile struct {
	Player  PlayerConfig  `yaml:"player"`
	Physics PhysicsConfig `yaml:"physics"`
}

// LoadTuning reads a YAML override file and applies it to Player and Physics.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := ApplyTuning(data); err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	log.Printf("[config] applied tuning from %s", path)
	return nil
}

// ApplyTuning decodes data over the current configuration. Nothing is
// changed when decoding or validation fails.
func ApplyTuning(data []byte) error {
	doc := tuningFile{Player: Player, Physics: Physics}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}

	if err := doc.Player.Validate(); err != nil {
		return err
	}
	if err := doc.Physics.Validate(); err != nil {
		return err
	}

	Player = doc.Player
	Physics = doc.Physics
	return nil
}

// ErrInvalidPhysicsConfig marks an unusable fixed-step setup.
var ErrInvalidPhysicsConfig = errors.New("invalid physics config")

func (p PhysicsConfig) Validate() error {
	switch {
	case !finite(p.FixedStep) || p.FixedStep <= 0:
		return fmt.Errorf("%w: fixedStep must be > 0 (got %v)", ErrInvalidPhysicsConfig, p.FixedStep)
	case p.MaxSubSteps < 1:
		return fmt.Errorf("%w: maxSubSteps must be >= 1 (got %d)", ErrInvalidPhysicsConfig, p.MaxSubSteps)
	case !finite(p.MaxFrameDelta) || p.MaxFrameDelta < p.FixedStep:
		return fmt.Errorf("%w: maxFrameDelta must be >= fixedStep (got %v)", ErrInvalidPhysicsConfig, p.MaxFrameDelta)
	}
	return nil
}
