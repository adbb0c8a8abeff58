// Package config loads the application configuration from TOML over
// built-in defaults: transition tuning, sampler parameters, and
// frontend toggles.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/blob-morph/blob"
	"github.com/lixenwraith/blob-morph/sampler"
	"github.com/lixenwraith/blob-morph/swarm"
	"github.com/lixenwraith/blob-morph/transition"
)

// Config is the full application configuration
type Config struct {
	Transition transition.Config
	Sampler    sampler.Params

	// FPS is the terminal frame rate
	FPS int
	// Audio toggles the sound cues
	Audio bool
	// Loop restarts the transition with source and target swapped
	// whenever a run completes
	Loop bool
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Transition: transition.DefaultConfig(),
		Sampler:    sampler.DefaultParams(),
		FPS:        60,
		Audio:      true,
		Loop:       false,
	}
}

// Validate checks the frontend fields and delegates the rest
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("config: fps %d, want 1..240", c.FPS)
	}
	if c.Sampler.Spacing < 1 {
		return fmt.Errorf("config: sampler spacing %d, want at least 1", c.Sampler.Spacing)
	}
	return c.Transition.Validate()
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults untouched. Absent keys keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	schema := toSchema(cfg)
	if err := toml.Unmarshal(data, &schema); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg = fromSchema(schema)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// fileSchema mirrors Config with phase durations in milliseconds, the
// friendlier unit for hand-edited files
type fileSchema struct {
	Transition transitionSchema `toml:"transition"`
	Sampler    sampler.Params   `toml:"sampler"`
	FPS        int              `toml:"fps"`
	Audio      bool             `toml:"audio"`
	Loop       bool             `toml:"loop"`
}

type transitionSchema struct {
	Ring  blob.RingParams `toml:"ring"`
	Swarm swarm.Params    `toml:"swarm"`

	StaticMs    int `toml:"static_ms"`
	ExplosionMs int `toml:"explosion_ms"`
	MorphMs     int `toml:"morph_ms"`
	BlendMs     int `toml:"blend_ms"`

	ExplosionIntensity float64 `toml:"explosion_intensity"`
	InitialBlobs       int     `toml:"initial_blobs"`
	Width              float64 `toml:"width"`
	Height             float64 `toml:"height"`
}

func toSchema(c Config) fileSchema {
	return fileSchema{
		Transition: transitionSchema{
			Ring:               c.Transition.Ring,
			Swarm:              c.Transition.Swarm,
			StaticMs:           int(c.Transition.StaticDuration / time.Millisecond),
			ExplosionMs:        int(c.Transition.ExplosionDuration / time.Millisecond),
			MorphMs:            int(c.Transition.MorphDuration / time.Millisecond),
			BlendMs:            int(c.Transition.BlendDuration / time.Millisecond),
			ExplosionIntensity: c.Transition.ExplosionIntensity,
			InitialBlobs:       c.Transition.InitialBlobs,
			Width:              c.Transition.Width,
			Height:             c.Transition.Height,
		},
		Sampler: c.Sampler,
		FPS:     c.FPS,
		Audio:   c.Audio,
		Loop:    c.Loop,
	}
}

func fromSchema(s fileSchema) Config {
	return Config{
		Transition: transition.Config{
			Ring:               s.Transition.Ring,
			Swarm:              s.Transition.Swarm,
			StaticDuration:     time.Duration(s.Transition.StaticMs) * time.Millisecond,
			ExplosionDuration:  time.Duration(s.Transition.ExplosionMs) * time.Millisecond,
			MorphDuration:      time.Duration(s.Transition.MorphMs) * time.Millisecond,
			BlendDuration:      time.Duration(s.Transition.BlendMs) * time.Millisecond,
			ExplosionIntensity: s.Transition.ExplosionIntensity,
			InitialBlobs:       s.Transition.InitialBlobs,
			Width:              s.Transition.Width,
			Height:             s.Transition.Height,
		},
		Sampler: s.Sampler,
		FPS:     s.FPS,
		Audio:   s.Audio,
		Loop:    s.Loop,
	}
}
