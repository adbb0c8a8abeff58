package transition

import (
	"fmt"
	"time"

	"github.com/lixenwraith/blob-morph/blob"
	"github.com/lixenwraith/blob-morph/swarm"
)

// Config assembles everything a transition run needs. Zero or missing
// required fields fail Validate; out-of-range values (for example a
// negative duration) are the caller's responsibility and produce
// undefined phase timing rather than errors.
type Config struct {
	Ring  blob.RingParams `toml:"ring"`
	Swarm swarm.Params    `toml:"swarm"`

	StaticDuration    time.Duration `toml:"static_duration"`
	ExplosionDuration time.Duration `toml:"explosion_duration"`
	MorphDuration     time.Duration `toml:"morph_duration"`
	BlendDuration     time.Duration `toml:"blend_duration"`

	// ExplosionIntensity is the scatter kick in pixels per second
	ExplosionIntensity float64 `toml:"explosion_intensity"`
	// InitialBlobs is the cluster count used to seed rings from the
	// source samples
	InitialBlobs int `toml:"initial_blobs"`

	// Canvas dimensions in pixels; also the reflective bounds
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// DefaultConfig returns the stock sub-3-second transition tuning
func DefaultConfig() Config {
	return Config{
		Ring:               blob.DefaultRingParams(),
		Swarm:              swarm.DefaultParams(),
		StaticDuration:     600 * time.Millisecond,
		ExplosionDuration:  900 * time.Millisecond,
		MorphDuration:      1200 * time.Millisecond,
		BlendDuration:      400 * time.Millisecond,
		ExplosionIntensity: 350.0,
		InitialBlobs:       6,
		Width:              400,
		Height:             400,
	}
}

// Validate rejects missing required fields, the one failure class a
// caller sees at construction time
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("transition: canvas dimensions %gx%g, want positive", c.Width, c.Height)
	}
	if c.InitialBlobs < 1 {
		return fmt.Errorf("transition: initial blob count %d, want at least 1", c.InitialBlobs)
	}
	if c.Swarm.MinBlobSize < 1 {
		return fmt.Errorf("transition: min blob size %d, want at least 1", c.Swarm.MinBlobSize)
	}
	if c.Swarm.TensionRadius <= 0 {
		return fmt.Errorf("transition: tension radius %g, want positive", c.Swarm.TensionRadius)
	}
	if c.Swarm.CohesionRadius <= 0 {
		return fmt.Errorf("transition: cohesion radius %g, want positive", c.Swarm.CohesionRadius)
	}
	if c.Swarm.SplitThreshold <= 0 {
		return fmt.Errorf("transition: split threshold %g, want positive", c.Swarm.SplitThreshold)
	}
	if c.Swarm.MergeThreshold <= 0 {
		return fmt.Errorf("transition: merge threshold %g, want positive", c.Swarm.MergeThreshold)
	}
	if c.Swarm.MaxSpeed <= 0 {
		return fmt.Errorf("transition: max speed %g, want positive", c.Swarm.MaxSpeed)
	}
	return nil
}

// phaseDuration returns the configured duration of a timed phase; idle
// and complete do not expire
func (c Config) phaseDuration(p Phase) time.Duration {
	switch p {
	case PhaseStatic:
		return c.StaticDuration
	case PhaseExplosion:
		return c.ExplosionDuration
	case PhaseMorph:
		return c.MorphDuration
	case PhaseBlend:
		return c.BlendDuration
	default:
		return 0
	}
}
