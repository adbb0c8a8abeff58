package transition

import (
	"time"

	"github.com/lixenwraith/blob-morph/blob"
	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/swarm"
	"github.com/lixenwraith/blob-morph/vmath"
)

// reuseJitter spreads points that share a morph target when the source
// set outnumbers the target set, in pixels
const reuseJitter = 4.0

// ringColorRate is the exponential approach rate of ring colors toward
// their morph targets, per second
const ringColorRate = 3.0

// Controller owns one transition at a time: the point arena, the ring
// partition over it, the swarm engine, and the phase clock. Not safe
// for concurrent use; drive it from a single frame loop.
type Controller struct {
	cfg    Config
	bounds core.Bounds

	collection *blob.Collection
	physics    *swarm.Physics
	rng        *vmath.FastRand

	phase        Phase
	phaseElapsed time.Duration

	targetSource []core.Sample // raw target set, for renderers
	targets      []core.Sample // per-arena-index morph destinations
	sourceColors []core.Color  // snapshot taken at morph start

	onComplete func()
	fired      bool
}

// Option adjusts controller construction
type Option func(*Controller)

// WithSeed replaces the default deterministic RNG seed. Frame loops
// pass entropy here for visual variety; tests keep the default.
func WithSeed(seed uint64) Option {
	return func(c *Controller) {
		c.rng = vmath.NewFastRand(seed)
	}
}

// NewController validates the config and builds an idle controller
func NewController(cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:    cfg,
		bounds: core.Bounds{MaxX: cfg.Width, MaxY: cfg.Height},
		rng:    vmath.NewFastRand(1),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.collection = blob.NewCollection(cfg.Ring)
	c.physics = swarm.New(cfg.Swarm, c.rng)
	return c, nil
}

// Start aborts any in-flight run and begins a fresh transition from
// source toward target. An empty source or target leaves the
// controller idle. The pairing is index-modulo: point i morphs toward
// target i mod len(target); points beyond the target count share a
// destination with a small scatter.
func (c *Controller) Start(source, target []core.Sample) {
	c.abort()
	if len(source) == 0 || len(target) == 0 {
		return
	}

	c.collection.Reset(source)
	indices := make([]int, len(source))
	for i := range indices {
		indices[i] = i
	}
	for _, cluster := range c.physics.KMeans(c.collection.Points, indices, c.cfg.InitialBlobs) {
		c.collection.AddRing(cluster)
	}
	c.collection.EnforceMinSize(c.cfg.Swarm.MinBlobSize)

	c.buildTargets(target)
	c.setPhase(PhaseStatic)
}

// Stop aborts the run: the controller returns to idle and the pending
// completion callback is cancelled. Safe to call at any time; ticks on
// an idle controller are no-ops.
func (c *Controller) Stop() {
	c.abort()
}

// Update advances the transition by dt. Idle and complete controllers
// ignore ticks. One call crosses at most one phase boundary.
func (c *Controller) Update(dt time.Duration) {
	if dt <= 0 || c.phase == PhaseIdle || c.phase == PhaseComplete {
		return
	}
	if h := phaseHandlers[c.phase]; h.update != nil {
		h.update(c, dt.Seconds())
	}
	c.phaseElapsed += dt
	if c.phaseElapsed >= c.cfg.phaseDuration(c.phase) {
		c.setPhase(nextPhase(c.phase))
	}
}

// Phase returns the current phase
func (c *Controller) Phase() Phase {
	return c.phase
}

// PhaseProgress returns completion of the current timed phase in [0,1]
func (c *Controller) PhaseProgress() float64 {
	switch c.phase {
	case PhaseIdle:
		return 0
	case PhaseComplete:
		return 1
	}
	dur := c.cfg.phaseDuration(c.phase)
	if dur <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(c.phaseElapsed) / float64(dur))
}

// BlendProgress reports the final crossfade: 0 before the blend phase,
// climbing monotonically through it, exactly 1 from its end onward.
// Renderers layer their secondary effect on this.
func (c *Controller) BlendProgress() float64 {
	switch c.phase {
	case PhaseBlend:
		dur := c.cfg.BlendDuration
		if dur <= 0 {
			return 1
		}
		return vmath.Clamp01(float64(c.phaseElapsed) / float64(dur))
	case PhaseComplete:
		return 1
	default:
		return 0
	}
}

// Points returns the live arena. The slice is only valid until the
// next Update or Start; copy it to keep a frame.
func (c *Controller) Points() []core.Point {
	return c.collection.Points
}

// Rings returns the live ring partition, same borrow rules as Points
func (c *Controller) Rings() []*blob.Ring {
	return c.collection.Rings
}

// Fans returns triangle-fan vertex data for every renderable ring
func (c *Controller) Fans() [][]core.Vertex {
	out := make([][]core.Vertex, 0, len(c.collection.Rings))
	for _, r := range c.collection.Rings {
		if fan := r.Fan(c.collection.Points); fan != nil {
			out = append(out, fan)
		}
	}
	return out
}

// Targets returns the raw target sample set of the active run
func (c *Controller) Targets() []core.Sample {
	return c.targetSource
}

// Bounds returns the reflective canvas box
func (c *Controller) Bounds() core.Bounds {
	return c.bounds
}

// OnComplete registers fn to run exactly once when a run reaches the
// complete phase. Aborted runs never fire it.
func (c *Controller) OnComplete(fn func()) {
	c.onComplete = fn
}

func (c *Controller) abort() {
	c.phase = PhaseIdle
	c.phaseElapsed = 0
	c.fired = false
}

func (c *Controller) setPhase(to Phase) {
	if !CanTransition(c.phase, to) {
		return
	}
	c.phase = to
	c.phaseElapsed = 0
	if h := phaseHandlers[to]; h.enter != nil {
		h.enter(c)
	}
}

func (c *Controller) buildTargets(target []core.Sample) {
	c.targetSource = append(c.targetSource[:0], target...)
	n := len(c.collection.Points)
	c.targets = c.targets[:0]
	for i := 0; i < n; i++ {
		t := target[i%len(target)]
		if i >= len(target) {
			// Shared destinations get a small scatter so stacked
			// points do not collapse onto one pixel
			t.X += c.rng.Range(-reuseJitter, reuseJitter)
			t.Y += c.rng.Range(-reuseJitter, reuseJitter)
		}
		c.targets = append(c.targets, t)
	}
}
