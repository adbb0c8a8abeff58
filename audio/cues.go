// Package audio plays the transition's sound cues through a shared
// beep mixer. Initialization is optional: every cue degrades to a
// no-op when the speaker is unavailable.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	boomDuration  = 400 * time.Millisecond
	chimeDuration = 350 * time.Millisecond
)

// Cues manages the transition sounds
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	humStreamer *beep.Ctrl
	initialized bool
}

// NewCues creates an uninitialized cue player
func NewCues() *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Failure leaves the player inert;
// callers continue without audio.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences everything and releases the mixer
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	if c.humStreamer != nil {
		c.humStreamer.Paused = true
	}
	c.mixer.Clear()
	c.initialized = false
}

// PlayExplosion fires the scatter boom, a one-shot falling sweep
func (c *Cues) PlayExplosion() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(boomDuration), NewBoomGenerator(sampleRate))
	c.mixer.Add(streamer)
}

// PlayMorph starts the low drone that runs while blobs travel
func (c *Cues) PlayMorph() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	// Already droning, keep it going
	if c.humStreamer != nil && !c.humStreamer.Paused {
		return
	}

	// The generator is endless; the Ctrl is the off switch
	ctrl := &beep.Ctrl{Streamer: NewHumGenerator(sampleRate), Paused: false}
	c.humStreamer = ctrl
	c.mixer.Add(ctrl)
}

// StopMorph silences the drone
func (c *Cues) StopMorph() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.humStreamer != nil {
		c.humStreamer.Paused = true
	}
}

// PlayComplete fires the arrival chime
func (c *Cues) PlayComplete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(chimeDuration), NewChimeGenerator(sampleRate))
	c.mixer.Add(streamer)
}
