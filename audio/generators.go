package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// BoomGenerator produces a falling frequency sweep with an exponential
// decay, the sound of the scatter
type BoomGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewBoomGenerator creates a boom sound generator
func NewBoomGenerator(sr beep.SampleRate) *BoomGenerator {
	return &BoomGenerator{sr: sr}
}

func (g *BoomGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sweep from 220Hz down to 50Hz over the first 400ms
		freq := 220.0 - 170.0*math.Min(t/0.4, 1.0)
		envelope := math.Exp(-t * 6)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*freq*0.5*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BoomGenerator) Err() error {
	return nil
}

// HumGenerator produces an endless low drone with a slow wobble,
// played while blobs travel toward their targets
type HumGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewHumGenerator creates a hum sound generator
func NewHumGenerator(sr beep.SampleRate) *HumGenerator {
	return &HumGenerator{sr: sr}
}

func (g *HumGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 90Hz base with a 0.5Hz amplitude wobble
		amplitude := 0.08 * (0.7 + 0.3*math.Sin(2*math.Pi*0.5*t))
		sample := amplitude * math.Sin(2*math.Pi*90*t)
		sample += amplitude * 0.5 * math.Sin(2*math.Pi*135*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HumGenerator) Err() error {
	return nil
}

// ChimeGenerator produces a rising two-note arrival chime with a soft
// attack so it does not click
type ChimeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChimeGenerator creates a chime sound generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{sr: sr}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// A5 then E6, 150ms apart
		freq := 880.0
		if t > 0.15 {
			freq = 1318.5
		}

		attack := math.Min(t/0.02, 1.0)
		decay := math.Exp(-t * 4)

		sample := 0.25 * attack * decay * math.Sin(2*math.Pi*freq*t)
		sample += 0.08 * attack * decay * math.Sin(2*math.Pi*freq*2*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
