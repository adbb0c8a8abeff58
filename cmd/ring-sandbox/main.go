package main

// Interactive single-ring toy: spawn one elastic membrane, poke it, and
// watch the springs pull it back. Handy for eyeballing ring tuning
// before committing values to a config file.
//
// Keys: space = radial kick, p = pinch, r = reset, q/ESC = quit.

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blob-morph/blob"
	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/render"
	"github.com/lixenwraith/blob-morph/vmath"
)

const (
	arenaSize  = 240.0
	ringPoints = 24
	ringRadius = 60.0
	kickSpeed  = 260.0
	pinchSpeed = 200.0
)

type sandbox struct {
	coll *blob.Collection
	ring *blob.Ring
	rng  *vmath.FastRand
}

func newSandbox() *sandbox {
	s := &sandbox{
		coll: blob.NewCollection(blob.DefaultRingParams()),
		rng:  vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
	s.reset()
	return s
}

// reset rebuilds the ring as a regular polygon at the arena center.
func (s *sandbox) reset() {
	samples := make([]core.Sample, ringPoints)
	for i := range samples {
		angle := 2 * math.Pi * float64(i) / ringPoints
		samples[i] = core.Sample{
			X:     arenaSize/2 + ringRadius*math.Cos(angle),
			Y:     arenaSize/2 + ringRadius*math.Sin(angle),
			Color: core.Color{R: 0.3, G: 0.8, B: 1, A: 1},
		}
	}
	s.coll.Reset(samples)
	indices := make([]int, ringPoints)
	for i := range indices {
		indices[i] = i
	}
	s.ring = s.coll.AddRing(indices)
}

// kick throws every membrane point outward with a randomized speed.
func (s *sandbox) kick() {
	for _, idx := range s.ring.Indices {
		p := &s.coll.Points[idx]
		dx, dy := vmath.Normalize2D(p.X-s.ring.CenterX, p.Y-s.ring.CenterY)
		speed := kickSpeed * (0.5 + s.rng.Float64())
		p.VX += dx * speed
		p.VY += dy * speed
	}
}

// pinch squeezes the membrane along the horizontal axis.
func (s *sandbox) pinch() {
	for _, idx := range s.ring.Indices {
		p := &s.coll.Points[idx]
		if p.X < s.ring.CenterX {
			p.VX += pinchSpeed
		} else {
			p.VX -= pinchSpeed
		}
	}
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	s := newSandbox()

	arena := core.Bounds{MaxX: arenaSize, MaxY: arenaSize}
	cols, rows := screen.Size()
	w, h := render.BufferSize(cols, rows)
	renderer := render.NewRenderer(w, h, arena)

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					s.kick()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
					s.pinch()
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
					s.reset()
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				w, h := render.BufferSize(cols, rows)
				renderer.Resize(w, h)
				screen.Sync()
			}

		case <-ticker.C:
			s.coll.Integrate(1.0 / 60.0)
			renderer.Compose([][]core.Vertex{s.ring.Fan(s.coll.Points)}, s.coll.Points, nil, 0)
			render.Present(screen, renderer.Buffer())
		}
	}
}
