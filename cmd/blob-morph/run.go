package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blob-morph/audio"
	"github.com/lixenwraith/blob-morph/config"
	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/render"
	"github.com/lixenwraith/blob-morph/sampler"
	"github.com/lixenwraith/blob-morph/transition"
)

// completeHold is how long the finished target image stays on screen
// before a --loop run restarts with the images swapped.
const completeHold = 1500 * time.Millisecond

type app struct {
	cfg    config.Config
	logger *log.Logger

	screen   tcell.Screen
	ctrl     *transition.Controller
	renderer *render.Renderer
	cues     *audio.Cues

	source []core.Sample
	target []core.Sample

	lastPhase   transition.Phase
	holdElapsed time.Duration
	completed   bool
}

func runAnimation(ctx context.Context, cfg config.Config, opts *runOpts, sourcePath, targetPath string) error {
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	source, err := loadSamples(sourcePath, cfg)
	if err != nil {
		return err
	}
	target, err := loadSamples(targetPath, cfg)
	if err != nil {
		return err
	}

	ctrl, err := transition.NewController(cfg.Transition, transition.WithSeed(seed))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	a := &app{
		cfg:    cfg,
		logger: opts.logger,
		screen: screen,
		ctrl:   ctrl,
		cues:   audio.NewCues(),
		source: source,
		target: target,
	}
	// cleanup runs first on a panic unwind, so the terminal is out of
	// the alternate screen before the stack trace prints.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "blob-morph crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer a.cleanup()

	cols, rows := screen.Size()
	w, h := render.BufferSize(cols, rows)
	a.renderer = render.NewRenderer(w, h, ctrl.Bounds())

	if cfg.Audio {
		if err := a.cues.Initialize(); err != nil {
			a.logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
	}

	ctrl.OnComplete(func() { a.completed = true })

	a.logger.Info("starting transition",
		"source", sourcePath, "samples", len(source),
		"target", targetPath, "targets", len(target),
		"seed", seed, "fps", cfg.FPS)

	ctrl.Start(a.source, a.target)
	a.lastPhase = ctrl.Phase()

	return a.run(ctx)
}

// loadSamples reads an image into a sample cloud centered on the arena.
func loadSamples(path string, cfg config.Config) ([]core.Sample, error) {
	samples, err := sampler.Load(path, cfg.Sampler)
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%s: no usable pixels", path)
	}
	sampler.Center(samples, cfg.Transition.Width, cfg.Transition.Height)
	return samples, nil
}

func (a *app) run(ctx context.Context) error {
	frame := time.Second / time.Duration(a.cfg.FPS)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.tick(frame)
			a.draw()
		}
	}
}

// handleEvent returns false when the user asked to quit.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
			a.restart()
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		w, h := render.BufferSize(cols, rows)
		a.renderer.Resize(w, h)
		a.screen.Sync()
	}
	return true
}

// tick advances the simulation one frame and fires cues on phase edges.
func (a *app) tick(dt time.Duration) {
	a.ctrl.Update(dt)

	if p := a.ctrl.Phase(); p != a.lastPhase {
		a.logger.Debug("phase change", "from", a.lastPhase, "to", p, "points", len(a.ctrl.Points()))
		switch p {
		case transition.PhaseExplosion:
			a.cues.PlayExplosion()
		case transition.PhaseMorph:
			a.cues.PlayMorph()
		case transition.PhaseBlend:
			a.cues.StopMorph()
		case transition.PhaseComplete:
			a.cues.PlayComplete()
		}
		a.lastPhase = p
	}

	if a.completed && a.cfg.Loop {
		a.holdElapsed += dt
		if a.holdElapsed >= completeHold {
			a.restart()
		}
	}
}

// restart swaps source and target and begins a fresh run.
func (a *app) restart() {
	a.cues.StopMorph()
	a.source, a.target = a.target, a.source
	a.completed = false
	a.holdElapsed = 0
	a.ctrl.Start(a.source, a.target)
	a.lastPhase = a.ctrl.Phase()
	a.logger.Info("restarting", "samples", len(a.source), "targets", len(a.target))
}

func (a *app) draw() {
	a.renderer.Compose(a.ctrl.Fans(), a.ctrl.Points(), a.ctrl.Targets(), a.ctrl.BlendProgress())
	render.Present(a.screen, a.renderer.Buffer())
}

func (a *app) cleanup() {
	a.cues.Cleanup()
	a.screen.Fini()
}
