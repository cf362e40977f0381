package game

import (
	"log"

	"github.com/DDinenno/flappy-flap/assets"
)

type Phase uint8

const (
	PhaseLoading Phase = iota
	PhaseFailed
	PhasePlaying
)

// StatusSource reports whether the images a World needs are available.
type StatusSource interface {
	Status() assets.Status
}

// Runner is the per-frame entry point. It holds gameplay back until the assets
// are ready, builds the World once they are, and keeps a panicking frame from
// taking down the loop.
type Runner struct {
	source StatusSource
	build  func() (*World, error)
	logger *log.Logger

	world    *World
	buildErr error
	phase    Phase
	last     Snapshot
	failures int
}

func NewRunner(source StatusSource, build func() (*World, error), logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		source: source,
		build:  build,
		logger: logger,
	}
}

// Frame runs one frame and returns the phase to draw. A panic inside the
// frame is logged and the previous phase is kept.
func (r *Runner) Frame(in Input) (phase Phase) {
	defer func() {
		if rec := recover(); rec != nil {
			r.failures++
			r.logger.Printf("WARNING: frame %d threw an uncaught panic: %v", r.last.Frame, rec)
			phase = r.phase
		}
	}()

	r.phase = r.step(in)
	return r.phase
}

// Render runs draw, logging and counting a panic instead of letting it reach
// the window loop.
func (r *Runner) Render(draw func(phase Phase, s Snapshot)) {
	defer func() {
		if rec := recover(); rec != nil {
			r.failures++
			r.logger.Printf("WARNING: drawing frame %d threw an uncaught panic: %v", r.last.Frame, rec)
		}
	}()

	draw(r.phase, r.last)
}

func (r *Runner) step(in Input) Phase {
	if r.buildErr != nil {
		return PhaseFailed
	}
	switch r.source.Status() {
	case assets.Loading:
		return PhaseLoading
	case assets.Failed:
		return PhaseFailed
	}

	if r.world == nil {
		w, err := r.build()
		if err != nil {
			r.buildErr = err
			r.logger.Printf("cannot build world: %v", err)
			return PhaseFailed
		}
		r.world = w
	}
	r.last = r.world.Tick(in)
	return PhasePlaying
}

func (r *Runner) Phase() Phase {
	return r.phase
}

// Snapshot is the state produced by the last successful frame.
func (r *Runner) Snapshot() Snapshot {
	return r.last
}

// World is nil until the assets are ready.
func (r *Runner) World() *World {
	return r.world
}

// Failures counts the frames whose update or drawing panicked.
func (r *Runner) Failures() int {
	return r.failures
}
