package game

import "math"

type Drift uint8

const (
	DriftNone Drift = iota
	DriftUp
	DriftDown
)

// PipeState is one half of an obstacle pair. Pipes are recycled every wave
// instead of being reallocated.
type PipeState struct {
	Top       bool
	Slot      int
	Wave      int
	GapOffset float64 // from the screen's vertical center
	Drift     Drift
}

// Rand is the random source used for gap and drift decisions.
type Rand interface {
	Float64() float64
}

// GapRange is the width of the random gap offset interval for a wave. It
// shrinks as waves progress.
func GapRange(wave int, t *Tuning) float64 {
	return t.GapRange / (float64(wave)/t.DifficultyWaves + 1)
}

// WaveIndex is the number of full cycles a slot has scrolled. Slots that have
// not entered the screen yet stay on wave 0.
func WaveIndex(distance, cycle float64) int {
	if distance < 0 {
		return 0
	}
	return int(math.Floor(distance / cycle))
}

// scrollOffset is how far a slot has moved left of the screen's right edge.
// Negative distances leave the slot waiting off-screen to the right.
func scrollOffset(distance, cycle float64) float64 {
	if distance < 0 {
		return distance
	}
	return math.Mod(distance, cycle)
}

// resetForWave rolls a new gap offset and drift for the given wave.
func (p *PipeState) resetForWave(wave int, t *Tuning, rng Rand) {
	p.Wave = wave
	gap := rng.Float64() * GapRange(wave, t)
	if p.Top {
		gap = -gap
	}
	p.GapOffset = gap
	p.clamp(t)

	p.Drift = DriftNone
	if rng.Float64() < t.DriftChance {
		p.Drift = DriftDown
	} else if rng.Float64() < t.DriftChance {
		p.Drift = DriftUp
	}
}

// resetIfNewWave reports whether the pipe was reset.
func (p *PipeState) resetIfNewWave(wave int, t *Tuning, rng Rand) bool {
	if wave == p.Wave {
		return false
	}
	p.resetForWave(wave, t, rng)
	return true
}

// drift moves the gap half a step. A top half drifting up closes toward the
// center; a bottom half always opens downward. The offset is re-clamped every
// frame, so a drifting gap never narrows past GapMin.
func (p *PipeState) drift(t *Tuning) {
	switch {
	case p.Drift == DriftNone:
		return
	case p.Top && p.Drift == DriftDown:
		p.GapOffset -= t.DriftStep
	default:
		p.GapOffset += t.DriftStep
	}
	p.clamp(t)
}

func (p *PipeState) clamp(t *Tuning) {
	if p.Top {
		p.GapOffset = math.Min(p.GapOffset, -t.GapMin)
	} else {
		p.GapOffset = math.Max(p.GapOffset, t.GapMin)
	}
}

// placePipe positions the pipe for the current scroll offset. The top half's
// visible edge is its bottom, so it sits one pipe height above the gap line.
func placePipe(o *Object, offset float64, t *Tuning) {
	gapLine := t.ScreenHeight/2 + o.Pipe.GapOffset
	o.Pos[0] = t.ScreenWidth - offset
	if o.Pipe.Top {
		o.Pos[1] = gapLine - o.H
	} else {
		o.Pos[1] = gapLine
	}
}
