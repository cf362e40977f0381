package game

import (
	"math"
	"math/rand/v2"
	"testing"
)

// seqRand replays vals in a loop and counts the draws.
type seqRand struct {
	vals  []float64
	calls int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.calls%len(r.vals)]
	r.calls++
	return v
}

func TestGapRangeShrinksWithWaves(t *testing.T) {
	tun := DefaultTuning()
	if tun.GapRange != 300 {
		t.Fatalf("default gap range = %v, want 300", tun.GapRange)
	}
	if got := GapRange(0, &tun); got != 300 {
		t.Fatalf("wave 0 range = %v, want 300", got)
	}
	if got := GapRange(50, &tun); got != 150 {
		t.Fatalf("wave 50 range = %v, want 150", got)
	}
	prev := GapRange(0, &tun)
	for wave := 1; wave < 500; wave++ {
		r := GapRange(wave, &tun)
		if r >= prev || r <= 0 {
			t.Fatalf("range did not shrink at wave %d: %v after %v", wave, r, prev)
		}
		prev = r
	}
}

func TestWaveIndex(t *testing.T) {
	cases := []struct {
		distance float64
		want     int
	}{
		{-5, 0},
		{0, 0},
		{1407.9, 0},
		{1408, 1},
		{2816, 2},
		{3000, 2},
	}
	for _, tc := range cases {
		if got := WaveIndex(tc.distance, 1408); got != tc.want {
			t.Errorf("WaveIndex(%v) = %d, want %d", tc.distance, got, tc.want)
		}
	}
}

func TestScrollOffset(t *testing.T) {
	if got := scrollOffset(-10, 1408); got != -10 {
		t.Fatalf("negative distance should pass through, got %v", got)
	}
	if got := scrollOffset(1500, 1408); got != 92 {
		t.Fatalf("offset = %v, want 92", got)
	}
}

func TestResetForWaveRollsGapAndDrift(t *testing.T) {
	tun := DefaultTuning()

	bottom := &PipeState{}
	bottom.resetForWave(0, &tun, &seqRand{vals: []float64{0.5, 0.1}})
	if bottom.GapOffset != 150 || bottom.Drift != DriftDown {
		t.Fatalf("bottom: gap=%v drift=%v, want 150 and down", bottom.GapOffset, bottom.Drift)
	}

	top := &PipeState{Top: true}
	rng := &seqRand{vals: []float64{0.5, 0.5, 0.2}}
	top.resetForWave(3, &tun, rng)
	if top.Wave != 3 || top.Drift != DriftUp {
		t.Fatalf("top: wave=%d drift=%v, want 3 and up", top.Wave, top.Drift)
	}
	want := -0.5 * GapRange(3, &tun)
	if math.Abs(top.GapOffset-want) > eps {
		t.Fatalf("top gap = %v, want %v", top.GapOffset, want)
	}
	if rng.calls != 3 {
		t.Fatalf("rng draws = %d, want 3", rng.calls)
	}

	still := &PipeState{}
	still.resetForWave(0, &tun, &seqRand{vals: []float64{0.5, 0.9, 0.9}})
	if still.Drift != DriftNone {
		t.Fatalf("drift = %v, want none", still.Drift)
	}
}

func TestResetClampsToMinimumGap(t *testing.T) {
	tun := DefaultTuning()
	for _, top := range []bool{true, false} {
		p := &PipeState{Top: top}
		p.resetForWave(0, &tun, &seqRand{vals: []float64{0.1, 0.9, 0.9}})
		if math.Abs(p.GapOffset) != tun.GapMin {
			t.Fatalf("top=%v: gap = %v, want magnitude %v", top, p.GapOffset, tun.GapMin)
		}
	}
}

func TestResetIfNewWave(t *testing.T) {
	tun := DefaultTuning()
	rng := &seqRand{vals: []float64{0.5, 0.9, 0.9}}
	p := &PipeState{}
	if p.resetIfNewWave(0, &tun, rng) || rng.calls != 0 {
		t.Fatalf("same wave must not reroll")
	}
	if !p.resetIfNewWave(1, &tun, rng) || p.Wave != 1 || rng.calls != 3 {
		t.Fatalf("new wave must reroll once: wave=%d calls=%d", p.Wave, rng.calls)
	}
}

func TestDriftDirections(t *testing.T) {
	tun := DefaultTuning()
	cases := []struct {
		name  string
		top   bool
		drift Drift
		start float64
		want  float64
	}{
		{"bottom down", false, DriftDown, 200, 200.5},
		{"bottom up", false, DriftUp, 200, 200.5},
		{"top down", true, DriftDown, -200, -200.5},
		{"top up", true, DriftUp, -200, -199.5},
		{"top up at the limit", true, DriftUp, -100, -100},
		{"none", false, DriftNone, 200, 200},
	}
	for _, tc := range cases {
		p := &PipeState{Top: tc.top, Drift: tc.drift, GapOffset: tc.start}
		p.drift(&tun)
		if p.GapOffset != tc.want {
			t.Errorf("%s: gap = %v, want %v", tc.name, p.GapOffset, tc.want)
		}
	}
}

func TestPlacePipe(t *testing.T) {
	tun := DefaultTuning()
	top := &Object{H: PipeHeight, Pipe: &PipeState{Top: true, GapOffset: -150}}
	bottom := &Object{H: PipeHeight, Pipe: &PipeState{GapOffset: 150}}
	placePipe(top, 100, &tun)
	placePipe(bottom, 100, &tun)

	if top.Pos.X() != 1180 || top.Pos.Y() != 210-PipeHeight {
		t.Fatalf("top at %v", top.Pos)
	}
	if top.Pos.Y()+top.H != 210 {
		t.Fatalf("top edge = %v, want the gap line 210", top.Pos.Y()+top.H)
	}
	if bottom.Pos.X() != 1180 || bottom.Pos.Y() != 510 {
		t.Fatalf("bottom at %v", bottom.Pos)
	}
}

func TestGapBoundsHoldAcrossResetsAndDrift(t *testing.T) {
	tun := DefaultTuning()
	rng := rand.New(rand.NewPCG(1, 2))
	for _, top := range []bool{true, false} {
		p := &PipeState{Top: top}
		for wave := 0; wave < 200; wave++ {
			p.resetForWave(wave, &tun, rng)
			for frame := 0; frame < 400; frame++ {
				p.drift(&tun)
				if top && p.GapOffset > -tun.GapMin || !top && p.GapOffset < tun.GapMin {
					t.Fatalf("top=%v wave %d frame %d: gap %v out of bounds", top, wave, frame, p.GapOffset)
				}
			}
		}
	}
}
