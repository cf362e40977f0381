package game

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World is the whole game state. It is owned by a single goroutine: Tick and
// Restart must not be called concurrently.
type World struct {
	t      Tuning
	rng    Rand
	logger *log.Logger

	arena     Arena
	colliders *Registry
	player    EntityID
	pipes     []EntityID

	Frame    int
	Score    int
	GameOver bool
	Modifier float64
	Distance float64   // cumulative obstacle scroll
	Layers   []float64 // parallax offsets, one per background layer

	gameOverPending bool
}

// NewWorld builds the player and PipePairs obstacle pairs and starts a round.
func NewWorld(t Tuning, rng Rand, logger *log.Logger) (*World, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	w := &World{
		t:      t,
		rng:    rng,
		logger: logger,
		Layers: make([]float64, len(t.LayerSpeeds)),
	}
	w.colliders = NewRegistry(&w.arena)

	spawn := mgl64.Vec2{
		t.ScreenWidth/2 + t.PlayerOffsetX - t.PlayerWidth/2,
		t.ScreenHeight/2 + t.PlayerOffsetY - t.PlayerHeight/2,
	}
	player := &Object{
		Kind:   KindPlayer,
		Shape:  ShapeCircle,
		W:      t.PlayerWidth,
		H:      t.PlayerHeight,
		Player: &PlayerState{Spawn: spawn},
	}
	w.player = w.arena.Add(player)
	w.colliders.Add(w.player, ReactionGameOver)
	player.Observe(w.checkCollision)
	player.Observe(w.checkGround)

	for slot := 0; slot < t.PipePairs; slot++ {
		for _, top := range []bool{true, false} {
			pipe := &Object{
				Kind:       KindPipe,
				Shape:      ShapeRect,
				W:          t.PipeWidth,
				H:          t.PipeHeight,
				Stationary: true,
				Image:      ImagePipe,
				Pipe:       &PipeState{Top: top, Slot: slot},
			}
			id := w.arena.Add(pipe)
			w.pipes = append(w.pipes, id)
			w.colliders.Add(id)
			pipe.Observe(w.checkCollision)
		}
	}

	w.Restart()
	return w, nil
}

func (w *World) Player() *Object {
	return w.arena.Get(w.player)
}

// Pipes returns the pipe objects, top half first for every slot.
func (w *World) Pipes() []*Object {
	out := make([]*Object, 0, len(w.pipes))
	for _, id := range w.pipes {
		out = append(out, w.arena.Get(id))
	}
	return out
}

func (w *World) Colliders() *Registry {
	return w.colliders
}

// Restart begins a new round: counters, scroll and the player return to their
// initial values, every pipe is rerolled for wave 0 and nothing is frozen.
func (w *World) Restart() {
	w.Frame = 0
	w.Score = 0
	w.Distance = 0
	w.GameOver = false
	w.gameOverPending = false
	w.Modifier = w.modifier()
	for i := range w.Layers {
		w.Layers[i] = 0
	}

	for _, o := range w.arena.All() {
		o.Frozen = false
	}
	resetPlayer(w.Player())

	cycle := w.t.cycle()
	for _, o := range w.Pipes() {
		o.Pipe.resetForWave(0, &w.t, w.rng)
		placePipe(o, scrollOffset(w.slotDistance(o.Pipe.Slot), cycle), &w.t)
	}
}

// Tick advances the world by one frame and returns what should be drawn.
// After game over only a Confirm input has an effect: it restarts the round,
// and simulation resumes on the following tick.
func (w *World) Tick(in Input) Snapshot {
	if w.GameOver {
		if in.Confirm {
			w.logger.Printf("restarting after final score %d", w.Score)
			w.Restart()
		}
		return w.Snapshot()
	}

	t := &w.t
	w.Modifier = w.modifier()
	for i, speed := range t.LayerSpeeds {
		w.Layers[i] += speed * w.Modifier
	}
	w.Distance += t.PipeSpeed * w.Modifier

	w.stepAll(KindPipe, in)
	w.stepAll(KindPlayer, in)

	w.Score = w.score()
	if w.gameOverPending {
		w.endRound()
	}
	w.Frame++
	return w.Snapshot()
}

// stepAll runs the per-kind update and then Step for every object of kind k.
func (w *World) stepAll(k Kind, in Input) {
	for _, o := range w.arena.All() {
		if o.Kind != k {
			continue
		}
		switch o.Kind {
		case KindPlayer:
			updatePlayer(o, in, &w.t)
			o.Image = birdFrame(w.Frame, w.t.AnimationPeriod)
		case KindPipe:
			cycle := w.t.cycle()
			d := w.slotDistance(o.Pipe.Slot)
			o.Pipe.resetIfNewWave(WaveIndex(d, cycle), &w.t, w.rng)
			o.Pipe.drift(&w.t)
			placePipe(o, scrollOffset(d, cycle), &w.t)
		}
		o.Step(&w.t)
	}
}

// modifier is the scroll speed multiplier, ramping with the frame counter.
func (w *World) modifier() float64 {
	return mgl64.Clamp(w.t.ScrollBase+float64(w.Frame)*w.t.ScrollRamp, w.t.ScrollMin, w.t.ScrollMax)
}

// slotDistance lags every slot behind the first by an even share of a cycle.
func (w *World) slotDistance(slot int) float64 {
	return w.Distance - float64(slot)*w.t.cycle()/float64(w.t.PipePairs)
}

// score counts the pipe centers that have crossed the player's center.
func (w *World) score() int {
	p := w.Player()
	first := w.t.ScreenWidth + w.t.PipeWidth/2 - (p.Pos.X() + p.W/2)
	cycle := w.t.cycle()
	score := 0
	for slot := 0; slot < w.t.PipePairs; slot++ {
		d := w.slotDistance(slot)
		if d < first {
			continue
		}
		score += int(math.Floor((d-first)/cycle)) + 1
	}
	return score
}

func (w *World) checkCollision(o *Object) {
	for _, r := range w.colliders.Check(o.ID) {
		w.react(r)
	}
}

func (w *World) checkGround(o *Object) {
	if o.Pos.Y()+o.H >= w.t.GroundY {
		w.react(ReactionGameOver)
	}
}

func (w *World) react(r Reaction) {
	switch r {
	case ReactionGameOver:
		w.gameOverPending = true
	}
}

func (w *World) endRound() {
	w.gameOverPending = false
	w.GameOver = true
	for _, o := range w.arena.All() {
		o.Frozen = true
	}
	w.logger.Printf("game over at frame %d with score %d", w.Frame, w.Score)
}
