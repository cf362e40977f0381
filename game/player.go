package game

import "github.com/go-gl/mathgl/mgl64"

type FlapState uint8

const (
	FlapIdle FlapState = iota
	FlapCharging
)

// Input holds the edge events seen since the previous frame.
type Input struct {
	FlapDown bool
	FlapUp   bool
	Confirm  bool
}

type PlayerState struct {
	State  FlapState
	Charge int
	Spawn  mgl64.Vec2
}

// updatePlayer runs the flap-charge state machine. Holding the flap control
// charges one step per frame; releasing it sets an upward velocity of
// 1+charge.
func updatePlayer(o *Object, in Input, t *Tuning) {
	p := o.Player
	if o.Frozen || p == nil {
		return
	}
	switch p.State {
	case FlapIdle:
		if in.FlapDown {
			p.State = FlapCharging
			p.Charge = 0
		}
	case FlapCharging:
		if !in.FlapUp && p.Charge < t.MaxCharge {
			p.Charge++
		}
	}
	if p.State == FlapCharging && in.FlapUp {
		o.Vel = mgl64.Vec2{0, -float64(1 + p.Charge)}
		p.Charge = 0
		p.State = FlapIdle
	}
}

func resetPlayer(o *Object) {
	o.Pos = o.Player.Spawn
	o.Vel = mgl64.Vec2{}
	o.Rotation = 0
	o.Image = ImageBird0
	o.Player.State = FlapIdle
	o.Player.Charge = 0
}

// birdFrame alternates the two bird sprites every half animation period.
func birdFrame(frame, period int) ImageName {
	if frame%period < period/2 {
		return ImageBird0
	}
	return ImageBird1
}
