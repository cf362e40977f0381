package game

import "fmt"

const (
	ScreenWidth      = 1280.0
	ScreenHeight     = 720.0
	Gravity          = 0.05 // px/frame²
	MaxRotation      = 110.0
	RotationDivisor  = 10.0
	MaxCharge        = 8
	PlayerOffsetX    = -100.0 // bird center relative to the screen center
	PlayerOffsetY    = -100.0
	PlayerWidth      = 64.0
	PlayerHeight     = 48.0
	PipeWidth        = 128.0
	PipeHeight       = 640.0
	PipePairs        = 1
	PipeSpeed        = 3.2
	gapRangeBase     = 300.0
	GapMin           = 100.0
	DifficultyWaves  = 50.0
	DriftChance      = 0.3
	DriftStep        = 0.5
	ScrollBase       = 0.5
	ScrollRamp       = 0.00005 // modifier gained per frame
	ScrollMin        = 0.5
	ScrollMax        = 1.0
	AnimationPeriod  = 30
	layerSpeedFar    = 0.1
	layerSpeedMiddle = 0.4
	layerSpeedNear   = 1.6
)

// Tuning holds every gameplay constant a World runs with.
type Tuning struct {
	ScreenWidth     float64   `toml:"screen_width"`
	ScreenHeight    float64   `toml:"screen_height"`
	GroundY         float64   `toml:"ground_y"`
	Gravity         float64   `toml:"gravity"`
	MaxRotation     float64   `toml:"max_rotation"`
	RotationDivisor float64   `toml:"rotation_divisor"`
	MaxCharge       int       `toml:"max_charge"`
	PlayerOffsetX   float64   `toml:"player_offset_x"`
	PlayerOffsetY   float64   `toml:"player_offset_y"`
	PlayerWidth     float64   `toml:"player_width"`
	PlayerHeight    float64   `toml:"player_height"`
	PipeWidth       float64   `toml:"pipe_width"`
	PipeHeight      float64   `toml:"pipe_height"`
	PipePairs       int       `toml:"pipe_pairs"`
	PipeSpeed       float64   `toml:"pipe_speed"`
	GapRange        float64   `toml:"gap_range"`
	GapMin          float64   `toml:"gap_min"`
	DifficultyWaves float64   `toml:"difficulty_waves"`
	DriftChance     float64   `toml:"drift_chance"`
	DriftStep       float64   `toml:"drift_step"`
	ScrollBase      float64   `toml:"scroll_base"`
	ScrollRamp      float64   `toml:"scroll_ramp"`
	ScrollMin       float64   `toml:"scroll_min"`
	ScrollMax       float64   `toml:"scroll_max"`
	LayerSpeeds     []float64 `toml:"layer_speeds"`
	AnimationPeriod int       `toml:"animation_period"`
}

func DefaultTuning() Tuning {
	return Tuning{
		ScreenWidth:     ScreenWidth,
		ScreenHeight:    ScreenHeight,
		GroundY:         ScreenHeight,
		Gravity:         Gravity,
		MaxRotation:     MaxRotation,
		RotationDivisor: RotationDivisor,
		MaxCharge:       MaxCharge,
		PlayerOffsetX:   PlayerOffsetX,
		PlayerOffsetY:   PlayerOffsetY,
		PlayerWidth:     PlayerWidth,
		PlayerHeight:    PlayerHeight,
		PipeWidth:       PipeWidth,
		PipeHeight:      PipeHeight,
		PipePairs:       PipePairs,
		PipeSpeed:       PipeSpeed,
		GapRange:        gapRangeBase,
		GapMin:          GapMin,
		DifficultyWaves: DifficultyWaves,
		DriftChance:     DriftChance,
		DriftStep:       DriftStep,
		ScrollBase:      ScrollBase,
		ScrollRamp:      ScrollRamp,
		ScrollMin:       ScrollMin,
		ScrollMax:       ScrollMax,
		LayerSpeeds:     []float64{layerSpeedFar, layerSpeedMiddle, layerSpeedNear},
		AnimationPeriod: AnimationPeriod,
	}
}

// Validate reports the first setting a World cannot run with.
func (t Tuning) Validate() error {
	switch {
	case t.ScreenWidth <= 0 || t.ScreenHeight <= 0:
		return fmt.Errorf("screen size must be positive, got %vx%v", t.ScreenWidth, t.ScreenHeight)
	case t.PlayerWidth <= 0 || t.PlayerHeight <= 0:
		return fmt.Errorf("player size must be positive, got %vx%v", t.PlayerWidth, t.PlayerHeight)
	case t.PipeWidth <= 0 || t.PipeHeight <= 0:
		return fmt.Errorf("pipe size must be positive, got %vx%v", t.PipeWidth, t.PipeHeight)
	case t.PipePairs < 1:
		return fmt.Errorf("pipe_pairs must be at least 1, got %d", t.PipePairs)
	case t.MaxCharge < 0:
		return fmt.Errorf("max_charge must not be negative, got %d", t.MaxCharge)
	case t.RotationDivisor == 0:
		return fmt.Errorf("rotation_divisor must not be zero")
	case t.DifficultyWaves <= 0:
		return fmt.Errorf("difficulty_waves must be positive, got %v", t.DifficultyWaves)
	case t.GapMin < 0 || t.GapRange < 0:
		return fmt.Errorf("gap_min and gap_range must not be negative")
	case t.ScrollMin > t.ScrollMax:
		return fmt.Errorf("scroll_min %v is above scroll_max %v", t.ScrollMin, t.ScrollMax)
	case len(t.LayerSpeeds) == 0:
		return fmt.Errorf("layer_speeds must list at least one layer")
	case t.AnimationPeriod < 2:
		return fmt.Errorf("animation_period must be at least 2, got %d", t.AnimationPeriod)
	}
	return nil
}

// cycle is the horizontal distance one pipe travels between two recyclings.
func (t *Tuning) cycle() float64 {
	return t.ScreenWidth + t.PipeWidth
}
