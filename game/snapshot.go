package game

// Sprite is the drawable state of one object.
type Sprite struct {
	ID       EntityID
	Image    ImageName
	Shape    Shape
	X, Y     float64 // top-left
	W, H     float64
	Rotation float64 // degrees about the center
	FlipY    bool    // drawn mirrored upward from its bottom edge
	Hitbox   Rect
	Circle   Circle
}

// Snapshot is a copy of the World for renderers. It shares no memory with the
// World it came from.
type Snapshot struct {
	Frame    int
	Score    int
	GameOver bool
	Modifier float64
	Layers   []float64
	Player   Sprite
	Pipes    []Sprite
}

func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Frame:    w.Frame,
		Score:    w.Score,
		GameOver: w.GameOver,
		Modifier: w.Modifier,
		Layers:   append([]float64(nil), w.Layers...),
		Pipes:    make([]Sprite, 0, len(w.pipes)),
	}
	for _, o := range w.arena.All() {
		switch o.Kind {
		case KindPlayer:
			s.Player = spriteOf(o)
		case KindPipe:
			s.Pipes = append(s.Pipes, spriteOf(o))
		}
	}
	return s
}

func spriteOf(o *Object) Sprite {
	s := Sprite{
		ID:       o.ID,
		Image:    o.Image,
		Shape:    o.Shape,
		X:        o.Pos.X(),
		Y:        o.Pos.Y(),
		W:        o.W,
		H:        o.H,
		Rotation: o.Rotation,
		Hitbox:   o.Bounds(),
	}
	if o.Shape == ShapeCircle {
		s.Circle = o.Circle()
	}
	if o.Pipe != nil {
		s.FlipY = o.Pipe.Top
	}
	return s
}
