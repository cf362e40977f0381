package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// EntityID is the index of an Object inside its Arena. IDs are never reused.
type EntityID int

type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
)

type Kind uint8

const (
	KindPlayer Kind = iota
	KindPipe
)

// ImageName is the logical name of a sprite known to the asset provider.
type ImageName string

const (
	ImageBird0  ImageName = "bird0"
	ImageBird1  ImageName = "bird1"
	ImagePipe   ImageName = "pipe"
	ImageLayer0 ImageName = "layer0"
	ImageLayer1 ImageName = "layer1"
	ImageLayer2 ImageName = "layer2"
	ImageLayer3 ImageName = "layer3"
)

// BackgroundLayers are the scrolling layers, farthest first.
var BackgroundLayers = []ImageName{ImageLayer0, ImageLayer1, ImageLayer2}

// Observer runs after an object has been integrated for the frame.
type Observer func(o *Object)

// Object is the single entity type. Kind selects which of Player or Pipe is set.
type Object struct {
	ID         EntityID
	Kind       Kind
	Shape      Shape
	Pos        mgl64.Vec2 // top-left
	Vel        mgl64.Vec2 // px/frame
	Rotation   float64    // degrees, positive is nose-down
	W, H       float64
	Stationary bool // no gravity
	Frozen     bool // no integration at all
	Image      ImageName

	Player *PlayerState
	Pipe   *PipeState

	observers []Observer
}

// Observe appends fn to the observers run at the end of every Step.
func (o *Object) Observe(fn Observer) {
	o.observers = append(o.observers, fn)
}

// Step integrates gravity unless the object is stationary or frozen, then
// notifies the observers in registration order.
func (o *Object) Step(t *Tuning) {
	if !o.Stationary && !o.Frozen {
		o.Vel[1] += t.Gravity
		o.Pos[1] += o.Vel[1]
		o.Rotation = math.Min(o.Rotation+o.Vel.Y()/t.RotationDivisor, t.MaxRotation)
	}
	for _, fn := range o.observers {
		fn(o)
	}
}

func (o *Object) Bounds() Rect {
	return Rect{Min: o.Pos, W: o.W, H: o.H}
}

// Circle is the largest circle centered in the object's bounds.
func (o *Object) Circle() Circle {
	d := math.Min(o.W, o.H)
	return Circle{
		Min: o.Pos.Add(mgl64.Vec2{(o.W - d) / 2, (o.H - d) / 2}),
		D:   d,
	}
}

// Arena owns every object of a World.
type Arena struct {
	objects []*Object
}

func (a *Arena) Add(o *Object) EntityID {
	o.ID = EntityID(len(a.objects))
	a.objects = append(a.objects, o)
	return o.ID
}

// Get returns nil for unknown IDs.
func (a *Arena) Get(id EntityID) *Object {
	if id < 0 || int(id) >= len(a.objects) {
		return nil
	}
	return a.objects[id]
}

func (a *Arena) All() []*Object {
	return a.objects
}
