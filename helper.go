package main

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/DDinenno/flappy-flap/game"
)

func readInput() game.Input {
	var in game.Input
	for _, k := range flapKeys {
		in.FlapDown = in.FlapDown || inpututil.IsKeyJustPressed(k)
		in.FlapUp = in.FlapUp || inpututil.IsKeyJustReleased(k)
	}
	in.FlapDown = in.FlapDown || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.FlapUp = in.FlapUp || inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	for _, k := range confirmKeys {
		in.Confirm = in.Confirm || inpututil.IsKeyJustPressed(k)
	}
	return in
}

func drawImageAt(dst, img *ebiten.Image, x, y float64) {
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(x, y)
	dst.DrawImage(img, opts)
}

// drawImageScaled scales around the image's top-left corner, so a negative
// scaleY draws the image upward from y.
func drawImageScaled(dst, img *ebiten.Image, x, y, scaleX, scaleY float64) {
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(scaleX, scaleY)
	opts.GeoM.Translate(x, y)
	dst.DrawImage(img, opts)
}

// drawImageCentered draws img centered on (x, y), rotated by angleDeg.
func drawImageCentered(dst, img *ebiten.Image, x, y, angleDeg float64) {
	b := img.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	opts.GeoM.Rotate(mgl64.DegToRad(angleDeg))
	opts.GeoM.Translate(x, y)
	dst.DrawImage(img, opts)
}

// drawBackgroundAtOffset tiles a screen-wide image that repeats seamlessly on
// its left and right edges.
func drawBackgroundAtOffset(dst, img *ebiten.Image, offset float64) {
	w := float64(img.Bounds().Dx())
	off := math.Mod(offset, w)
	if off == 0 {
		drawImageAt(dst, img, 0, 0)
		return
	}
	drawImageAt(dst, img, -off, 0)
	drawImageAt(dst, img, -off+w, 0)
}

func drawText(dst *ebiten.Image, msg string, x, y, size float64, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, msg, &text.GoTextFace{
		Source: arcadeFaceSource,
		Size:   size,
	}, op)
}

func drawStatus(dst *ebiten.Image, msg string) {
	dst.Fill(white)
	drawText(dst, msg, 20, 80, 24, text.AlignStart, black)
}

func drawHitboxes(dst *ebiten.Image, s game.Snapshot) {
	red := color.RGBA{0xff, 0x20, 0x20, 0xff}
	for _, p := range s.Pipes {
		r := p.Hitbox
		vector.StrokeRect(dst, float32(r.Min.X()), float32(r.Min.Y()), float32(r.W), float32(r.H), 2, red, false)
	}
	c := s.Player.Circle
	center := c.Center()
	vector.StrokeCircle(dst, float32(center.X()), float32(center.Y()), float32(c.Radius()), 2, red, true)
}
