package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/DDinenno/flappy-flap/assets"
	"github.com/DDinenno/flappy-flap/game"
)

var (
	flapKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}

	white = color.White
	black = color.Black
)

type placeholder struct {
	w, h int
	band image.Rectangle // filled area, the rest stays transparent
	c    color.RGBA
}

// placeholders stands in for the image files, sized from the tuning.
func placeholders(t game.Tuning) map[game.ImageName]placeholder {
	sw, sh := int(t.ScreenWidth), int(t.ScreenHeight)
	pw, ph := int(t.PipeWidth), int(t.PipeHeight)
	bw, bh := int(t.PlayerWidth), int(t.PlayerHeight)
	return map[game.ImageName]placeholder{
		game.ImageBird0:  {bw, bh, image.Rect(0, 0, bw, bh), color.RGBA{250, 200, 40, 0xff}},
		game.ImageBird1:  {bw, bh, image.Rect(0, bh/4, bw, bh), color.RGBA{245, 150, 30, 0xff}},
		game.ImagePipe:   {pw, ph, image.Rect(0, 0, pw, ph), color.RGBA{30, 200, 15, 0xff}},
		game.ImageLayer0: {sw, sh, image.Rect(0, 0, sw, sh), color.RGBA{110, 190, 230, 0xff}},
		game.ImageLayer1: {sw, sh, image.Rect(0, sh*6/10, sw/3, sh), color.RGBA{150, 200, 170, 0xff}},
		game.ImageLayer2: {sw, sh, image.Rect(sw/2, sh*3/4, sw*3/4, sh), color.RGBA{60, 150, 60, 0xff}},
		game.ImageLayer3: {sw, sh, image.Rect(0, sh-40, sw, sh), color.RGBA{222, 216, 149, 0xff}},
	}
}

func providePlaceholders(p *assets.Provider, t game.Tuning) {
	for name, ph := range placeholders(t) {
		p.Provide(string(name), assets.Placeholder(ph.w, ph.h, ph.band, ph.c))
	}
	p.MarkReady()
}
