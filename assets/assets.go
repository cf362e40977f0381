// Package assets loads the game's images in the background and reports when
// they are ready to be drawn.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"log"
	"sync"
	"sync/atomic"
)

type Status int32

const (
	Loading Status = iota
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int32(s))
}

// DefaultFiles maps every image the game needs to its file name.
var DefaultFiles = map[string]string{
	"bird0":  "bird0.png",
	"bird1":  "bird1.png",
	"pipe":   "pipe.png",
	"layer0": "layer0.png",
	"layer1": "layer1.png",
	"layer2": "layer2.png",
	"layer3": "layer3.png",
}

// Provider holds decoded images by name. Its status moves from Loading to
// either Ready or Failed exactly once per Load and never goes back.
type Provider struct {
	status atomic.Int32
	mu     sync.RWMutex
	images map[string]image.Image
	logger *log.Logger
}

func NewProvider(logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.Default()
	}
	return &Provider{
		images: make(map[string]image.Image),
		logger: logger,
	}
}

func (p *Provider) Status() Status {
	return Status(p.status.Load())
}

// Load decodes files from fsys concurrently and returns immediately. The
// returned channel is closed once the status has left Loading. A single
// failing image fails the whole load.
func (p *Provider) Load(ctx context.Context, fsys fs.FS, files map[string]string) <-chan struct{} {
	p.status.Store(int32(Loading))
	done := make(chan struct{})

	var (
		wg     sync.WaitGroup
		failed atomic.Bool
	)
	for name, path := range files {
		wg.Add(1)
		go func(name, path string) {
			defer wg.Done()
			img, err := decode(ctx, fsys, path)
			if err != nil {
				p.logger.Printf("Error loading image %s: %v", path, err)
				failed.Store(true)
				return
			}
			p.Provide(name, img)
		}(name, path)
	}

	go func() {
		defer close(done)
		wg.Wait()
		if failed.Load() {
			p.status.Store(int32(Failed))
			return
		}
		p.status.Store(int32(Ready))
		p.logger.Printf("loaded %d images", len(files))
	}()
	return done
}

func decode(ctx context.Context, fsys fs.FS, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Provide stores an image under name, replacing any previous one.
func (p *Provider) Provide(name string, img image.Image) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.images[name] = img
}

// MarkReady is for providers filled through Provide instead of Load.
func (p *Provider) MarkReady() {
	p.status.Store(int32(Ready))
}

func (p *Provider) Image(name string) (image.Image, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	img, ok := p.images[name]
	return img, ok
}

func (p *Provider) Size(name string) (w, h int, ok bool) {
	img, ok := p.Image(name)
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Names lists the stored image names in no particular order.
func (p *Provider) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	names := make([]string, 0, len(p.images))
	for name := range p.images {
		names = append(names, name)
	}
	return names
}

// Placeholder is a transparent w×h image with band filled in c.
func Placeholder(w, h int, band image.Rectangle, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, band.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}
