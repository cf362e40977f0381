package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/DDinenno/flappy-flap/assets"
	"github.com/DDinenno/flappy-flap/config"
	"github.com/DDinenno/flappy-flap/game"
)

const logFlags = log.LstdFlags | log.Lmicroseconds

var arcadeFaceSource *text.GoTextFaceSource

func init() {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		log.Fatal(err)
	}
	arcadeFaceSource = s
}

// this struct implements ebiten.Game interface
type Game struct {
	cfg      config.Config
	provider *assets.Provider
	runner   *game.Runner
	images   map[game.ImageName]*ebiten.Image
	debug    bool
	logger   *log.Logger
}

func NewGame(cfg config.Config, provider *assets.Provider, logger *log.Logger) *Game {
	g := &Game{
		cfg:      cfg,
		provider: provider,
		images:   make(map[game.ImageName]*ebiten.Image),
		debug:    cfg.Debug,
		logger:   logger,
	}
	g.runner = game.NewRunner(provider, g.newWorld, log.New(os.Stderr, "[runner] ", logFlags))
	return g
}

// newWorld sizes the hitboxes from the loaded sprites.
func (g *Game) newWorld() (*game.World, error) {
	t := g.cfg.Tuning
	if w, h, ok := g.provider.Size(string(game.ImageBird0)); ok {
		t.PlayerWidth, t.PlayerHeight = float64(w), float64(h)
	}
	if w, h, ok := g.provider.Size(string(game.ImagePipe)); ok {
		t.PipeWidth, t.PipeHeight = float64(w), float64(h)
	}

	seed := g.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g.logger.Printf("new world: seed %d, %d pipe pairs", seed, t.PipePairs)
	return game.NewWorld(t, rand.New(rand.NewPCG(seed, seed)), g.logger)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	g.runner.Frame(readInput())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.runner.Render(func(phase game.Phase, s game.Snapshot) {
		switch phase {
		case game.PhaseLoading:
			drawStatus(screen, "Loading images ...")
		case game.PhaseFailed:
			drawStatus(screen, "One or more images failed to load :-(")
		case game.PhasePlaying:
			g.drawWorld(screen, s)
		}
	})
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f FPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (g *Game) drawWorld(screen *ebiten.Image, s game.Snapshot) {
	for i, name := range game.BackgroundLayers {
		if img := g.image(name); img != nil && i < len(s.Layers) {
			drawBackgroundAtOffset(screen, img, s.Layers[i])
		}
	}

	for _, p := range s.Pipes {
		img := g.image(p.Image)
		if img == nil {
			continue
		}
		if p.FlipY {
			drawImageScaled(screen, img, p.X, p.Y+p.H, 1, -1)
		} else {
			drawImageAt(screen, img, p.X, p.Y)
		}
	}

	if ground := g.image(game.ImageLayer3); ground != nil {
		drawImageAt(screen, ground, 0, 0)
	}

	if bird := g.image(s.Player.Image); bird != nil {
		drawImageCentered(screen, bird, s.Player.X+s.Player.W/2, s.Player.Y+s.Player.H/2, s.Player.Rotation)
	}

	if g.debug {
		drawHitboxes(screen, s)
	}

	w := float64(screen.Bounds().Dx())
	if !s.GameOver {
		drawText(screen, fmt.Sprintf("Score: %v", s.Score), 20, 20, 32, text.AlignStart, white)
		return
	}
	drawText(screen, fmt.Sprintf("Final Score : %v", s.Score), w/2, 100, 30, text.AlignCenter, white)
	drawText(screen, "Press Enter to restart the game", w/2, 300, 20, text.AlignCenter, white)
}

// image converts provider images to ebiten images on first use.
func (g *Game) image(name game.ImageName) *ebiten.Image {
	if img, ok := g.images[name]; ok {
		return img
	}
	src, ok := g.provider.Image(string(name))
	if !ok {
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	g.images[name] = img
	return img
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.cfg.Tuning.ScreenWidth), int(g.cfg.Tuning.ScreenHeight)
}

func loadConfig(path, envFile string) (config.Config, error) {
	cfg, err := config.Parse(Flappy_toml, config.Default())
	if err != nil {
		return cfg, err
	}
	if path != "" {
		if cfg, err = config.LoadFile(path, cfg); err != nil {
			return cfg, err
		}
	}
	return config.LoadEnv(cfg, envFile)
}

func main() {
	configPath := flag.String("config", "", "TOML file layered over the built-in defaults")
	envFile := flag.String("env", ".env", "dotenv file with FLAPPY_* overrides")
	assetDir := flag.String("assets", "", "directory holding bird0.png, bird1.png, pipe.png and layer0-3.png")
	seed := flag.Uint64("seed", 0, "seed for gap and drift rolls, 0 uses the clock")
	placeholder := flag.Bool("placeholder", false, "draw generated placeholder images instead of loading files")
	debug := flag.Bool("debug", false, "show hitboxes and TPS (toggle in game with F3)")
	flag.Parse()

	logger := log.New(os.Stderr, "[flappy] ", logFlags)

	cfg, err := loadConfig(*configPath, *envFile)
	if err != nil {
		logger.Fatal(err)
	}
	// Visit goes in name order, so an explicit -placeholder wins over -assets.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "assets":
			cfg.AssetDir, cfg.Placeholder = *assetDir, false
		case "seed":
			cfg.Seed = *seed
		case "placeholder":
			cfg.Placeholder = *placeholder
		case "debug":
			cfg.Debug = *debug
		}
	})
	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	provider := assets.NewProvider(log.New(os.Stderr, "[assets] ", logFlags))
	if cfg.Placeholder {
		providePlaceholders(provider, cfg.Tuning)
	} else {
		provider.Load(context.Background(), os.DirFS(cfg.AssetDir), assets.DefaultFiles)
	}

	g := NewGame(cfg, provider, logger)
	ebiten.SetWindowSize(int(cfg.Tuning.ScreenWidth*cfg.WindowScale), int(cfg.Tuning.ScreenHeight*cfg.WindowScale))
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal(err)
	}
}
