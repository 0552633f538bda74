package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"invaders/game"
)

// Game is the window bridge. Each Update runs one engine frame; Draw uploads
// the pixel buffer to a texture and draws it to the screen.
type Game struct {
	engine   *game.Engine
	keyboard *KeyboardInput
	config   game.Config
	logger   *zap.Logger
	profiler *game.Profiler
	debug    game.DebugState

	// GPU texture the pixel buffer is uploaded into
	texture *ebiten.Image

	// Reused upload staging bytes
	pixels []byte
}

// NewGame creates the window bridge around a fresh engine
func NewGame(config game.Config, assets *game.Assets, logger *zap.Logger) (*Game, error) {
	engine, err := game.NewEngine(config, assets, logger)
	if err != nil {
		return nil, err
	}

	return &Game{
		engine:   engine,
		keyboard: NewKeyboardInput(engine.Input),
		config:   config,
		logger:   logger,
		profiler: game.NewProfiler(config.ProfileDir, config.SlowFrame, logger),
		texture:  ebiten.NewImage(config.Width, config.Height),
	}, nil
}

// Update updates the game state
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	start := time.Now()
	g.keyboard.Update()
	g.engine.Step()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug.Toggle()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		path, err := game.SaveScreenshot(g.engine.Buffer, g.config.ScreenshotDir, g.engine.State.Tick)
		if err != nil {
			g.logger.Error("screenshot failed", zap.Error(err))
		} else {
			g.logger.Info("screenshot saved", zap.String("path", path))
		}
	}

	g.profiler.Observe(time.Since(start))
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.pixels = g.engine.Buffer.Bytes(g.pixels)
	g.texture.WritePixels(g.pixels)

	// Buffer row 0 is the bottom of the screen
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(1, -1)
	op.GeoM.Translate(0, float64(g.config.Height))
	screen.DrawImage(g.texture, op)

	state := g.engine.State
	hud := fmt.Sprintf("SCORE %04d  LIVES %d", state.Score, state.Player.Lives)
	if state.Cleared() {
		hud += "\nWAVE CLEARED"
	}
	if g.debug.ShowStats {
		hud += fmt.Sprintf("\n%s  fps %.0f", game.Stats(state), ebiten.ActualFPS())
	}
	ebitenutil.DebugPrint(screen, hud)
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Width, g.config.Height
}
