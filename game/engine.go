package game

import (
	"fmt"

	"go.uber.org/zap"
)

// Engine runs one game: it owns the state, the pixel buffer and the input
// latch, and is driven one frame at a time by a bridge.
type Engine struct {
	State  *GameState
	Buffer *PixelBuffer
	Input  *InputLatch

	renderer *Renderer
	logger   *zap.Logger
	cleared  bool
}

// NewEngine creates an engine with a fresh wave sized from config
func NewEngine(config Config, assets *Assets, logger *zap.Logger) (*Engine, error) {
	state, err := NewGameState(config.Width, config.Height, assets)
	if err != nil {
		return nil, fmt.Errorf("failed to create game state: %w", err)
	}

	e := &Engine{
		State:    state,
		Buffer:   NewPixelBuffer(config.Width, config.Height),
		Input:    NewInputLatch(),
		renderer: NewRenderer(assets, DefaultPalette()),
		logger:   orNop(logger),
	}
	// Present a valid first frame before the first tick
	e.renderer.Draw(e.Buffer, e.State)
	return e, nil
}

// Step takes the latched input, advances the simulation one tick and
// redraws the buffer
func (e *Engine) Step() {
	e.State.Advance(e.Input.Take())
	e.renderer.Draw(e.Buffer, e.State)

	if !e.cleared && e.State.Cleared() {
		e.cleared = true
		e.logger.Info("wave cleared",
			zap.Int("score", e.State.Score),
			zap.Uint64("tick", e.State.Tick))
	}
}
