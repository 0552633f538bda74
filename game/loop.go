package game

import (
	"context"
	"time"
)

// PresentFunc shows a finished frame. Returning an error stops the loop.
type PresentFunc func(buf *PixelBuffer) error

// Loop drives an Engine at a fixed tick rate for bridges without their own
// frame clock
type Loop struct {
	engine   *Engine
	interval time.Duration
	profiler *Profiler
}

// NewLoop creates a loop stepping engine every interval. profiler may be nil.
func NewLoop(engine *Engine, interval time.Duration, profiler *Profiler) *Loop {
	return &Loop{
		engine:   engine,
		interval: interval,
		profiler: profiler,
	}
}

// Run steps and presents frames until ctx is cancelled or present fails.
// Cancellation is a normal stop and returns nil.
func (l *Loop) Run(ctx context.Context, present PresentFunc) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := l.Frame(present); err != nil {
				return err
			}
		}
	}
}

// Frame performs a single step and presentation
func (l *Loop) Frame(present PresentFunc) error {
	start := time.Now()
	l.engine.Step()
	err := present(l.engine.Buffer)
	l.profiler.Observe(time.Since(start))
	return err
}
