package game

import "errors"

// SpriteAnimation selects a frame from elapsed ticks. Frames are borrowed
// from an Assets registry and never modified.
type SpriteAnimation struct {
	Frames        []*Sprite
	FrameDuration int // ticks per frame
	Loop          bool
	Elapsed       int
}

// NewSpriteAnimation creates an animation starting at frame 0
func NewSpriteAnimation(frames []*Sprite, frameDuration int, loop bool) (*SpriteAnimation, error) {
	if len(frames) == 0 {
		return nil, errors.New("animation has no frames")
	}
	if frameDuration <= 0 {
		return nil, errors.New("animation frame duration must be positive")
	}
	return &SpriteAnimation{
		Frames:        frames,
		FrameDuration: frameDuration,
		Loop:          loop,
	}, nil
}

// Tick advances the animation by one tick
func (a *SpriteAnimation) Tick() {
	a.Elapsed++
	if a.Loop && a.Elapsed == len(a.Frames)*a.FrameDuration {
		a.Elapsed = 0
	}
}

// CurrentFrame returns the frame for the elapsed time.
// A finished non-looping animation holds its last frame.
func (a *SpriteAnimation) CurrentFrame() *Sprite {
	i := a.Elapsed / a.FrameDuration
	if i >= len(a.Frames) {
		i = len(a.Frames) - 1
	}
	return a.Frames[i]
}
