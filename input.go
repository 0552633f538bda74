package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"invaders/game"
)

// KeyboardInput feeds ebiten key events into an input latch
type KeyboardInput struct {
	latch *game.InputLatch
	left  []ebiten.Key
	right []ebiten.Key
	fire  []ebiten.Key
}

// NewKeyboardInput binds arrow keys / A-D for movement and space for fire
func NewKeyboardInput(latch *game.InputLatch) *KeyboardInput {
	return &KeyboardInput{
		latch: latch,
		left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		fire:  []ebiten.Key{ebiten.KeySpace},
	}
}

// Update translates this frame's key edges into latch writes. Press and
// release both adjust the move counter, so opposite keys held together cancel.
func (k *KeyboardInput) Update() {
	for _, key := range k.right {
		if inpututil.IsKeyJustPressed(key) {
			k.latch.Press(1)
		}
		if inpututil.IsKeyJustReleased(key) {
			k.latch.Press(-1)
		}
	}
	for _, key := range k.left {
		if inpututil.IsKeyJustPressed(key) {
			k.latch.Press(-1)
		}
		if inpututil.IsKeyJustReleased(key) {
			k.latch.Press(1)
		}
	}

	// Fire on key press (not while held)
	for _, key := range k.fire {
		if inpututil.IsKeyJustPressed(key) {
			k.latch.Fire()
		}
	}
}
