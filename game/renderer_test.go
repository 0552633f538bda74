package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func renderState(s *GameState) *PixelBuffer {
	buf := NewPixelBuffer(s.Width, s.Height)
	NewRenderer(s.Assets(), DefaultPalette()).Draw(buf, s)
	return buf
}

func TestRenderer_DrawsWave(t *testing.T) {
	s := newTestState(t)
	a := s.Assets()
	palette := DefaultPalette()

	buf := renderState(s)

	want := a.Player.SetBits()
	for _, alien := range s.Aliens {
		want += a.HitSprite(alien.Variant).SetBits()
	}
	assert.Equal(t, want, countColor(buf, palette.Sprite))
	assert.Equal(t, len(buf.Pixels)-want, countColor(buf, palette.Background))
}

func TestRenderer_PlayerOrientation(t *testing.T) {
	s := newTestState(t)
	s.Aliens = nil
	palette := DefaultPalette()

	buf := renderState(s)

	// Solid base on the bottom row, single barrel pixel on the top row
	for x := 107; x < 118; x++ {
		assert.Equal(t, palette.Sprite, buf.At(x, 32), "x=%d", x)
	}
	assert.Equal(t, palette.Sprite, buf.At(112, 38))
	assert.Equal(t, palette.Background, buf.At(107, 38))
}

func TestRenderer_DeadAliens(t *testing.T) {
	s := newTestState(t)
	a := s.Assets()
	palette := DefaultPalette()

	s.Aliens = []Alien{{X: 20, Y: 128, Variant: AlienDead, DeathTimer: 5}}
	buf := renderState(s)
	assert.Equal(t, a.AlienDeath.SetBits()+a.Player.SetBits(), countColor(buf, palette.Sprite))

	s.Aliens[0].DeathTimer = 0
	buf = renderState(s)
	assert.Equal(t, a.Player.SetBits(), countColor(buf, palette.Sprite))
}

func TestRenderer_Bullets(t *testing.T) {
	s := newTestState(t)
	s.Aliens = nil
	s.Bullets.Spawn(Bullet{X: 2, Y: 100, Dir: 1})
	palette := DefaultPalette()

	buf := renderState(s)
	for y := 100; y < 103; y++ {
		assert.Equal(t, palette.Sprite, buf.At(2, y))
	}
	assert.Equal(t, palette.Background, buf.At(2, 103))
}

func TestRenderer_AnimatedFrame(t *testing.T) {
	s := newTestState(t)
	a := s.Assets()
	s.Aliens = []Alien{{X: 20, Y: 128, Variant: AlienTypeB, DeathTimer: AlienDeathTicks}}
	palette := DefaultPalette()

	advance(s, Intent{}, AlienFrameDuration)
	buf := renderState(s)

	want := a.AlienFrames[AlienTypeB][1].SetBits() + a.Player.SetBits()
	assert.Equal(t, want, countColor(buf, palette.Sprite))
}
