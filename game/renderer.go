package game

// Palette holds the packed colors used by the renderer
type Palette struct {
	Background uint32
	Sprite     uint32
}

// DefaultPalette returns the classic green-on-red palette
func DefaultPalette() Palette {
	return Palette{
		Background: Pack(0, 128, 0),
		Sprite:     Pack(128, 0, 0),
	}
}

// Renderer rasterizes a GameState into a PixelBuffer
type Renderer struct {
	assets  *Assets
	palette Palette
}

// NewRenderer creates a new renderer
func NewRenderer(assets *Assets, palette Palette) *Renderer {
	return &Renderer{
		assets:  assets,
		palette: palette,
	}
}

// Draw clears the buffer and draws aliens, bullets and the player, in that
// order. Call it after GameState.Advance for the frame.
func (r *Renderer) Draw(buf *PixelBuffer, state *GameState) {
	buf.Clear(r.palette.Background)

	for i := range state.Aliens {
		alien := &state.Aliens[i]
		if !alien.Visible() {
			continue
		}
		if alien.Alive() {
			frame := state.Animation(alien.Variant).CurrentFrame()
			buf.Blit(frame, alien.X, alien.Y, r.palette.Sprite)
		} else {
			buf.Blit(r.assets.AlienDeath, alien.X, alien.Y, r.palette.Sprite)
		}
	}

	for _, bullet := range state.Bullets.Live() {
		buf.Blit(r.assets.Bullet, bullet.X, bullet.Y, r.palette.Sprite)
	}

	buf.Blit(r.assets.Player, state.Player.X, state.Player.Y, r.palette.Sprite)
}
