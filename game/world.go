package game

import "fmt"

// Gameplay constants
const (
	BulletCapacity  = 100
	BulletSpeed     = 2 // pixels per tick
	PlayerSpeed     = 2 // pixels per tick
	PlayerLives     = 3
	PlayerY         = 32
	AlienDeathTicks = 10
	AlienColumns    = 11
	AlienRows       = 5
	alienSpacingX   = 16
	alienSpacingY   = 17
	alienOriginX    = 20
	alienOriginY    = 128
)

// GameState is the authoritative simulation state for a single wave
type GameState struct {
	// Playfield size in pixels
	Width, Height int

	Player  Player
	Aliens  []Alien
	Bullets *BulletArena

	Score int
	Tick  uint64

	assets     *Assets
	animations map[AlienVariant]*SpriteAnimation
}

// NewGameState sets up the wave on a playfield of the given size
func NewGameState(width, height int, assets *Assets) (*GameState, error) {
	if err := assets.Validate(); err != nil {
		return nil, fmt.Errorf("invalid assets: %w", err)
	}
	animations, err := assets.NewAnimations()
	if err != nil {
		return nil, err
	}

	s := &GameState{
		Width:      width,
		Height:     height,
		Bullets:    NewBulletArena(BulletCapacity),
		assets:     assets,
		animations: animations,
	}
	s.Player = Player{
		X:     width/2 - assets.Player.Width/2,
		Y:     PlayerY,
		Lives: PlayerLives,
	}
	s.spawnWave()
	return s, nil
}

// spawnWave lays out the alien grid. The bottom two rows are TypeC, the
// middle two TypeB and the top row TypeA.
func (s *GameState) spawnWave() {
	s.Aliens = make([]Alien, 0, AlienColumns*AlienRows)
	for yi := 0; yi < AlienRows; yi++ {
		variant := LiveVariants[(AlienRows-yi)/2]
		hit := s.assets.HitSprite(variant)
		for xi := 0; xi < AlienColumns; xi++ {
			s.Aliens = append(s.Aliens, Alien{
				X:          alienSpacingX*xi + alienOriginX + (s.assets.AlienDeath.Width-hit.Width)/2,
				Y:          alienSpacingY*yi + alienOriginY,
				Variant:    variant,
				DeathTimer: AlienDeathTicks,
			})
		}
	}
}

// Assets returns the sprite registry the state was built with
func (s *GameState) Assets() *Assets {
	return s.assets
}

// Animation returns the shared animation for a live variant
func (s *GameState) Animation(v AlienVariant) *SpriteAnimation {
	return s.animations[v]
}

// Cleared reports whether every alien has fully disappeared
func (s *GameState) Cleared() bool {
	for i := range s.Aliens {
		if s.Aliens[i].Visible() {
			return false
		}
	}
	return true
}

// Advance steps the simulation by one tick
func (s *GameState) Advance(in Intent) {
	for _, v := range LiveVariants {
		s.animations[v].Tick()
	}

	for i := range s.Aliens {
		alien := &s.Aliens[i]
		if !alien.Alive() && alien.DeathTimer > 0 {
			alien.DeathTimer--
		}
	}

	s.updateBullets()
	s.movePlayer(in.Move)

	if in.Fire {
		s.fire()
	}

	s.Tick++
}

// updateBullets moves every bullet and resolves hits. A removed slot is
// refilled from the end of the arena, so the same index is examined again.
func (s *GameState) updateBullets() {
	bulletSprite := s.assets.Bullet
	for i := 0; i < s.Bullets.Len(); {
		bullet := s.Bullets.At(i)
		bullet.Y += bullet.Dir * BulletSpeed

		if bullet.Y >= s.Height || bullet.Y < bulletSprite.Height {
			s.Bullets.Remove(i)
			continue
		}
		if s.hitAlien(bullet) {
			s.Bullets.Remove(i)
			continue
		}
		i++
	}
}

// hitAlien kills the first live alien in roster order whose box overlaps the bullet
func (s *GameState) hitAlien(bullet *Bullet) bool {
	bulletSprite := s.assets.Bullet
	for i := range s.Aliens {
		alien := &s.Aliens[i]
		if !alien.Alive() {
			continue
		}

		hit := s.assets.HitSprite(alien.Variant)
		if !Overlaps(bulletSprite, bullet.X, bullet.Y, hit, alien.X, alien.Y) {
			continue
		}

		s.Score += alien.Variant.Points()
		alien.Variant = AlienDead
		alien.DeathTimer = AlienDeathTicks
		// Recenter for the wider explosion sprite
		alien.X -= (s.assets.AlienDeath.Width - hit.Width) / 2
		return true
	}
	return false
}

// movePlayer applies the move intent, snapping to the playfield edge when
// the step would cross it
func (s *GameState) movePlayer(move int) {
	switch {
	case move > 0:
		move = 1
	case move < 0:
		move = -1
	default:
		return
	}
	d := PlayerSpeed * move
	w := s.assets.Player.Width

	switch {
	case s.Player.X+w+d >= s.Width:
		s.Player.X = s.Width - w
	case s.Player.X+d <= 0:
		s.Player.X = 0
	default:
		s.Player.X += d
	}
}

// fire spawns a bullet above the player's center. A full arena ignores the shot.
func (s *GameState) fire() {
	s.Bullets.Spawn(Bullet{
		X:   s.Player.X + s.assets.Player.Width/2,
		Y:   s.Player.Y + s.assets.Player.Height,
		Dir: 1,
	})
}
