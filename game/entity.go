package game

// AlienVariant identifies an alien's type, or Dead once it has been hit
type AlienVariant int

const (
	AlienDead AlienVariant = iota
	AlienTypeA
	AlienTypeB
	AlienTypeC
)

// LiveVariants lists the variants a wave is built from
var LiveVariants = []AlienVariant{AlienTypeA, AlienTypeB, AlienTypeC}

func (v AlienVariant) String() string {
	switch v {
	case AlienDead:
		return "dead"
	case AlienTypeA:
		return "type-a"
	case AlienTypeB:
		return "type-b"
	case AlienTypeC:
		return "type-c"
	default:
		return "unknown"
	}
}

// Points is the score awarded for shooting an alien of this variant
func (v AlienVariant) Points() int {
	switch v {
	case AlienTypeA:
		return 30
	case AlienTypeB:
		return 20
	case AlienTypeC:
		return 10
	default:
		return 0
	}
}

// Alien is one member of the wave
type Alien struct {
	// Position of the sprite's bottom-left corner
	X, Y int

	Variant AlienVariant

	// Ticks of explosion left after death; 0 means the alien is gone
	DeathTimer int
}

// Alive reports whether the alien can still be hit
func (a *Alien) Alive() bool {
	return a.Variant != AlienDead
}

// Visible reports whether the alien still takes part in rendering
func (a *Alien) Visible() bool {
	return a.DeathTimer > 0
}

// Bullet is a projectile moving vertically
type Bullet struct {
	X, Y int

	// +1 moves up, -1 moves down
	Dir int
}

// Player is the cannon at the bottom of the playfield
type Player struct {
	X, Y  int
	Lives int
}
