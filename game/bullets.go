package game

// BulletArena holds bullets in a fixed-capacity slice with a live-count boundary.
// Removal swaps the last live bullet into the freed slot, so iteration order
// is not stable across removals.
type BulletArena struct {
	// Preallocated bullet storage
	bullets []Bullet

	// Number of live bullets at the front of bullets
	count int
}

// NewBulletArena creates an arena holding at most capacity bullets
func NewBulletArena(capacity int) *BulletArena {
	return &BulletArena{
		bullets: make([]Bullet, capacity),
	}
}

// Len returns the number of live bullets
func (a *BulletArena) Len() int {
	return a.count
}

// Cap returns the arena capacity
func (a *BulletArena) Cap() int {
	return len(a.bullets)
}

// Full reports whether no more bullets can be spawned
func (a *BulletArena) Full() bool {
	return a.count >= len(a.bullets)
}

// At returns a pointer to the i-th live bullet
func (a *BulletArena) At(i int) *Bullet {
	return &a.bullets[i]
}

// Spawn adds a bullet. Returns false when the arena is full.
func (a *BulletArena) Spawn(b Bullet) bool {
	if a.Full() {
		return false
	}
	a.bullets[a.count] = b
	a.count++
	return true
}

// Remove deletes the i-th live bullet by swapping the last one into its slot
func (a *BulletArena) Remove(i int) {
	a.bullets[i] = a.bullets[a.count-1]
	a.bullets[a.count-1] = Bullet{}
	a.count--
}

// Live returns the live bullets. The slice aliases arena storage and is only
// valid until the next Spawn or Remove.
func (a *BulletArena) Live() []Bullet {
	return a.bullets[:a.count]
}

// Clear removes all bullets (but keeps capacity)
func (a *BulletArena) Clear() {
	for i := 0; i < a.count; i++ {
		a.bullets[i] = Bullet{}
	}
	a.count = 0
}
