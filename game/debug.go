package game

import "fmt"

// DebugState holds debug flags toggled at runtime
type DebugState struct {
	ShowStats bool // Show tick, bullet and alien counts
}

// Toggle flips the stats overlay
func (d *DebugState) Toggle() {
	d.ShowStats = !d.ShowStats
}

// Stats summarizes the simulation for the debug overlay
func Stats(s *GameState) string {
	alive, dying := 0, 0
	for i := range s.Aliens {
		switch {
		case s.Aliens[i].Alive():
			alive++
		case s.Aliens[i].Visible():
			dying++
		}
	}
	return fmt.Sprintf("tick %d  bullets %d/%d  aliens %d  dying %d",
		s.Tick, s.Bullets.Len(), s.Bullets.Cap(), alive, dying)
}
