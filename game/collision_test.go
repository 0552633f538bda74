package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	bullet := MustParseSprite("@", "@", "@")
	alien := DefaultAssets().AlienFrames[AlienTypeA][0] // 8x8

	tests := []struct {
		name   string
		bx, by int
		want   bool
	}{
		{"inside", 23, 130, true},
		{"left edge", 20, 130, true},
		{"just left", 19, 130, false},
		{"right edge", 27, 130, true},
		{"just right", 28, 130, false},
		{"touching below", 23, 125, false},
		{"one row into bottom", 23, 126, true},
		{"top row", 23, 135, true},
		{"just above", 23, 136, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(bullet, tt.bx, tt.by, alien, 20, 128))
			// Symmetric
			assert.Equal(t, tt.want, Overlaps(alien, 20, 128, bullet, tt.bx, tt.by))
		})
	}
}

func TestOverlaps_IgnoresMask(t *testing.T) {
	// The top-left cell of type A is transparent, but the box still overlaps
	alien := DefaultAssets().AlienFrames[AlienTypeA][0]
	bullet := MustParseSprite("@", "@", "@")
	assert.False(t, alien.Mask[0])

	assert.True(t, Overlaps(bullet, 20, 135, alien, 20, 128))
}
