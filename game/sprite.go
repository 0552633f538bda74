package game

import (
	"errors"
	"fmt"
)

// ErrSpriteSize is returned when a sprite's mask does not match its declared size
var ErrSpriteSize = errors.New("sprite size mismatch")

// Sprite is an immutable masked bitmap. Mask row 0 is the visual top.
type Sprite struct {
	Width  int
	Height int
	Mask   []bool
}

// NewSprite validates the mask length against width*height
func NewSprite(width, height int, mask []bool) (*Sprite, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSpriteSize, width, height)
	}
	if len(mask) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d cells, got %d", ErrSpriteSize, width, height, width*height, len(mask))
	}
	m := make([]bool, len(mask))
	copy(m, mask)
	return &Sprite{Width: width, Height: height, Mask: m}, nil
}

// ParseSprite builds a sprite from text rows where '@' marks a set cell and
// '.' a clear one. Every row must have the same width.
func ParseSprite(rows ...string) (*Sprite, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrSpriteSize)
	}
	width := len(rows[0])
	mask := make([]bool, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrSpriteSize, i, len(row), width)
		}
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case '@':
				mask = append(mask, true)
			case '.':
				mask = append(mask, false)
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected %q", i, j, row[j])
			}
		}
	}
	return NewSprite(width, len(rows), mask)
}

// MustParseSprite is ParseSprite for compiled-in art
func MustParseSprite(rows ...string) *Sprite {
	s, err := ParseSprite(rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// SetBits returns the number of set mask cells
func (s *Sprite) SetBits() int {
	n := 0
	for _, m := range s.Mask {
		if m {
			n++
		}
	}
	return n
}
