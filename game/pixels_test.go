package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	assert.Equal(t, uint32(0x008000FF), Pack(0, 128, 0))
	assert.Equal(t, uint32(0x800000FF), Pack(128, 0, 0))

	r, g, b, a := Unpack(Pack(1, 2, 3))
	assert.Equal(t, []uint8{1, 2, 3, 0xFF}, []uint8{r, g, b, a})
}

func TestPixelBuffer_Clear(t *testing.T) {
	buf := NewPixelBuffer(4, 3)
	require.Len(t, buf.Pixels, 12)

	buf.Clear(Pack(9, 9, 9))
	for i, p := range buf.Pixels {
		assert.Equal(t, Pack(9, 9, 9), p, "pixel %d", i)
	}
}

func TestPixelBuffer_BlitFlipsRows(t *testing.T) {
	// Top row of the mask lands on the highest buffer row
	sprite := MustParseSprite(
		"@.",
		".@",
	)
	buf := NewPixelBuffer(4, 4)
	bg, fg := Pack(0, 0, 0), Pack(255, 255, 255)
	buf.Clear(bg)

	n := buf.Blit(sprite, 1, 1, fg)
	assert.Equal(t, 2, n)

	assert.Equal(t, fg, buf.At(1, 2))
	assert.Equal(t, fg, buf.At(2, 1))
	assert.Equal(t, bg, buf.At(2, 2))
	assert.Equal(t, bg, buf.At(1, 1))
}

func TestPixelBuffer_BlitClips(t *testing.T) {
	sprite := MustParseSprite(
		"@@",
		"@@",
	)
	buf := NewPixelBuffer(4, 4)

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"inside", 1, 1, 4},
		{"left edge", -1, 0, 2},
		{"bottom edge", 0, -1, 2},
		{"top right corner", 3, 3, 1},
		{"fully outside", 10, 10, 0},
		{"fully below", 0, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Clear(0)
			assert.Equal(t, tt.want, buf.Blit(sprite, tt.x, tt.y, 1))
		})
	}
}

func TestPixelBuffer_BlitWritesOnlySetCells(t *testing.T) {
	sprite := DefaultAssets().AlienFrames[AlienTypeB][0]
	bg, fg := Pack(0, 128, 0), Pack(128, 0, 0)
	buf := NewPixelBuffer(16, 12)

	for x := -sprite.Width; x <= buf.Width; x += 3 {
		for y := -sprite.Height; y <= buf.Height; y += 2 {
			buf.Clear(bg)
			written := buf.Blit(sprite, x, y, fg)

			// Every in-bounds set cell is written and nothing else changes
			expected := 0
			for yi := 0; yi < sprite.Height; yi++ {
				for xi := 0; xi < sprite.Width; xi++ {
					sx, sy := x+xi, y+sprite.Height-1-yi
					if !sprite.Mask[yi*sprite.Width+xi] || sx < 0 || sx >= buf.Width || sy < 0 || sy >= buf.Height {
						continue
					}
					expected++
					assert.Equal(t, fg, buf.At(sx, sy))
				}
			}
			assert.Equal(t, expected, written, "origin (%d,%d)", x, y)
			assert.Equal(t, expected, countColor(buf, fg), "origin (%d,%d)", x, y)
		}
	}
}

func TestPixelBuffer_AtOutOfRange(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	buf.Clear(7)
	assert.Equal(t, uint32(7), buf.At(1, 1))
	assert.Zero(t, buf.At(-1, 0))
	assert.Zero(t, buf.At(0, 2))
}

func TestPixelBuffer_Bytes(t *testing.T) {
	buf := NewPixelBuffer(2, 1)
	buf.Pixels[0] = Pack(1, 2, 3)
	buf.Pixels[1] = Pack(4, 5, 6)

	out := buf.Bytes(nil)
	assert.Equal(t, []byte{1, 2, 3, 255, 4, 5, 6, 255}, out)

	// Large enough destinations are reused
	again := buf.Bytes(out)
	assert.Same(t, &out[0], &again[0])
}

func TestPixelBuffer_ImageIsTopDown(t *testing.T) {
	buf := NewPixelBuffer(1, 2)
	buf.Pixels[0] = Pack(255, 0, 0) // bottom
	buf.Pixels[1] = Pack(0, 0, 255) // top

	img := buf.Image()
	require.Equal(t, 1, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, []uint8{0, 0, 255, 255}, img.Pix[0:4])
	assert.Equal(t, []uint8{255, 0, 0, 255}, img.Pix[4:8])
}

func countColor(buf *PixelBuffer, color uint32) int {
	n := 0
	for _, p := range buf.Pixels {
		if p == color {
			n++
		}
	}
	return n
}

func TestPixelBuffer_ImageIntoReuses(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	buf.Clear(Pack(1, 2, 3))
	img := buf.ImageInto(nil)

	buf.Pixels[0] = Pack(9, 9, 9) // bottom left
	again := buf.ImageInto(img)
	assert.Same(t, img, again)
	assert.Equal(t, []uint8{9, 9, 9, 255}, again.Pix[again.PixOffset(0, 1):][:4])

	// A different size gets a fresh image
	other := NewPixelBuffer(3, 1).ImageInto(img)
	assert.NotSame(t, img, other)
	assert.Equal(t, 3, other.Bounds().Dx())
}
