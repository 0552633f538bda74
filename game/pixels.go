package game

import (
	"encoding/binary"
	"image"
)

// Pack packs an opaque color into the buffer's R,G,B,A word layout
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF
}

// Unpack splits a packed color into its channels
func Unpack(c uint32) (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// PixelBuffer is the CPU-side framebuffer.
// Pixels are row-major with y=0 at the bottom of the screen.
type PixelBuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewPixelBuffer allocates a buffer of the given size
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// Clear sets every pixel to color
func (b *PixelBuffer) Clear(color uint32) {
	for i := range b.Pixels {
		b.Pixels[i] = color
	}
}

// At returns the pixel at (x, y). Out of range coordinates return 0.
func (b *PixelBuffer) At(x, y int) uint32 {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return 0
	}
	return b.Pixels[y*b.Width+x]
}

// Blit composites the set cells of the sprite mask onto the buffer with the
// sprite's bottom-left corner at (x, y). Mask row 0 is the top of the sprite.
// Cells landing outside the buffer are skipped. Returns the number of pixels written.
func (b *PixelBuffer) Blit(sprite *Sprite, x, y int, color uint32) int {
	written := 0
	for yi := 0; yi < sprite.Height; yi++ {
		sy := y + sprite.Height - 1 - yi
		if sy < 0 || sy >= b.Height {
			continue
		}
		row := yi * sprite.Width
		for xi := 0; xi < sprite.Width; xi++ {
			if !sprite.Mask[row+xi] {
				continue
			}
			sx := x + xi
			if sx < 0 || sx >= b.Width {
				continue
			}
			b.Pixels[sy*b.Width+sx] = color
			written++
		}
	}
	return written
}

// Bytes writes the buffer as R,G,B,A bytes in buffer row order (bottom row first),
// reusing dst when it is large enough. This is the texture upload layout.
func (b *PixelBuffer) Bytes(dst []byte) []byte {
	n := len(b.Pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range b.Pixels {
		binary.BigEndian.PutUint32(dst[i*4:], p)
	}
	return dst
}

// Image returns a top-down RGBA copy of the buffer
func (b *PixelBuffer) Image() *image.RGBA {
	return b.ImageInto(nil)
}

// ImageInto copies the buffer top-down into dst and returns it. A nil or
// differently sized dst is replaced by a new image.
func (b *PixelBuffer) ImageInto(dst *image.RGBA) *image.RGBA {
	bounds := image.Rect(0, 0, b.Width, b.Height)
	if dst == nil || dst.Bounds() != bounds {
		dst = image.NewRGBA(bounds)
	}
	for y := 0; y < b.Height; y++ {
		src := b.Pixels[y*b.Width : (y+1)*b.Width]
		off := dst.PixOffset(0, b.Height-1-y)
		for x, p := range src {
			binary.BigEndian.PutUint32(dst.Pix[off+x*4:], p)
		}
	}
	return dst
}
