package term

import (
	"image"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/draw"

	"invaders/game"
)

// hudRows is the number of text rows kept below the playfield
const hudRows = 1

// Screen converts pixel buffers into ANSI frames for a terminal of a given
// size. The buffer is scaled to fit with its aspect ratio preserved; each
// terminal cell shows two vertically stacked pixels.
type Screen struct {
	cols, rows int
	src        *image.RGBA // top-down copy of the buffer, reused across frames
	scaled     *image.RGBA
	sb         strings.Builder
	lastHash   uint64
	hasFrame   bool
	needClear  bool
}

// NewScreen creates a screen for the given terminal dimensions
func NewScreen(cols, rows int) *Screen {
	s := &Screen{}
	s.Resize(cols, rows)
	return s
}

// Resize adjusts the screen for a new terminal size and forces a full redraw
func (s *Screen) Resize(cols, rows int) {
	s.cols = cols
	s.rows = rows
	s.scaled = nil
	s.hasFrame = false
	s.needClear = true
}

// fit returns the scaled pixel size for a w×h buffer
func (s *Screen) fit(w, h int) (int, int) {
	availW := s.cols
	availH := (s.rows - hudRows) * 2
	if availW <= 0 || availH <= 0 {
		return 0, 0
	}
	dw, dh := availW, availW*h/w
	if dh > availH {
		dw, dh = availH*w/h, availH
	}
	return dw, dh &^ 1
}

// Render produces the ANSI output for buf followed by a HUD line. The second
// result is false when the frame is identical to the previous one and
// nothing needs to be written.
func (s *Screen) Render(buf *game.PixelBuffer, hud string) (string, bool) {
	dw, dh := s.fit(buf.Width, buf.Height)
	if dw < 1 || dh < 2 {
		return s.tooSmall()
	}

	if s.scaled == nil || s.scaled.Bounds().Dx() != dw || s.scaled.Bounds().Dy() != dh {
		s.scaled = image.NewRGBA(image.Rect(0, 0, dw, dh))
	}
	s.src = buf.ImageInto(s.src)
	draw.NearestNeighbor.Scale(s.scaled, s.scaled.Bounds(), s.src, s.src.Bounds(), draw.Src, nil)

	digest := xxhash.New()
	digest.Write(s.scaled.Pix)
	digest.WriteString(hud)
	sum := digest.Sum64()
	if s.hasFrame && sum == s.lastHash {
		return "", false
	}
	s.lastHash = sum
	s.hasFrame = true

	s.sb.Reset()
	if s.needClear {
		s.sb.WriteString(ClearScreen())
		s.needClear = false
	}
	s.sb.WriteString(Home())
	for row := 0; row < dh/2; row++ {
		for x := 0; x < dw; x++ {
			WriteHalfBlock(&s.sb, s.pixel(x, row*2), s.pixel(x, row*2+1))
		}
		s.sb.WriteString(Reset)
		s.sb.WriteString(ClearLine())
		s.sb.WriteString("\r\n")
	}
	s.sb.WriteString(Reset)
	s.sb.WriteString(hud)
	s.sb.WriteString(ClearLine())
	return s.sb.String(), true
}

func (s *Screen) pixel(x, y int) [3]uint8 {
	off := s.scaled.PixOffset(x, y)
	return [3]uint8{s.scaled.Pix[off], s.scaled.Pix[off+1], s.scaled.Pix[off+2]}
}

func (s *Screen) tooSmall() (string, bool) {
	const msg = "terminal too small"
	sum := xxhash.Sum64String(msg)
	if s.hasFrame && sum == s.lastHash {
		return "", false
	}
	s.lastHash = sum
	s.hasFrame = true
	s.needClear = true
	return ClearScreen() + Home() + Reset + msg, true
}
