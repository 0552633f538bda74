package term

import (
	"strconv"
	"strings"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	// UpperHalf draws the top pixel in the foreground color and the bottom
	// pixel in the background color, two pixels per terminal cell.
	UpperHalf = '▀'
)

// Home moves the cursor to the top-left corner.
func Home() string {
	return CSI + "H"
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// ClearLine clears from the cursor to the end of the line.
func ClearLine() string {
	return CSI + "K"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// writeRGB appends a 24-bit color parameter list "r;g;b".
func writeRGB(sb *strings.Builder, r, g, b uint8) {
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(b)))
}

// WriteHalfBlock writes one cell showing two stacked pixels.
// Uses combined SGR to avoid state leakage between cells.
func WriteHalfBlock(sb *strings.Builder, top, bottom [3]uint8) {
	sb.WriteString(CSI + "38;2;")
	writeRGB(sb, top[0], top[1], top[2])
	sb.WriteString(";48;2;")
	writeRGB(sb, bottom[0], bottom[1], bottom[2])
	sb.WriteByte('m')
	sb.WriteRune(UpperHalf)
}
