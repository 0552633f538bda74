package game

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// SaveScreenshot writes the buffer as a PNG into dir and returns the file path
func SaveScreenshot(buf *PixelBuffer, dir string, tick uint64) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%06d.png", tick))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, buf.Image()); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}
	return path, nil
}
