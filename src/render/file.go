package render

import (
	"boardeditor/src/board"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveFile writes a PNG or SVG snapshot chosen by the file extension.
func SaveFile(path string, f board.Frame, pal Palette) error {
	var buf bytes.Buffer
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		if err := PNG(&buf, f, pal); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	case ".svg":
		SVG(&buf, f, pal)
	default:
		return fmt.Errorf("unsupported snapshot format %q", filepath.Ext(path))
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
