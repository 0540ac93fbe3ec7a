package gallery

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Variant widths per responsive breakpoint. VariantOrder fixes the
// srcset ordering.
var (
	VariantWidths = map[string]int{
		"mobile":  400,
		"tablet":  800,
		"desktop": 1200,
		"large":   1600,
	}
	VariantOrder = []string{"mobile", "tablet", "desktop", "large"}
)

// Resizer generates image variants by shelling out to ImageMagick.
type Resizer struct {
	convertPath string
}

// NewResizer assumes convert is in PATH.
func NewResizer() *Resizer {
	return &Resizer{convertPath: "convert"}
}

// CheckAvailable checks that ImageMagick is installed and runnable.
func (r *Resizer) CheckAvailable() error {
	cmd := exec.Command(r.convertPath, "-version")
	output, err := cmd.Output()
	if err != nil {
		return fmt.Errorf("imagemagick not found: %w", err)
	}
	if !strings.Contains(string(output), "ImageMagick") {
		return fmt.Errorf("imagemagick not properly installed")
	}
	return nil
}

// ResizeToWidth writes a copy of input scaled to the given width,
// preserving aspect ratio.
func (r *Resizer) ResizeToWidth(input, output string, width int) error {
	cmd := exec.Command(r.convertPath, resizeArgs(input, output, width)...)
	return cmd.Run()
}

func resizeArgs(input, output string, width int) []string {
	return []string{input, "-resize", fmt.Sprintf("%dx", width), output}
}

// VariantFilename derives a variant's object name from the stored
// filename, e.g. ("a1b2_photo.jpg", "mobile") -> "a1b2_photo_mobile.jpg".
func VariantFilename(filename, size string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	return base + "_" + size + ext
}
