// Package vision reads an 8x8 board out of a screenshot by matching each
// tile against composited piece templates.
package vision

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/lgbarn/kingcheck-go/internal/errors"
)

var log = slog.Default().With("package", "vision")

// Locate returns the first pixel, scanning row by row, whose red, green
// and blue channels are all non-zero. The board is expected to sit on a
// black background, so this is its top-left corner.
func Locate(img image.Image) (image.Point, error) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0 && g != 0 && bl != 0 {
				return image.Pt(x, y), nil
			}
		}
	}
	return image.Point{}, fmt.Errorf("no board pixels found: %w", errors.ErrUnrecognizedImage)
}

// TileSize counts the pixels from origin downwards that share the origin's
// colour. With an unoccupied left edge on the top-left tile this is the
// tile height.
func TileSize(img image.Image, origin image.Point) int {
	ref := img.At(origin.X, origin.Y)
	size := 0
	for y := origin.Y; y < img.Bounds().Max.Y; y++ {
		if !sameColour(img.At(origin.X, y), ref) {
			break
		}
		size++
	}
	return size
}

func sameColour(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// grey returns the luminance of c.
func grey(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
