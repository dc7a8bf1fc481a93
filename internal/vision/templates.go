package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/errors"
)

// Templates holds the reference images a board is matched against.
type Templates struct {
	Dark   image.Image
	Light  image.Image
	Pieces map[chess.Piece]image.Image // Keyed by coloured piece
}

// NewTemplates builds a template set from in-memory images. All twelve
// coloured pieces must be present.
func NewTemplates(dark, light image.Image, pieces map[chess.Piece]image.Image) (*Templates, error) {
	if dark == nil || light == nil {
		return nil, fmt.Errorf("tile image: %w", errors.ErrMissingTemplate)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, kind := range chess.PieceKinds {
			if pieces[chess.MakeColouredPiece(colour, kind)] == nil {
				return nil, fmt.Errorf("%s %s: %w", colour, kind, errors.ErrMissingTemplate)
			}
		}
	}
	return &Templates{Dark: dark, Light: light, Pieces: pieces}, nil
}

// LoadTemplates reads a template directory laid out as
//
//	tiles/black.png, tiles/white.png
//	pieces/black/<name>.png|svg, pieces/white/<name>.png|svg
//
// Piece names starting with "knight" are knights; otherwise the first
// letter (b, k, n, p, q, r) selects the piece. SVG pieces are rasterised
// at the tile size.
func LoadTemplates(dir string) (*Templates, error) {
	dark, err := loadPNG(filepath.Join(dir, "tiles", "black.png"))
	if err != nil {
		return nil, err
	}
	light, err := loadPNG(filepath.Join(dir, "tiles", "white.png"))
	if err != nil {
		return nil, err
	}

	size := dark.Bounds().Dx()
	pieces := make(map[chess.Piece]image.Image)
	for name, colour := range map[string]chess.Colour{"black": chess.Black, "white": chess.White} {
		pieceDir := filepath.Join(dir, "pieces", name)
		entries, err := os.ReadDir(pieceDir)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %v: %w", pieceDir, err, errors.ErrMissingTemplate)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			kind, ok := pieceKindFromName(entry.Name())
			if !ok {
				log.Debug("skipping template", "file", entry.Name())
				continue
			}
			path := filepath.Join(pieceDir, entry.Name())
			var img image.Image
			switch strings.ToLower(filepath.Ext(path)) {
			case ".png":
				img, err = loadPNG(path)
			case ".svg":
				img, err = loadSVG(path, size)
			default:
				log.Debug("skipping template", "file", path)
				continue
			}
			if err != nil {
				return nil, err
			}
			pieces[chess.MakeColouredPiece(colour, kind)] = img
		}
	}
	return NewTemplates(dark, light, pieces)
}

func pieceKindFromName(name string) (chess.Piece, bool) {
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "knight") {
		return chess.Knight, true
	}
	if lower == "" {
		return chess.Empty, false
	}
	switch lower[0] {
	case 'b':
		return chess.Bishop, true
	case 'k':
		return chess.King, true
	case 'n':
		return chess.Knight, true
	case 'p':
		return chess.Pawn, true
	case 'q':
		return chess.Queen, true
	case 'r':
		return chess.Rook, true
	}
	return chess.Empty, false
}

func loadPNG(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrMissingTemplate)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// loadSVG renders an SVG file onto a size x size transparent canvas.
func loadSVG(path string, size int) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrMissingTemplate)
	}
	return rasterize(data, size)
}

func rasterize(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}
