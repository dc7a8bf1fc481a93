package vision

import (
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/draw"

	"github.com/lgbarn/kingcheck-go/internal/chess"
	"github.com/lgbarn/kingcheck-go/internal/engine"
	"github.com/lgbarn/kingcheck-go/internal/errors"
)

// Result is a board read from an image.
type Result struct {
	Origin   image.Point // Top-left pixel of the board
	TileSize int
	Rows     []string
}

// Board parses the recognised rows.
func (r *Result) Board() (*chess.Board, error) {
	return engine.ParseRows(r.Rows)
}

// composite is a piece drawn over a tile, in grey, at a given tile size.
type composite struct {
	symbol byte
	pixels []float64
}

// Recognizer matches board tiles against a template set. It is safe for
// concurrent use; composites are built once per tile size.
type Recognizer struct {
	templates *Templates

	mu    sync.Mutex
	cache map[int][]composite
}

// NewRecognizer creates a recognizer for the given templates.
func NewRecognizer(templates *Templates) *Recognizer {
	return &Recognizer{
		templates: templates,
		cache:     make(map[int][]composite),
	}
}

// Recognize locates the board in img and reads its 64 tiles. A tile whose
// pixels all match the dark or the light tile colour is empty; any other
// tile takes the symbol of the best correlated composite.
func (r *Recognizer) Recognize(img image.Image) (*Result, error) {
	origin, err := Locate(img)
	if err != nil {
		return nil, err
	}
	size := TileSize(img, origin)
	span := image.Rect(origin.X, origin.Y, origin.X+size*chess.BoardSize, origin.Y+size*chess.BoardSize)
	if size == 0 || !span.In(img.Bounds()) {
		return nil, fmt.Errorf("board at %v with tile size %d does not fit the image: %w",
			origin, size, errors.ErrUnrecognizedImage)
	}

	composites := r.composites(size)
	darkColour := grey(r.templates.Dark.At(r.templates.Dark.Bounds().Min.X, r.templates.Dark.Bounds().Min.Y))
	lightColour := grey(r.templates.Light.At(r.templates.Light.Bounds().Min.X, r.templates.Light.Bounds().Min.Y))

	rows := make([]string, chess.BoardSize)
	tile := make([]float64, size*size)
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, chess.BoardSize)
		for col := 0; col < chess.BoardSize; col++ {
			x0 := origin.X + col*size
			y0 := origin.Y + row*size
			allDark, allLight := true, true
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					v := grey(img.At(x0+x, y0+y))
					allDark = allDark && v == darkColour
					allLight = allLight && v == lightColour
					tile[y*size+x] = float64(v)
				}
			}
			if allDark || allLight {
				line[col] = engine.EmptySymbol
				continue
			}

			symbol, ok := bestMatch(tile, composites)
			if !ok {
				return nil, fmt.Errorf("tile (%d,%d) matches no template: %w", row, col, errors.ErrUnrecognizedImage)
			}
			line[col] = symbol
		}
		rows[row] = string(line)
	}

	log.Debug("board recognised", "origin", origin, "tile_size", size)
	return &Result{Origin: origin, TileSize: size, Rows: rows}, nil
}

// bestMatch returns the symbol of the composite with the highest positive
// correlation. Earlier composites win ties.
func bestMatch(tile []float64, composites []composite) (byte, bool) {
	best := 0.0
	var symbol byte
	for _, c := range composites {
		if score := correlation(tile, c.pixels); score > best {
			best = score
			symbol = c.symbol
		}
	}
	return symbol, symbol != 0
}

// composites returns every piece drawn over every tile, rescaled to size,
// in a fixed order: dark tile then light, White pieces then Black.
func (r *Recognizer) composites(size int) []composite {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[size]; ok {
		return cached
	}

	var out []composite
	for _, tile := range []image.Image{r.templates.Dark, r.templates.Light} {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, kind := range chess.PieceKinds {
				piece := chess.MakeColouredPiece(colour, kind)
				out = append(out, composite{
					symbol: engine.Symbol(piece),
					pixels: compose(tile, r.templates.Pieces[piece], size),
				})
			}
		}
	}
	r.cache[size] = out
	return out
}

// compose pastes piece over tile using the piece's alpha, converts the
// result to grey and rescales it to size x size.
func compose(tile, piece image.Image, size int) []float64 {
	tb := tile.Bounds()
	merged := image.NewRGBA(image.Rect(0, 0, tb.Dx(), tb.Dy()))
	draw.Draw(merged, merged.Bounds(), tile, tb.Min, draw.Src)
	draw.Draw(merged, merged.Bounds(), piece, piece.Bounds().Min, draw.Over)

	scaled := image.NewGray(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), merged, merged.Bounds(), draw.Src, nil)

	pixels := make([]float64, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pixels[y*size+x] = float64(scaled.GrayAt(x, y).Y)
		}
	}
	return pixels
}

// correlation returns the Pearson correlation coefficient of a and b, or
// 0 when either is constant.
func correlation(a, b []float64) float64 {
	n := float64(len(a))
	if n == 0 || len(a) != len(b) {
		return 0
	}
	var sumA, sumB float64
	for i := range a {
		sumA += a[i]
		sumB += b[i]
	}
	meanA, meanB := sumA/n, sumB/n

	var cov, varA, varB float64
	for i := range a {
		da, db := a[i]-meanA, b[i]-meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}
	return cov / math.Sqrt(varA*varB)
}
