// Package fonts provides the typeface used for preview labels.
//
// PNG previews draw text with the Go Regular font bundled in
// golang.org/x/image, so rendering needs no system fonts. SVG previews name
// the same family first and fall back to common sans-serif faces.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontFamily is the CSS font-family list for SVG labels.
const FontFamily = `'Go', system-ui, 'Helvetica Neue', Arial, sans-serif`

var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// Face returns a Go Regular face at size points (72 DPI, so points equal
// pixels). Faces are cached per size and must not be closed by callers.
func Face(size float64) (font.Face, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, parseErr
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	faces[size] = f
	return f, nil
}
