package renderer

import (
	"math"
	"strings"

	"github.com/go-drift/lattice/pkg/geometry"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FontMeasurer measures text with a font.Face rasterized at a nominal size.
// Other sizes are scaled linearly from the nominal metrics.
type FontMeasurer struct {
	face        font.Face
	nominalSize float64
	defaultSize float64
}

// NewFontMeasurer creates a measurer for face, whose metrics correspond to
// nominalSize pixels.
func NewFontMeasurer(face font.Face, nominalSize, defaultSize float64) *FontMeasurer {
	if nominalSize <= 0 {
		nominalSize = 1
	}
	return &FontMeasurer{face: face, nominalSize: nominalSize, defaultSize: defaultSize}
}

// DefaultFontMeasurer measures with the bundled 7x13 bitmap face.
func DefaultFontMeasurer(defaultSize float64) *FontMeasurer {
	return NewFontMeasurer(basicfont.Face7x13, 13, defaultSize)
}

// DefaultTextSize implements TextMeasurer.
func (m *FontMeasurer) DefaultTextSize() float64 {
	return m.defaultSize
}

func (m *FontMeasurer) scale(size float64) float64 {
	if size <= 0 {
		size = m.defaultSize
	}
	return size / m.nominalSize
}

// MeasureText implements TextMeasurer.
func (m *FontMeasurer) MeasureText(content string, size float64) geometry.Size {
	scale := m.scale(size)
	lines := strings.Split(content, "\n")
	width := 0.0
	for _, line := range lines {
		width = math.Max(width, toFloat(font.MeasureString(m.face, line)))
	}
	lineHeight := toFloat(m.face.Metrics().Height)
	return geometry.Size{
		Width:  width * scale,
		Height: lineHeight * float64(len(lines)) * scale,
	}
}

// HitTestText implements TextMeasurer.
func (m *FontMeasurer) HitTestText(content string, size float64, x float64) int {
	target := x / m.scale(size)
	if target <= 0 {
		return 0
	}
	var (
		pen   fixed.Int26_6
		prev  rune = -1
		index int
	)
	for _, r := range content {
		if prev >= 0 {
			pen += m.face.Kern(prev, r)
		}
		advance, ok := m.face.GlyphAdvance(r)
		if !ok {
			advance, _ = m.face.GlyphAdvance('?')
		}
		start := toFloat(pen)
		end := toFloat(pen + advance)
		if target < end {
			if target-start < end-target {
				return index
			}
			return index + 1
		}
		pen += advance
		prev = r
		index++
	}
	return index
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
