package renderer

import (
	"strings"

	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/mattn/go-runewidth"
)

// CellMeasurer measures text on a fixed character grid, as terminals do.
// Wide runes (CJK, emoji) occupy two cells. The size argument is ignored.
type CellMeasurer struct {
	CellWidth  float64
	CellHeight float64
}

// NewCellMeasurer creates a measurer with the given cell dimensions.
func NewCellMeasurer(cellWidth, cellHeight float64) *CellMeasurer {
	return &CellMeasurer{CellWidth: cellWidth, CellHeight: cellHeight}
}

// DefaultTextSize implements TextMeasurer.
func (m *CellMeasurer) DefaultTextSize() float64 {
	return m.CellHeight
}

// MeasureText implements TextMeasurer.
func (m *CellMeasurer) MeasureText(content string, _ float64) geometry.Size {
	lines := strings.Split(content, "\n")
	cells := 0
	for _, line := range lines {
		cells = max(cells, runewidth.StringWidth(line))
	}
	return geometry.Size{
		Width:  float64(cells) * m.CellWidth,
		Height: float64(len(lines)) * m.CellHeight,
	}
}

// HitTestText implements TextMeasurer.
func (m *CellMeasurer) HitTestText(content string, _ float64, x float64) int {
	if x <= 0 || m.CellWidth <= 0 {
		return 0
	}
	target := x / m.CellWidth
	column := 0.0
	index := 0
	for _, r := range content {
		w := float64(runewidth.RuneWidth(r))
		if target < column+w {
			if target-column < column+w-target {
				return index
			}
			return index + 1
		}
		column += w
		index++
	}
	return index
}
