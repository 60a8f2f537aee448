package widgets_test

import (
	"testing"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/renderer"
	lattest "github.com/go-drift/lattice/pkg/testing"
)

// cellWidth and cellHeight are the text metrics used by every widget test.
const (
	cellWidth  = 8
	cellHeight = 16
)

// mount creates a tester measuring text on a fixed cell grid.
func mount[M any](t *testing.T, size geometry.Size, view func() core.Element[M], update func(M)) *lattest.Tester[M] {
	t.Helper()
	tester := lattest.NewWithT(t, view, update)
	tester.SetMeasurer(renderer.NewCellMeasurer(cellWidth, cellHeight))
	tester.SetSize(size)
	return tester
}

func static[M any](e core.Element[M]) func() core.Element[M] {
	return func() core.Element[M] { return e }
}

func rect(x, y, w, h float64) geometry.Rectangle {
	return geometry.Rectangle{X: x, Y: y, Width: w, Height: h}
}
