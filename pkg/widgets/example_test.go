package widgets_test

import (
	"fmt"

	"github.com/go-drift/lattice/pkg/engine"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/widgets"
)

// A filling space pushes its siblings to the edges of a row.
func ExampleRow() {
	row := widgets.RowOf(
		widgets.TextOf[struct{}]("A").Element(),
		widgets.FillSpace[struct{}](),
		widgets.TextOf[struct{}]("B").Element(),
	).WithWidth(layout.Fill)

	r := renderer.NewRecorder(renderer.NewCellMeasurer(8, 16))
	ui := engine.Build(row.Element(), geometry.Size{Width: 300, Height: 100}, engine.NewCache(), r)

	for _, child := range ui.Layout().Children() {
		b := child.Bounds()
		fmt.Printf("x=%v width=%v\n", b.X, b.Width)
	}
	// Output:
	// x=0 width=8
	// x=8 width=284
	// x=292 width=8
}
