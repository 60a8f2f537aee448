package widgets

import (
	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// Space is an empty widget that takes room in a layout.
type Space[M any] struct {
	core.Base[M]
	Width  layout.Length
	Height layout.Length
}

// FillSpace returns a space filling both axes.
func FillSpace[M any]() core.Element[M] {
	return core.NewElement[M](Space[M]{Width: layout.Fill, Height: layout.Fill})
}

// HSpace returns a space of fixed width.
func HSpace[M any](width float64) core.Element[M] {
	return core.NewElement[M](Space[M]{Width: layout.Fixed(width)})
}

// VSpace returns a space of fixed height.
func VSpace[M any](height float64) core.Element[M] {
	return core.NewElement[M](Space[M]{Height: layout.Fixed(height)})
}

// Element wraps the space.
func (s Space[M]) Element() core.Element[M] { return core.NewElement[M](s) }

func (s Space[M]) Size() (layout.Length, layout.Length) { return s.Width, s.Height }

func (s Space[M]) Layout(_ *state.Tree, _ renderer.Renderer, limits layout.Limits) layout.Node {
	return layout.Atomic(limits, s.Width, s.Height)
}
