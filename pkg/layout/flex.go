package layout

import (
	"log"
	"math"
	"sync/atomic"

	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/state"
)

// Axis is the main axis of a flex container.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (a Axis) main(s geometry.Size) float64 {
	if a == Vertical {
		return s.Height
	}
	return s.Width
}

func (a Axis) cross(s geometry.Size) float64 {
	if a == Vertical {
		return s.Width
	}
	return s.Height
}

// pack orders a (main, cross) pair as (width, height).
func (a Axis) pack(main, cross float64) (float64, float64) {
	if a == Vertical {
		return cross, main
	}
	return main, cross
}

func (a Axis) packLength(width, height Length) (main, cross Length) {
	if a == Vertical {
		return height, width
	}
	return width, height
}

// Item is a child of a flex container.
type Item interface {
	Size() (width, height Length)
	Layout(tree *state.Tree, r renderer.Renderer, limits Limits) Node
}

// Flex configures a row or column.
type Flex struct {
	Axis    Axis
	Width   Length
	Height  Length
	Padding geometry.Padding
	Spacing float64
	// Align positions children along the cross axis.
	Align Alignment
}

var (
	snap             atomic.Bool
	unboundedWarning atomic.Bool
	unboundedWarned  atomic.Bool
)

func init() {
	snap.Store(true)
	unboundedWarning.Store(true)
}

// SetSnap controls whether flexible shares are rounded down to whole pixels.
func SetSnap(enabled bool) {
	snap.Store(enabled)
}

// Snap reports whether flexible shares are rounded to whole pixels.
func Snap() bool {
	return snap.Load()
}

// SetUnboundedWarning controls the warning printed when flexible children are
// laid out along an unbounded main axis. Enabling it re-arms the warning.
func SetUnboundedWarning(enabled bool) {
	unboundedWarning.Store(enabled)
	if enabled {
		unboundedWarned.Store(false)
	}
}

// ResolveFlex lays out items along f.Axis and returns the container node.
// trees must hold one state tree per item, in the same order.
//
// Items that do not fill are laid out first and consume space in order.
// The remaining main-axis space is then shared between filling items in
// proportion to their fill factors. A container that shrinks along its
// main axis leaves nothing to share.
func ResolveFlex[I Item](f Flex, r renderer.Renderer, limits Limits, items []I, trees []*state.Tree) Node {
	axis := f.Axis
	limits = limits.Width(f.Width).Height(f.Height).Pad(f.Padding)

	totalSpacing := f.Spacing * float64(max(len(items)-1, 0))
	maxCross := axis.cross(limits.Max())
	mainLength, crossLength := axis.packLength(f.Width, f.Height)

	cross := maxCross
	if crossLength.IsShrink() {
		cross = 0
	}
	available := axis.main(limits.Max()) - totalSpacing

	nodes := make([]Node, len(items))
	factors := make([]uint16, len(items))
	var fillSum uint32

	for i, item := range items {
		w, h := item.Size()
		fillMain, fillCross := axis.packLength(w, h)
		factors[i] = fillMain.FillFactor()
		if factors[i] > 0 {
			fillSum += uint32(factors[i])
			continue
		}

		crossMax := maxCross
		if fillCross.IsFill() {
			crossMax = cross
		}
		mw, mh := axis.pack(math.Max(available, 0), crossMax)
		node := item.Layout(trees[i], r, NewLimits(geometry.Zero, geometry.Size{Width: mw, Height: mh}))
		available -= axis.main(node.Size())
		cross = math.Max(cross, axis.cross(node.Size()))
		nodes[i] = node
	}

	remaining := math.Max(available, 0)
	if mainLength.IsShrink() {
		remaining = 0
	}
	if fillSum > 0 && math.IsInf(remaining, 1) {
		warnUnbounded(axis)
	}

	shares := distribute(remaining, factors, fillSum)
	for i, item := range items {
		if factors[i] == 0 {
			continue
		}
		w, h := item.Size()
		_, fillCross := axis.packLength(w, h)

		maxMain := shares[i]
		minMain := maxMain
		if math.IsInf(maxMain, 1) {
			minMain = 0
		}
		crossMax := maxCross
		if fillCross.IsFill() {
			crossMax = cross
		}
		minW, minH := axis.pack(minMain, 0)
		maxW, maxH := axis.pack(maxMain, crossMax)
		node := item.Layout(trees[i], r, NewLimits(
			geometry.Size{Width: minW, Height: minH},
			geometry.Size{Width: maxW, Height: maxH},
		))
		cross = math.Max(cross, axis.cross(node.Size()))
		nodes[i] = node
	}

	padMain, padCross := f.Padding.Left, f.Padding.Top
	if axis == Vertical {
		padMain, padCross = f.Padding.Top, f.Padding.Left
	}
	main := padMain
	for i := range nodes {
		if i > 0 {
			main += f.Spacing
		}
		x, y := axis.pack(main, padCross)
		node := nodes[i].MoveTo(geometry.Point{X: x, Y: y})
		if axis == Horizontal {
			node = node.Align(Start, f.Align, geometry.Size{Height: cross})
		} else {
			node = node.Align(f.Align, Start, geometry.Size{Width: cross})
		}
		nodes[i] = node
		main += axis.main(node.Size())
	}

	iw, ih := axis.pack(main-padMain, cross)
	size := limits.Resolve(f.Width, f.Height, geometry.Size{Width: iw, Height: ih})
	return NodeWithChildren(size.Expand(f.Padding), nodes)
}

// distribute splits remaining between the items with a non-zero factor.
// Shares are taken between cumulative boundaries so their sum never exceeds
// remaining; with snapping on, boundaries are whole pixels.
func distribute(remaining float64, factors []uint16, total uint32) []float64 {
	shares := make([]float64, len(factors))
	if total == 0 {
		return shares
	}
	if math.IsInf(remaining, 1) {
		for i, f := range factors {
			if f > 0 {
				shares[i] = remaining
			}
		}
		return shares
	}

	snapped := Snap()
	var cumulative uint32
	previous := 0.0
	for i, f := range factors {
		if f == 0 {
			continue
		}
		cumulative += uint32(f)
		boundary := remaining * float64(cumulative) / float64(total)
		if snapped {
			boundary = math.Floor(boundary + 1e-9)
		}
		boundary = math.Min(boundary, remaining)
		shares[i] = math.Max(boundary-previous, 0)
		previous = boundary
	}
	return shares
}

func warnUnbounded(axis Axis) {
	if !unboundedWarning.Load() || unboundedWarned.Swap(true) {
		return
	}
	log.Printf("WARNING: filling children laid out along an unbounded %s axis. "+
		"They cannot share infinite space and will size to their content. "+
		"Give the container a bounded size or use fixed lengths.", axis)
}
