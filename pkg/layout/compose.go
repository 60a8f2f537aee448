package layout

import "github.com/go-drift/lattice/pkg/geometry"

// Atomic resolves a node with no content of its own.
func Atomic(limits Limits, width, height Length) Node {
	return NewNode(limits.Resolve(width, height, geometry.Zero))
}

// Sized resolves a leaf node whose intrinsic size is computed by measure
// under the limits narrowed by width and height.
func Sized(limits Limits, width, height Length, measure func(Limits) geometry.Size) Node {
	limits = limits.Width(width).Height(height)
	return NewNode(limits.Resolve(width, height, measure(limits)))
}

// Contained resolves a node wrapping the single child produced by content.
func Contained(limits Limits, width, height Length, content func(Limits) Node) Node {
	limits = limits.Width(width).Height(height)
	child := content(limits)
	return NodeWithChildren(limits.Resolve(width, height, child.Size()), []Node{child})
}

// Padded resolves a node wrapping content inset by padding.
func Padded(limits Limits, width, height Length, padding geometry.Padding, content func(Limits) Node) Node {
	return Positioned(limits, width, height, padding, content, func(n Node, _ geometry.Size) Node { return n })
}

// Positioned is Padded with a final step that may move the content within
// the space left inside the padding.
func Positioned(
	limits Limits,
	width, height Length,
	padding geometry.Padding,
	content func(Limits) Node,
	position func(content Node, space geometry.Size) Node,
) Node {
	limits = limits.Width(width).Height(height)
	child := content(limits.Pad(padding))
	padding = padding.Fit(child.Size(), limits.Max())

	size := limits.Pad(padding).Resolve(width, height, child.Size())
	child = child.MoveTo(geometry.Point{X: padding.Left, Y: padding.Top})
	return NodeWithChildren(size.Expand(padding), []Node{position(child, size)})
}

// NextToEachOther places two nodes side by side, separated by spacing and
// centered vertically against each other.
func NextToEachOther(limits Limits, spacing float64, left, right func(Limits) Node) Node {
	leftNode := left(limits)
	ls := leftNode.Size()

	rightNode := right(limits.Shrink(geometry.Size{Width: ls.Width + spacing}))
	rs := rightNode.Size()

	leftY, rightY := 0.0, 0.0
	if ls.Height > rs.Height {
		rightY = (ls.Height - rs.Height) / 2
	} else {
		leftY = (rs.Height - ls.Height) / 2
	}

	return NodeWithChildren(
		geometry.Size{Width: ls.Width + spacing + rs.Width, Height: max(ls.Height, rs.Height)},
		[]Node{
			leftNode.MoveTo(geometry.Point{Y: leftY}),
			rightNode.MoveTo(geometry.Point{X: ls.Width + spacing, Y: rightY}),
		},
	)
}
