// Package layout computes the size and position of widgets.
//
// Widgets lay themselves out under [Limits] handed down by their parent and
// return a [Node]. Containers lay out their children first and then position
// them; [ResolveFlex] implements the row and column packing algorithm.
// A [Layout] views a Node with an absolute position and is recomputed on
// every traversal.
package layout

import "github.com/go-drift/lattice/pkg/geometry"

// Layout is a Node viewed at an absolute position.
type Layout struct {
	position geometry.Point
	node     *Node
}

// New views node at its own position.
func New(node *Node) Layout {
	return WithOffset(geometry.Vector{}, node)
}

// WithOffset views node translated by offset.
func WithOffset(offset geometry.Vector, node *Node) Layout {
	return Layout{
		position: node.bounds.Position().Add(offset),
		node:     node,
	}
}

// Position returns the absolute position.
func (l Layout) Position() geometry.Point {
	return l.position
}

// Bounds returns the absolute bounds.
func (l Layout) Bounds() geometry.Rectangle {
	return geometry.RectangleFrom(l.position, l.node.Size())
}

// Node returns the viewed node.
func (l Layout) Node() *Node {
	return l.node
}

// ChildCount returns the number of child layouts.
func (l Layout) ChildCount() int {
	return len(l.node.children)
}

// Child returns the layout of the i-th child.
func (l Layout) Child(i int) Layout {
	return WithOffset(geometry.Vector{X: l.position.X, Y: l.position.Y}, &l.node.children[i])
}

// Children returns the layouts of all children, in order.
func (l Layout) Children() []Layout {
	out := make([]Layout, len(l.node.children))
	for i := range l.node.children {
		out[i] = l.Child(i)
	}
	return out
}

// Translate returns the layout moved by v.
func (l Layout) Translate(v geometry.Vector) Layout {
	l.position = l.position.Add(v)
	return l
}
