package layout

import "github.com/go-drift/lattice/pkg/geometry"

// Alignment positions content within the space available to it.
type Alignment uint8

const (
	Start Alignment = iota
	Center
	End
)

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return "start"
	}
}

// offset returns how far content of extent size moves inside space.
func (a Alignment) offset(size, space float64) float64 {
	switch a {
	case Center:
		return (space - size) / 2
	case End:
		return space - size
	default:
		return 0
	}
}

// Node is the resolved size of a widget and the positioned nodes of its
// children. Child positions are relative to the parent.
type Node struct {
	bounds   geometry.Rectangle
	children []Node
}

// NewNode returns a leaf node of the given size at the origin.
func NewNode(size geometry.Size) Node {
	return Node{bounds: geometry.WithSize(size)}
}

// NodeWithChildren returns a node of the given size owning children.
func NodeWithChildren(size geometry.Size, children []Node) Node {
	return Node{bounds: geometry.WithSize(size), children: children}
}

// Size returns the resolved size.
func (n Node) Size() geometry.Size {
	return n.bounds.Size()
}

// Bounds returns the size and the position relative to the parent.
func (n Node) Bounds() geometry.Rectangle {
	return n.bounds
}

// Children returns the child nodes.
func (n Node) Children() []Node {
	return n.children
}

// MoveTo returns n positioned at p.
func (n Node) MoveTo(p geometry.Point) Node {
	n.bounds.X, n.bounds.Y = p.X, p.Y
	return n
}

// Translate returns n moved by v.
func (n Node) Translate(v geometry.Vector) Node {
	n.bounds = n.bounds.Translate(v)
	return n
}

// Align returns n shifted within space according to the horizontal and
// vertical alignment. Only the position changes.
func (n Node) Align(horizontal, vertical Alignment, space geometry.Size) Node {
	n.bounds.X += horizontal.offset(n.bounds.Width, space.Width)
	n.bounds.Y += vertical.offset(n.bounds.Height, space.Height)
	return n
}

// WithSize returns n resized, keeping its position and children.
func (n Node) WithSize(size geometry.Size) Node {
	n.bounds.Width, n.bounds.Height = size.Width, size.Height
	return n
}
