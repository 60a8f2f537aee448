// Package geometry provides the 2D value types shared by layout, rendering
// and event dispatch.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Infinity is used for unbounded limits.
var Infinity = math.Inf(1)

// Point is a position in logical pixels.
type Point struct {
	X float64
	Y float64
}

// Origin is the zero point.
var Origin = Point{}

// Add returns the point translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Vector {
	return Vector{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Vector is a 2D displacement.
type Vector struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

// Neg returns the opposite vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Size is a width and height in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Zero is the empty size.
var Zero = Size{}

// Unbounded is an infinitely large size.
var Unbounded = Size{Width: Infinity, Height: Infinity}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(other Size) Size {
	return Size{Width: math.Min(s.Width, other.Width), Height: math.Min(s.Height, other.Height)}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: math.Max(s.Width, other.Width), Height: math.Max(s.Height, other.Height)}
}

// Expand grows the size by the given padding.
func (s Size) Expand(p Padding) Size {
	return Size{Width: s.Width + p.Horizontal(), Height: s.Height + p.Vertical()}
}

// Shrink reduces the size by the given amount, never going below zero.
func (s Size) Shrink(other Size) Size {
	return Size{
		Width:  math.Max(s.Width-other.Width, 0),
		Height: math.Max(s.Height-other.Height, 0),
	}
}

// Rectangle is an axis-aligned box with its origin at the top-left corner.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectangleFrom creates a rectangle from a position and a size.
func RectangleFrom(p Point, s Size) Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// WithSize creates a rectangle at the origin.
func WithSize(s Size) Rectangle {
	return Rectangle{Width: s.Width, Height: s.Height}
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Contains reports whether p lies inside the rectangle. The right and
// bottom edges are inclusive, matching pointer hit-testing.
func (r Rectangle) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.Width && r.Y <= p.Y && p.Y <= r.Y+r.Height
}

// Intersect returns the intersection of two rectangles and whether they overlap.
func (r Rectangle) Intersect(other Rectangle) (Rectangle, bool) {
	left := math.Max(r.X, other.X)
	top := math.Max(r.Y, other.Y)
	right := math.Min(r.X+r.Width, other.X+other.Width)
	bottom := math.Min(r.Y+r.Height, other.Y+other.Height)
	if left >= right || top >= bottom {
		return Rectangle{}, false
	}
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Intersects reports whether two rectangles overlap.
func (r Rectangle) Intersects(other Rectangle) bool {
	_, ok := r.Intersect(other)
	return ok
}

// Union returns the smallest rectangle containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	left := math.Min(r.X, other.X)
	top := math.Min(r.Y, other.Y)
	right := math.Max(r.X+r.Width, other.X+other.Width)
	bottom := math.Max(r.Y+r.Height, other.Y+other.Height)
	return Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Translate returns a new rectangle offset by v.
func (r Rectangle) Translate(v Vector) Rectangle {
	return Rectangle{X: r.X + v.X, Y: r.Y + v.Y, Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ApproxEqual reports whether two rectangles match within a small tolerance.
func (r Rectangle) ApproxEqual(other Rectangle) bool {
	return floatEqual(r.X, other.X) && floatEqual(r.Y, other.Y) &&
		floatEqual(r.Width, other.Width) && floatEqual(r.Height, other.Height)
}

// Padding is the space around the edges of a box.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// All returns a padding with the same value on every side.
func All(amount float64) Padding {
	return Padding{Top: amount, Right: amount, Bottom: amount, Left: amount}
}

// Symmetric returns a padding with shared vertical and horizontal values.
func Symmetric(vertical, horizontal float64) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns the total horizontal padding.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the total vertical padding.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Size returns the total padding as a size.
func (p Padding) Size() Size {
	return Size{Width: p.Horizontal(), Height: p.Vertical()}
}

// Fit shrinks the padding so that content of the given size still fits
// within outer.
func (p Padding) Fit(inner, outer Size) Padding {
	availableX := math.Max(outer.Width-inner.Width, 0)
	availableY := math.Max(outer.Height-inner.Height, 0)
	return Padding{
		Top:    math.Min(p.Top, availableY*0.5),
		Right:  math.Min(p.Right, availableX*0.5),
		Bottom: math.Min(p.Bottom, availableY*0.5),
		Left:   math.Min(p.Left, availableX*0.5),
	}
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
