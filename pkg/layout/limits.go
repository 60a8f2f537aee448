package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/lattice/pkg/geometry"
)

// Limits are the minimum and maximum sizes a widget may resolve to.
//
// Every narrowing method returns limits contained in the receiver, so limits
// threaded down the tree only ever shrink.
type Limits struct {
	min geometry.Size
	max geometry.Size
}

// NoLimits places no constraint on either axis.
var NoLimits = Limits{max: geometry.Unbounded}

// NewLimits creates limits from a minimum and maximum size. The minimum is
// clamped so it never exceeds the maximum.
func NewLimits(min, max geometry.Size) Limits {
	return Limits{min: min.Min(max), max: max}
}

// Tight returns limits allowing exactly size.
func Tight(size geometry.Size) Limits {
	return Limits{min: size, max: size}
}

// Min returns the minimum size.
func (l Limits) Min() geometry.Size { return l.min }

// Max returns the maximum size.
func (l Limits) Max() geometry.Size { return l.max }

// Width applies a width policy. Fixed lengths pin the width to the amount
// clamped into the current range; other policies leave the limits unchanged.
func (l Limits) Width(width Length) Limits {
	if px, ok := width.FixedAmount(); ok {
		w := clamp(px, l.min.Width, l.max.Width)
		l.min.Width, l.max.Width = w, w
	}
	return l
}

// Height applies a height policy. See Width.
func (l Limits) Height(height Length) Limits {
	if px, ok := height.FixedAmount(); ok {
		h := clamp(px, l.min.Height, l.max.Height)
		l.min.Height, l.max.Height = h, h
	}
	return l
}

// MinWidth raises the minimum width, never above the maximum.
func (l Limits) MinWidth(w float64) Limits {
	l.min.Width = math.Min(math.Max(l.min.Width, w), l.max.Width)
	return l
}

// MaxWidth lowers the maximum width, never below the minimum.
func (l Limits) MaxWidth(w float64) Limits {
	l.max.Width = math.Max(math.Min(l.max.Width, w), l.min.Width)
	return l
}

// MinHeight raises the minimum height, never above the maximum.
func (l Limits) MinHeight(h float64) Limits {
	l.min.Height = math.Min(math.Max(l.min.Height, h), l.max.Height)
	return l
}

// MaxHeight lowers the maximum height, never below the minimum.
func (l Limits) MaxHeight(h float64) Limits {
	l.max.Height = math.Max(math.Min(l.max.Height, h), l.min.Height)
	return l
}

// Shrink removes size from both bounds. Bounds never go below zero.
func (l Limits) Shrink(size geometry.Size) Limits {
	return Limits{
		min: l.min.Shrink(size),
		max: l.max.Shrink(size),
	}
}

// Pad removes the space taken by padding.
func (l Limits) Pad(p geometry.Padding) Limits {
	return l.Shrink(p.Size())
}

// Loose drops the minimum size.
func (l Limits) Loose() Limits {
	return Limits{max: l.max}
}

// Clamp fits an intrinsic size into [min, max].
func (l Limits) Clamp(intrinsic geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  clamp(intrinsic.Width, l.min.Width, l.max.Width),
		Height: clamp(intrinsic.Height, l.min.Height, l.max.Height),
	}
}

// Resolve computes the final size of a widget with the given policies and
// intrinsic content size. Fill takes the maximum when it is bounded and falls
// back to the content size otherwise, so the result is always finite for
// finite content.
func (l Limits) Resolve(width, height Length, intrinsic geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  resolveAxis(width, l.min.Width, l.max.Width, intrinsic.Width),
		Height: resolveAxis(height, l.min.Height, l.max.Height, intrinsic.Height),
	}
}

func (l Limits) String() string {
	return fmt.Sprintf("Limits(%gx%g..%gx%g)", l.min.Width, l.min.Height, l.max.Width, l.max.Height)
}

func resolveAxis(length Length, lo, hi, intrinsic float64) float64 {
	switch {
	case length.IsFill():
		if math.IsInf(hi, 1) {
			return clamp(intrinsic, lo, hi)
		}
		return hi
	default:
		if px, ok := length.FixedAmount(); ok {
			return clamp(px, lo, hi)
		}
		return clamp(intrinsic, lo, hi)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
