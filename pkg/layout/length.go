package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type lengthKind uint8

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthFixed
)

// Length is a sizing policy for one axis of a widget.
//
// The zero value is Shrink.
type Length struct {
	kind  lengthKind
	value float64
}

var (
	// Shrink takes the minimum space needed by the content.
	Shrink = Length{}
	// Fill takes one part of the remaining space.
	Fill = Length{kind: lengthFill, value: 1}
)

// FillPortion takes n parts of the remaining space relative to siblings.
// A portion of zero behaves like Shrink.
func FillPortion(n uint16) Length {
	if n == 0 {
		return Shrink
	}
	return Length{kind: lengthFill, value: float64(n)}
}

// Fixed takes exactly px logical pixels. Negative and NaN amounts become 0.
func Fixed(px float64) Length {
	if math.IsNaN(px) {
		px = 0
	}
	return Length{kind: lengthFixed, value: max(px, 0)}
}

// FillFactor returns the share weight of the length, or 0 when it does not fill.
func (l Length) FillFactor() uint16 {
	if l.kind != lengthFill {
		return 0
	}
	return uint16(l.value)
}

// IsFill reports whether the length consumes remaining space.
func (l Length) IsFill() bool {
	return l.kind == lengthFill
}

// IsShrink reports whether the length sizes to content.
func (l Length) IsShrink() bool {
	return l.kind == lengthShrink
}

// FixedAmount returns the pixel amount and true for Fixed lengths.
func (l Length) FixedAmount() (float64, bool) {
	return l.value, l.kind == lengthFixed
}

// Enclose returns the length a container with policy l should use when it
// holds a child with policy child. A shrinking container becomes filling as
// soon as one of its children fills.
func (l Length) Enclose(child Length) Length {
	if l.kind == lengthShrink && child.kind == lengthFill {
		return child
	}
	return l
}

func (l Length) String() string {
	switch l.kind {
	case lengthFill:
		if l.value == 1 {
			return "fill"
		}
		return fmt.Sprintf("fill(%d)", uint16(l.value))
	case lengthFixed:
		return strconv.FormatFloat(l.value, 'f', -1, 64)
	default:
		return "shrink"
	}
}

// ParseLength parses the textual form produced by String: "shrink", "fill",
// "fill(n)" or a pixel amount.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "shrink":
		return Shrink, nil
	case "fill":
		return Fill, nil
	}
	if inner, ok := strings.CutPrefix(s, "fill("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return Shrink, fmt.Errorf("invalid length %q: missing ')'", s)
		}
		n, err := strconv.ParseUint(inner, 10, 16)
		if err != nil {
			return Shrink, fmt.Errorf("invalid fill portion %q: %w", s, err)
		}
		return FillPortion(uint16(n)), nil
	}
	px, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return Shrink, fmt.Errorf("invalid length %q: %w", s, err)
	}
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return Shrink, fmt.Errorf("invalid length %q: not finite", s)
	}
	if px < 0 {
		return Shrink, fmt.Errorf("invalid length %q: negative", s)
	}
	return Fixed(px), nil
}
