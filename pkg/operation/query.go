package operation

import (
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
)

// Kind is the way a widget described itself to a visitor.
type Kind uint8

const (
	KindContainer Kind = iota
	KindFocusable
	KindScrollable
	KindTextInput
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindFocusable:
		return "focusable"
	case KindScrollable:
		return "scrollable"
	case KindTextInput:
		return "text_input"
	case KindCustom:
		return "custom"
	default:
		return "container"
	}
}

// Match describes one visited widget.
type Match struct {
	// ID is nil for anonymous widgets.
	ID     *id.ID
	Bounds geometry.Rectangle
	Kind   Kind
	// State is the Focusable, Scrollable, TextInput or custom value the
	// widget exposed. It is nil for containers.
	State any
	// Depth is the container nesting level of the widget, starting at 0.
	Depth int
}

// FindByID returns the first widget identified by target, in traversal
// order. The outcome is None when no widget matches.
func FindByID(target id.ID) Operation[Match] {
	return &finder{target: target}
}

type finder struct {
	target id.ID
	depth  int
	found  *Match
}

func (f *finder) visit(wid *id.ID, bounds geometry.Rectangle, kind Kind, state any) {
	if f.found != nil || !id.Matches(wid, f.target) {
		return
	}
	f.found = &Match{ID: clone(wid), Bounds: bounds, Kind: kind, State: state, Depth: f.depth}
}

func (f *finder) Container(wid *id.ID, bounds geometry.Rectangle, recurse func(Visitor)) {
	f.visit(wid, bounds, KindContainer, nil)
	if f.found != nil {
		return
	}
	f.depth++
	recurse(f)
	f.depth--
}

func (f *finder) Focusable(wid *id.ID, bounds geometry.Rectangle, state Focusable) {
	f.visit(wid, bounds, KindFocusable, state)
}

func (f *finder) Scrollable(wid *id.ID, bounds, _ geometry.Rectangle, _ geometry.Vector, state Scrollable) {
	f.visit(wid, bounds, KindScrollable, state)
}

func (f *finder) TextInput(wid *id.ID, bounds geometry.Rectangle, state TextInput) {
	f.visit(wid, bounds, KindTextInput, state)
}

func (f *finder) Custom(wid *id.ID, bounds geometry.Rectangle, state any) {
	f.visit(wid, bounds, KindCustom, state)
}

func (f *finder) Finish() Outcome[Match] {
	if f.found == nil {
		return None[Match]()
	}
	return Some(*f.found)
}

// CollectBounds returns every visited widget with its bounds, in traversal
// order. Widgets may appear twice when they describe themselves both as a
// container and as a leaf.
func CollectBounds() Operation[[]Match] {
	return &collector{}
}

type collector struct {
	depth   int
	matches []Match
}

func (c *collector) add(wid *id.ID, bounds geometry.Rectangle, kind Kind, state any) {
	c.matches = append(c.matches, Match{ID: clone(wid), Bounds: bounds, Kind: kind, State: state, Depth: c.depth})
}

func (c *collector) Container(wid *id.ID, bounds geometry.Rectangle, recurse func(Visitor)) {
	c.add(wid, bounds, KindContainer, nil)
	c.depth++
	recurse(c)
	c.depth--
}

func (c *collector) Focusable(wid *id.ID, bounds geometry.Rectangle, state Focusable) {
	c.add(wid, bounds, KindFocusable, state)
}

func (c *collector) Scrollable(wid *id.ID, bounds, _ geometry.Rectangle, _ geometry.Vector, state Scrollable) {
	c.add(wid, bounds, KindScrollable, state)
}

func (c *collector) TextInput(wid *id.ID, bounds geometry.Rectangle, state TextInput) {
	c.add(wid, bounds, KindTextInput, state)
}

func (c *collector) Custom(wid *id.ID, bounds geometry.Rectangle, state any) {
	c.add(wid, bounds, KindCustom, state)
}

func (c *collector) Finish() Outcome[[]Match] {
	return Some(c.matches)
}

func clone(wid *id.ID) *id.ID {
	if wid == nil {
		return nil
	}
	out := *wid
	return &out
}
