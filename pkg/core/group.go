package core

import (
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
)

// Group shows several overlays at once. Events reach every child and their
// statuses are merged.
type Group[M any] struct {
	children []*OverlayElement[M]
}

// NewGroup returns a group of children.
func NewGroup[M any](children ...*OverlayElement[M]) *Group[M] {
	return &Group[M]{children: children}
}

// Push adds an overlay to the group.
func (g *Group[M]) Push(child *OverlayElement[M]) *Group[M] {
	g.children = append(g.children, child)
	return g
}

// Len returns the number of overlays in the group.
func (g *Group[M]) Len() int {
	return len(g.children)
}

// Element wraps the group as an overlay element.
func (g *Group[M]) Element() *OverlayElement[M] {
	return NewOverlayElement[M](g)
}

func (g *Group[M]) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	nodes := make([]layout.Node, len(g.children))
	for i, child := range g.children {
		nodes[i] = child.Layout(r, bounds)
	}
	return layout.NodeWithChildren(bounds, nodes)
}

func (g *Group[M]) Draw(r renderer.Renderer, theme any, style renderer.Style, l layout.Layout, cursor event.Cursor) {
	for i, child := range g.children {
		child.Draw(r, theme, style, l.Child(i), cursor)
	}
}

func (g *Group[M]) OnEvent(ev event.Event, l layout.Layout, cursor event.Cursor, r renderer.Renderer,
	clipboard Clipboard, shell *Shell[M]) event.Status {
	status := event.Ignored
	for i, child := range g.children {
		status = status.Merge(child.OnEvent(ev, l.Child(i), cursor, r, clipboard, shell))
	}
	return status
}

func (g *Group[M]) Operate(l layout.Layout, r renderer.Renderer, op operation.Visitor) {
	op.Container(nil, l.Bounds(), func(op operation.Visitor) {
		for i, child := range g.children {
			child.Operate(l.Child(i), r, op)
		}
	})
}

func (g *Group[M]) MouseInteraction(l layout.Layout, cursor event.Cursor, viewport geometry.Rectangle, r renderer.Renderer) event.Interaction {
	interaction := event.InteractionNone
	for i, child := range g.children {
		interaction = interaction.Max(child.MouseInteraction(l.Child(i), cursor, viewport, r))
	}
	return interaction
}

func (g *Group[M]) IsOver(l layout.Layout, r renderer.Renderer, p geometry.Point) bool {
	for i, child := range g.children {
		if child.IsOver(l.Child(i), r, p) {
			return true
		}
	}
	return false
}

func (g *Group[M]) Overlay(l layout.Layout, r renderer.Renderer) *OverlayElement[M] {
	var nested []*OverlayElement[M]
	for i, child := range g.children {
		if o := child.Overlay(l.Child(i), r); o != nil {
			nested = append(nested, o)
		}
	}
	if len(nested) == 0 {
		return nil
	}
	return NewGroup(nested...).Element()
}
