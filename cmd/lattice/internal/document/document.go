// Package document describes widget trees as YAML so the CLI can lay them
// out without compiling an application.
//
//	width: 320
//	height: 240
//	root:
//	  kind: column
//	  padding: [10]
//	  spacing: 8
//	  children:
//	    - kind: text
//	      text: Sign in
//	    - kind: text_input
//	      id: email
//	      text: Email
//	    - kind: button
//	      id: submit
//	      text: Continue
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/renderer"
	"github.com/go-drift/lattice/pkg/widgets"
)

// Message is published by interactive nodes. Buttons publish their ID.
type Message = string

// Default viewport used when a document does not set one.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Document is a viewport and the widget tree to lay out in it.
type Document struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Root   Node    `yaml:"root"`
}

// Node is one widget. Which fields apply depends on Kind.
type Node struct {
	Kind string `yaml:"kind"`
	ID   string `yaml:"id,omitempty"`
	// Text is the content of text nodes, the label of buttons and the
	// placeholder of text inputs and pick lists.
	Text  string `yaml:"text,omitempty"`
	Value string `yaml:"value,omitempty"`
	// Options lists the choices of a pick list.
	Options []string `yaml:"options,omitempty"`
	// Width and Height take the forms accepted by layout.ParseLength.
	Width  string `yaml:"width,omitempty"`
	Height string `yaml:"height,omitempty"`
	// Padding holds one value for every side, two for vertical and
	// horizontal, or four in top, right, bottom, left order.
	Padding    []float64 `yaml:"padding,omitempty"`
	Spacing    float64   `yaml:"spacing,omitempty"`
	Align      string    `yaml:"align,omitempty"`
	Background string    `yaml:"background,omitempty"`
	// Direction of a scrollable: vertical, horizontal or both.
	Direction string `yaml:"direction,omitempty"`
	Children  []Node `yaml:"children,omitempty"`
}

// Node kinds.
const (
	KindColumn      = "column"
	KindRow         = "row"
	KindKeyedColumn = "keyed_column"
	KindContainer   = "container"
	KindScrollable  = "scrollable"
	KindText        = "text"
	KindSpace       = "space"
	KindButton      = "button"
	KindTextInput   = "text_input"
	KindPickList    = "pick_list"
)

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(data)
}

// Parse decodes a document. Unknown keys are rejected and a missing
// viewport falls back to DefaultWidth by DefaultHeight.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if !validAmount(doc.Width) || !validAmount(doc.Height) {
		return nil, fmt.Errorf("invalid viewport %vx%v", doc.Width, doc.Height)
	}
	if doc.Width == 0 {
		doc.Width = DefaultWidth
	}
	if doc.Height == 0 {
		doc.Height = DefaultHeight
	}
	if doc.Root.Kind == "" {
		return nil, fmt.Errorf("document has no root")
	}
	return &doc, nil
}

// Size returns the viewport.
func (d *Document) Size() geometry.Size {
	return geometry.Size{Width: d.Width, Height: d.Height}
}

// Element builds the widget tree described by n.
func (n Node) Element() (core.Element[Message], error) {
	width, err := layout.ParseLength(n.Width)
	if err != nil {
		return core.Element[Message]{}, n.errorf("width: %w", err)
	}
	height, err := layout.ParseLength(n.Height)
	if err != nil {
		return core.Element[Message]{}, n.errorf("height: %w", err)
	}
	padding, err := n.padding()
	if err != nil {
		return core.Element[Message]{}, err
	}
	if !validAmount(n.Spacing) {
		return core.Element[Message]{}, n.errorf("invalid spacing %v", n.Spacing)
	}
	align, err := n.alignment()
	if err != nil {
		return core.Element[Message]{}, err
	}
	wid := n.id()

	if !n.hasChildren() && len(n.Children) > 0 {
		return core.Element[Message]{}, n.errorf("%s cannot have children", n.Kind)
	}
	children, err := n.children()
	if err != nil {
		return core.Element[Message]{}, err
	}

	switch n.Kind {
	case KindColumn:
		return widgets.Column[Message]{
			ChildrenWidgets: children, Width: width, Height: height,
			Padding: padding, Spacing: n.Spacing, Align: align, ID: wid,
		}.Element(), nil

	case KindRow:
		return widgets.Row[Message]{
			ChildrenWidgets: children, Width: width, Height: height,
			Padding: padding, Spacing: n.Spacing, Align: align, ID: wid,
		}.Element(), nil

	case KindKeyedColumn:
		keyed := widgets.KeyedColumn[Message, string]{
			Width: width, Height: height, Padding: padding,
			Spacing: n.Spacing, Align: align, ID: wid,
		}
		for i, child := range children {
			key := n.Children[i].ID
			if key == "" {
				return core.Element[Message]{}, n.errorf("child %d needs an id to be keyed", i)
			}
			keyed = keyed.Push(key, child)
		}
		return keyed.Element(), nil

	case KindContainer, KindScrollable:
		if len(children) != 1 {
			return core.Element[Message]{}, n.errorf("%s needs exactly one child, got %d", n.Kind, len(children))
		}
		if n.Kind == KindScrollable {
			direction, err := n.direction()
			if err != nil {
				return core.Element[Message]{}, err
			}
			return widgets.Scrollable[Message]{
				Content: children[0], Width: width, Height: height, Direction: direction, ID: wid,
			}.Element(), nil
		}
		background, err := n.background()
		if err != nil {
			return core.Element[Message]{}, err
		}
		return widgets.Container[Message]{
			Content: children[0], Width: width, Height: height, Padding: padding,
			AlignX: align, AlignY: align, Background: background, ID: wid,
		}.Element(), nil

	case KindText:
		return widgets.TextOf[Message](n.Text).WithWidth(width).Element(), nil

	case KindSpace:
		return widgets.Space[Message]{Width: width, Height: height}.Element(), nil

	case KindButton:
		button := widgets.Button[Message]{
			Content: widgets.TextOf[Message](n.Text).Element(),
			Width:   width, Height: height, Padding: padding, ID: wid,
		}
		if n.ID != "" {
			button = button.WithOnPress(n.ID)
		}
		return button.Element(), nil

	case KindTextInput:
		input := widgets.TextInputOf[Message](n.Text, n.Value)
		if n.Width != "" {
			input.Width = width
		}
		input.Padding = padding
		input.ID = wid
		return input.Element(), nil

	case KindPickList:
		var selected *string
		for i := range n.Options {
			if n.Options[i] == n.Value {
				selected = &n.Options[i]
			}
		}
		list := widgets.PickListOf(n.Options, selected, func(s string) Message { return s }).
			WithPlaceholder(n.Text)
		list.Width = width
		list.Padding = padding
		list.ID = wid
		return list.Element(), nil
	}
	return core.Element[Message]{}, n.errorf("unknown kind %q", n.Kind)
}

func (n Node) hasChildren() bool {
	switch n.Kind {
	case KindColumn, KindRow, KindKeyedColumn, KindContainer, KindScrollable:
		return true
	}
	return false
}

func (n Node) children() ([]core.Element[Message], error) {
	out := make([]core.Element[Message], 0, len(n.Children))
	for _, child := range n.Children {
		e, err := child.Element()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (n Node) id() *id.ID {
	if n.ID == "" {
		return nil
	}
	wid := id.New(n.ID)
	return &wid
}

func (n Node) padding() (geometry.Padding, error) {
	p := n.Padding
	for _, v := range p {
		if !validAmount(v) {
			return geometry.Padding{}, n.errorf("invalid padding %v", v)
		}
	}
	switch len(p) {
	case 0:
		return geometry.Padding{}, nil
	case 1:
		return geometry.All(p[0]), nil
	case 2:
		return geometry.Symmetric(p[0], p[1]), nil
	case 4:
		return geometry.Padding{Top: p[0], Right: p[1], Bottom: p[2], Left: p[3]}, nil
	}
	return geometry.Padding{}, n.errorf("padding needs 1, 2 or 4 values, got %d", len(p))
}

// validAmount reports whether v is usable as a size: finite and not negative.
func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func (n Node) alignment() (layout.Alignment, error) {
	switch n.Align {
	case "", "start":
		return layout.Start, nil
	case "center":
		return layout.Center, nil
	case "end":
		return layout.End, nil
	}
	return layout.Start, n.errorf("invalid align %q", n.Align)
}

func (n Node) direction() (widgets.Direction, error) {
	switch n.Direction {
	case "", "vertical":
		return widgets.ScrollVertical, nil
	case "horizontal":
		return widgets.ScrollHorizontal, nil
	case "both":
		return widgets.ScrollBoth, nil
	}
	return widgets.ScrollVertical, n.errorf("invalid direction %q", n.Direction)
}

func (n Node) background() (renderer.Color, error) {
	if n.Background == "" {
		return 0, nil
	}
	c, err := renderer.ParseHex(n.Background)
	if err != nil {
		return 0, n.errorf("background: %w", err)
	}
	return c, nil
}

func (n Node) errorf(format string, args ...any) error {
	name := n.Kind
	if n.ID != "" {
		name += " " + n.ID
	}
	return fmt.Errorf("%s: %w", name, fmt.Errorf(format, args...))
}
