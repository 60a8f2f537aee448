package document

import (
	"math"
	"strings"
	"testing"

	"github.com/go-drift/lattice/pkg/engine"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/renderer"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    geometry.Size
		wantErr string
	}{
		{"default viewport", "root: {kind: text, text: hi}", geometry.Size{Width: DefaultWidth, Height: DefaultHeight}, ""},
		{"viewport", "width: 320\nheight: 240\nroot: {kind: space}", geometry.Size{Width: 320, Height: 240}, ""},
		{"empty", "", geometry.Size{}, "empty document"},
		{"no root", "width: 10", geometry.Size{}, "no root"},
		{"unknown key", "root: {kind: text, colour: red}", geometry.Size{}, "field colour not found"},
		{"negative", "width: -1\nroot: {kind: space}", geometry.Size{}, "invalid viewport"},
		{"infinite", "height: .inf\nroot: {kind: space}", geometry.Size{}, "invalid viewport"},
		{"not a number", "width: .nan\nroot: {kind: space}", geometry.Size{}, "invalid viewport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("got %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if doc.Size() != tt.want {
				t.Errorf("got %v, want %v", doc.Size(), tt.want)
			}
		})
	}
}

func TestElementErrors(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"unknown kind", Node{Kind: "slider"}, `unknown kind "slider"`},
		{"bad width", Node{Kind: KindColumn, Width: "wide"}, "width: invalid length"},
		{"bad padding", Node{Kind: KindColumn, Padding: []float64{1, 2, 3}}, "padding needs 1, 2 or 4 values"},
		{"negative padding", Node{Kind: KindColumn, Padding: []float64{4, -2}}, "invalid padding -2"},
		{"infinite padding", Node{Kind: KindContainer, Padding: []float64{math.Inf(1)}, Children: []Node{{Kind: KindSpace}}}, "invalid padding +Inf"},
		{"negative spacing", Node{Kind: KindRow, Spacing: -8}, "invalid spacing -8"},
		{"nan spacing", Node{Kind: KindColumn, Spacing: math.NaN()}, "invalid spacing NaN"},
		{"non-finite width", Node{Kind: KindSpace, Width: "inf"}, "width: invalid length"},
		{"bad align", Node{Kind: KindRow, Align: "middle"}, `invalid align "middle"`},
		{"leaf with children", Node{Kind: KindText, Children: []Node{{Kind: KindSpace}}}, "text cannot have children"},
		{"empty container", Node{Kind: KindContainer, ID: "card"}, "container card: container needs exactly one child"},
		{"bad background", Node{Kind: KindContainer, Background: "red", Children: []Node{{Kind: KindSpace}}}, "background: invalid color"},
		{"bad direction", Node{Kind: KindScrollable, Direction: "sideways", Children: []Node{{Kind: KindSpace}}}, `invalid direction "sideways"`},
		{"unkeyed child", Node{Kind: KindKeyedColumn, Children: []Node{{Kind: KindSpace}}}, "child 0 needs an id"},
		{"nested error", Node{Kind: KindColumn, Children: []Node{{Kind: KindRow, Height: "fill("}}}, "missing ')'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.node.Element()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestTreeMatchesLayout(t *testing.T) {
	doc, err := Parse([]byte(`width: 200
height: 100
root:
  kind: row
  width: fill
  spacing: 10
  children:
    - kind: container
      id: left
      width: fill
      padding: [4]
      background: "#336699"
      children:
        - kind: text
          text: abc
    - kind: pick_list
      id: color
      text: Color
      value: red
      options: [red, green]
    - kind: keyed_column
      children:
        - kind: text_input
          id: a
          width: "60"
`))
	if err != nil {
		t.Fatal(err)
	}
	root, err := doc.Root.Element()
	if err != nil {
		t.Fatal(err)
	}

	r := renderer.NewRecorder(renderer.NewCellMeasurer(8, 16))
	ui := engine.Build(root, doc.Size(), engine.NewCache(), r)
	got := Tree(doc.Root, ui.Layout(), PlainStyles()).String()

	for _, want := range []string{
		"row (0, 0) 200x26",
		"container #left (0, 0) 44x24",
		`text "abc" (4, 4) 24x16`,
		"pick_list #color (54, 0) 76x26",
		"keyed_column (140, 0) 60x26",
		"text_input #a (140, 0) 60x26",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
