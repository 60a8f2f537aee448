package widgets_test

import (
	"testing"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/widgets"
)

func keyedInputs(keys *[]string) func() core.Element[string] {
	return func() core.Element[string] {
		column := widgets.KeyedColumnOf[string, string]().WithSpacing(4)
		column.Width = layout.Fill
		for _, key := range *keys {
			column = column.Push(key, widgets.TextInputOf[string](key, "").WithID(id.New(key)).Element())
		}
		return column.Element()
	}
}

func TestKeyedColumn_StateFollowsKeys(t *testing.T) {
	tests := []struct {
		name string
		next []string
	}{
		{"reorder", []string{"c", "a", "b"}},
		{"remove before", []string{"b", "c"}},
		{"insert before", []string{"z", "a", "b", "c"}},
		{"reverse", []string{"c", "b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := []string{"a", "b", "c"}
			tester := mount(t, geometry.Size{Width: 200, Height: 200}, keyedInputs(&keys), nil)
			tester.Focus(id.New("b"))

			keys = tt.next
			tester.Pump()

			focused, ok := tester.Focused()
			if !ok || focused != id.New("b") {
				t.Errorf("expected b focused, got %v (%v)", focused, ok)
			}
		})
	}
}

func TestKeyedColumn_RemovedStateIsDropped(t *testing.T) {
	keys := []string{"a", "b"}
	tester := mount(t, geometry.Size{Width: 200, Height: 200}, keyedInputs(&keys), nil)
	tester.Focus(id.New("b"))

	keys = []string{"a"}
	tester.Pump()
	keys = []string{"a", "b"}
	tester.Pump()

	if focused, ok := tester.Focused(); ok {
		t.Errorf("expected re-added b to start unfocused, got %v", focused)
	}
	if got := tester.UI().Tree().Count(); got != 3 {
		t.Errorf("expected 3 tree nodes, got %d", got)
	}
}

func TestKeyedColumn_Layout(t *testing.T) {
	keys := []string{"a", "b"}
	tester := mount(t, geometry.Size{Width: 200, Height: 200}, keyedInputs(&keys), nil)

	l := tester.UI().Layout()
	if got, want := l.Child(1).Bounds(), rect(0, 30, 200, 26); got != want {
		t.Errorf("second child: got %v, want %v", got, want)
	}
}

func TestKeyedColumn_UnkeyedChildrenMatchByPosition(t *testing.T) {
	view := func() core.Element[string] {
		return widgets.KeyedColumn[string, string]{
			Keys: []string{"a"},
			ChildrenWidgets: []core.Element[string]{
				widgets.TextInputOf[string]("a", "").WithID(id.New("a")).Element(),
				widgets.TextInputOf[string]("b", "").WithID(id.New("b")).Element(),
			},
		}.Element()
	}
	tester := mount(t, geometry.Size{Width: 200, Height: 200}, view, nil)
	tester.Focus(id.New("b"))

	tester.Pump()

	if focused, ok := tester.Focused(); !ok || focused != id.New("b") {
		t.Errorf("expected b focused, got %v (%v)", focused, ok)
	}
}
