package widgets_test

import (
	"slices"
	"testing"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/operation"
	lattest "github.com/go-drift/lattice/pkg/testing"
	"github.com/go-drift/lattice/pkg/widgets"
)

var (
	pickID = id.New("color")
	colors = []string{"red", "green", "blue"}
)

type picker struct {
	selected *string
	options  []string
	offset   float64
	picked   []string
}

func (p *picker) view() core.Element[string] {
	list := widgets.PickListOf(p.options, p.selected, func(s string) string { return s }).
		WithPlaceholder("Pick one").
		WithID(pickID)
	return widgets.ColumnOf(widgets.VSpace[string](p.offset), list.Element()).Element()
}

func (p *picker) update(s string) {
	p.picked = append(p.picked, s)
	p.selected = &s
}

func mountPicker(t *testing.T, p *picker) *lattest.Tester[string] {
	t.Helper()
	if p.options == nil {
		p.options = colors
	}
	return mount(t, geometry.Size{Width: 200, Height: 200}, p.view, p.update)
}

func isOpen(tester *lattest.Tester[string]) bool {
	return widgets.IsOpen(tester.FindAll(lattest.ByID(pickID)).First().State)
}

func menuItem(tester *lattest.Tester[string], label string) (operation.Match, bool) {
	items := tester.FindAll(lattest.ByPredicate(func(m operation.Match) bool {
		s, ok := m.State.(string)
		return ok && s == label
	}, label))
	if !items.Exists() {
		return operation.Match{}, false
	}
	return items.First(), true
}

func TestPickList_ClickSelects(t *testing.T) {
	p := &picker{}
	tester := mountPicker(t, p)

	if !tester.FindText("Pick one").Exists() {
		t.Errorf("expected placeholder, got %v", tester.Texts())
	}
	if err := tester.Click(pickID); err != nil {
		t.Fatal(err)
	}
	if !isOpen(tester) {
		t.Fatal("expected menu open")
	}

	blue, ok := menuItem(tester, "blue")
	if !ok {
		t.Fatal("expected blue in the menu")
	}
	tester.ClickAt(blue.Bounds.Center())

	if !slices.Equal(p.picked, []string{"blue"}) {
		t.Errorf("got %v", p.picked)
	}
	if isOpen(tester) {
		t.Error("expected menu closed")
	}
	if !tester.FindText("blue").Exists() {
		t.Errorf("expected selection shown, got %v", tester.Texts())
	}
}

func TestPickList_MenuLayout(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
		wantY  float64
	}{
		{"below", 0, 26},
		{"above when no room below", 170, 92},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := mountPicker(t, &picker{offset: tt.offset})
			if err := tester.Click(pickID); err != nil {
				t.Fatal(err)
			}

			matches := tester.FindAll(lattest.ByID(pickID))
			if matches.Count() != 2 {
				t.Fatalf("expected header and menu, got %d", matches.Count())
			}
			menu := matches.At(1).Bounds
			if want := rect(0, tt.wantY, 100, 78); menu != want {
				t.Errorf("menu: got %v, want %v", menu, want)
			}
		})
	}
}

func TestPickList_Keyboard(t *testing.T) {
	green := "green"
	tests := []struct {
		name     string
		selected *string
		keys     []event.Key
		want     []string
	}{
		{"down from selection", &green, []event.Key{event.KeyDown, event.KeyEnter}, []string{"blue"}},
		{"down from nothing", nil, []event.Key{event.KeyDown, event.KeyEnter}, []string{"red"}},
		{"up stops at first", &green, []event.Key{event.KeyUp, event.KeyUp, event.KeyUp, event.KeyEnter}, []string{"red"}},
		{"down stops at last", nil, []event.Key{event.KeyDown, event.KeyDown, event.KeyDown, event.KeyDown, event.KeyEnter}, []string{"blue"}},
		{"escape closes", &green, []event.Key{event.KeyDown, event.KeyEscape}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &picker{selected: tt.selected}
			tester := mountPicker(t, p)
			if err := tester.Click(pickID); err != nil {
				t.Fatal(err)
			}
			for _, k := range tt.keys {
				if status := tester.Press(k, 0); status != event.Captured {
					t.Errorf("%s: got %v", k, status)
				}
			}
			if !slices.Equal(p.picked, tt.want) {
				t.Errorf("got %v, want %v", p.picked, tt.want)
			}
			if isOpen(tester) {
				t.Error("expected menu closed")
			}
		})
	}
}

func TestPickList_OutsideClickCloses(t *testing.T) {
	p := &picker{}
	tester := mountPicker(t, p)
	if err := tester.Click(pickID); err != nil {
		t.Fatal(err)
	}

	if status := tester.ClickAt(geometry.Point{X: 180, Y: 180}); status != event.Ignored {
		t.Errorf("release after dismissing: got %v", status)
	}
	if isOpen(tester) {
		t.Error("expected menu closed")
	}
	if len(p.picked) != 0 {
		t.Errorf("expected no selection, got %v", p.picked)
	}
}

func TestPickList_EmptyOptionsStayClosed(t *testing.T) {
	tester := mountPicker(t, &picker{options: []string{}})
	if err := tester.Click(pickID); err != nil {
		t.Fatal(err)
	}
	if isOpen(tester) {
		t.Error("expected empty pick list to stay closed")
	}
}

func TestPickList_Interaction(t *testing.T) {
	tester := mountPicker(t, &picker{})
	if err := tester.Click(pickID); err != nil {
		t.Fatal(err)
	}
	red, _ := menuItem(tester, "red")

	tester.MoveTo(red.Bounds.Center())
	if got := tester.Interaction(); got != event.InteractionPointer {
		t.Errorf("over menu item: got %v", got)
	}
}
