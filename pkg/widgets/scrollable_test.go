package widgets_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/operation"
	lattest "github.com/go-drift/lattice/pkg/testing"
	"github.com/go-drift/lattice/pkg/widgets"
)

var (
	listID = id.New("list")
	lastID = id.New("last")
)

// rows builds a scrollable list inside a 200x100 viewport: 19 text rows of
// 16px and a 26px button, 330px in total.
func rows(direction widgets.Direction) func() core.Element[float64] {
	children := make([]core.Element[float64], 0, 20)
	for i := range 19 {
		children = append(children, widgets.TextOf[float64](fmt.Sprintf("row %d", i)).Element())
	}
	children = append(children, widgets.ButtonOf(widgets.TextOf[float64]("last").Element()).
		WithOnPress(-1).WithID(lastID).Element())

	return static(widgets.Scrollable[float64]{
		Content:   widgets.ColumnOf(children...).Element(),
		Direction: direction,
		Width:     layout.Fill,
		Height:    layout.Fill,
		OnScroll:  func(v widgets.Viewport) float64 { return v.RelativeOffset().Y },
	}.WithID(listID).Element())
}

func mountRows(t *testing.T, direction widgets.Direction) (*lattest.Tester[float64], *[]float64) {
	t.Helper()
	var got []float64
	tester := mount(t, geometry.Size{Width: 200, Height: 100}, rows(direction), func(m float64) { got = append(got, m) })
	return tester, &got
}

func TestScrollable_WheelScrolls(t *testing.T) {
	tester, got := mountRows(t, widgets.ScrollVertical)

	status := tester.Scroll(geometry.Point{X: 50, Y: 50}, geometry.Vector{Y: -46})
	if status != event.Captured {
		t.Errorf("expected wheel captured, got %v", status)
	}
	if want := []float64{0.2}; !slices.Equal(*got, want) {
		t.Errorf("OnScroll: got %v, want %v", *got, want)
	}
	if y := tester.FindText("row 2").First().Bounds.Y; y != -14 {
		t.Errorf("expected row 2 drawn at -14, got %v", y)
	}
}

func TestScrollable_ClampsAtEdges(t *testing.T) {
	tester, got := mountRows(t, widgets.ScrollVertical)

	if status := tester.Scroll(geometry.Point{X: 50, Y: 50}, geometry.Vector{Y: 100}); status != event.Ignored {
		t.Errorf("scrolling past the start: got %v", status)
	}

	tester.Scroll(geometry.Point{X: 50, Y: 50}, geometry.Vector{Y: -1000})
	if y := tester.FindText("row 18").First().Bounds.Y; y != 58 {
		t.Errorf("expected content scrolled to the end, row 18 at %v", y)
	}
	if want := []float64{1}; !slices.Equal(*got, want) {
		t.Errorf("OnScroll: got %v, want %v", *got, want)
	}
}

func TestScrollable_IgnoresWheelOutsideOrAcrossAxis(t *testing.T) {
	tester, got := mountRows(t, widgets.ScrollHorizontal)

	if status := tester.Scroll(geometry.Point{X: 50, Y: 50}, geometry.Vector{Y: -40}); status != event.Ignored {
		t.Errorf("vertical wheel on horizontal scrollable: got %v", status)
	}
	if len(*got) != 0 {
		t.Errorf("expected no OnScroll, got %v", *got)
	}
}

func TestScrollable_Operations(t *testing.T) {
	tester, _ := mountRows(t, widgets.ScrollVertical)

	lattest.Operate(tester, operation.SnapTo[struct{}](listID, operation.RelativeOffset{Y: 1}))
	if y := tester.FindText("last").First().Bounds.Y; y != 79 {
		t.Errorf("after SnapTo: button label at %v, want 79", y)
	}

	lattest.Operate(tester, operation.ScrollTo[struct{}](listID, operation.AbsoluteOffset{Y: 16}))
	if y := tester.FindText("row 1").First().Bounds.Y; y != 0 {
		t.Errorf("after ScrollTo: row 1 at %v, want 0", y)
	}

	lattest.Operate(tester, operation.ScrollBy[struct{}](listID, operation.AbsoluteOffset{Y: 16}))
	if y := tester.FindText("row 2").First().Bounds.Y; y != 0 {
		t.Errorf("after ScrollBy: row 2 at %v, want 0", y)
	}
}

func TestScrollable_ClickScrolledContent(t *testing.T) {
	tester, got := mountRows(t, widgets.ScrollVertical)

	lattest.Operate(tester, operation.SnapTo[struct{}](listID, operation.RelativeOffset{Y: 1}))
	match, err := tester.Find(lastID)
	if err != nil {
		t.Fatal(err)
	}
	if want := rect(0, 74, 52, 26); match.Bounds != want {
		t.Errorf("expected on-screen bounds %v, got %v", want, match.Bounds)
	}

	tester.ClickAt(match.Bounds.Center())
	if !slices.Contains(*got, -1) {
		t.Errorf("expected button press through the scrolled window, got %v", *got)
	}
}

func TestViewport_RelativeOffset(t *testing.T) {
	tests := []struct {
		name string
		v    widgets.Viewport
		want operation.RelativeOffset
	}{
		{"start", widgets.Viewport{Bounds: rect(0, 0, 100, 100), Content: rect(0, 0, 100, 300)}, operation.RelativeOffset{}},
		{"middle", widgets.Viewport{Offset: geometry.Vector{Y: 100}, Bounds: rect(0, 0, 100, 100), Content: rect(0, 0, 100, 300)}, operation.RelativeOffset{Y: 0.5}},
		{"content fits", widgets.Viewport{Offset: geometry.Vector{Y: 10}, Bounds: rect(0, 0, 100, 100), Content: rect(0, 0, 50, 50)}, operation.RelativeOffset{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.RelativeOffset(); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
