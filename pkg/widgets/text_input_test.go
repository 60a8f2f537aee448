package widgets_test

import (
	"testing"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/operation"
	lattest "github.com/go-drift/lattice/pkg/testing"
	"github.com/go-drift/lattice/pkg/widgets"
)

var nameID = id.New("name")

// field is an application owning the value of one text input.
type field struct {
	value     string
	submitted int
	obscure   bool
	readOnly  bool
}

type fieldMsg struct {
	value  string
	submit bool
}

func (f *field) view() core.Element[fieldMsg] {
	input := widgets.TextInputOf[fieldMsg]("Name", f.value).
		WithOnSubmit(fieldMsg{submit: true}).
		WithObscure(f.obscure).
		WithID(nameID)
	if !f.readOnly {
		input = input.WithOnInput(func(s string) fieldMsg { return fieldMsg{value: s} })
	}
	return widgets.ColumnOf(input.Element(), widgets.VSpace[fieldMsg](50)).Element()
}

func (f *field) update(m fieldMsg) {
	if m.submit {
		f.submitted++
		return
	}
	f.value = m.value
}

func mountField(t *testing.T, f *field) *lattest.Tester[fieldMsg] {
	t.Helper()
	tester := mount(t, geometry.Size{Width: 200, Height: 100}, f.view, f.update)
	if err := tester.Click(nameID); err != nil {
		t.Fatal(err)
	}
	return tester
}

func TestTextInput_Editing(t *testing.T) {
	f := &field{}
	tester := mountField(t, f)

	steps := []struct {
		name string
		do   func()
		want string
	}{
		{"type", func() { tester.Type("abc") }, "abc"},
		{"insert after moving left", func() {
			tester.Press(event.KeyLeft, 0)
			tester.Press(event.KeyLeft, 0)
			tester.Type("X")
		}, "aXbc"},
		{"backspace at end", func() {
			tester.Press(event.KeyEnd, 0)
			tester.Press(event.KeyBackspace, 0)
		}, "aXb"},
		{"delete at start", func() {
			tester.Press(event.KeyHome, 0)
			tester.Press(event.KeyDelete, 0)
		}, "Xb"},
		{"backspace at start does nothing", func() { tester.Press(event.KeyBackspace, 0) }, "Xb"},
		{"replace selection", func() {
			tester.Press(event.KeyRight, event.Shift)
			tester.Type("é")
		}, "éb"},
	}
	for _, step := range steps {
		step.do()
		if f.value != step.want {
			t.Fatalf("%s: got %q, want %q", step.name, f.value, step.want)
		}
	}
}

func TestTextInput_Clipboard(t *testing.T) {
	f := &field{}
	tester := mountField(t, f)
	tester.Type("hello")

	tester.Press(event.Character("a"), event.Control)
	tester.Press(event.Character("c"), event.Control)
	if got, _ := tester.Clipboard().Read(core.ClipboardStandard); got != "hello" {
		t.Errorf("copy: clipboard holds %q", got)
	}

	tester.Press(event.Character("x"), event.Logo)
	if f.value != "" {
		t.Errorf("cut: value is %q", f.value)
	}

	tester.Press(event.Character("v"), event.Control)
	tester.Press(event.Character("v"), event.Control)
	if f.value != "hellohello" {
		t.Errorf("paste: value is %q", f.value)
	}
}

func TestTextInput_ObscuredValue(t *testing.T) {
	f := &field{obscure: true}
	tester := mountField(t, f)
	tester.Type("abc")

	if !tester.FindText("•••").Exists() {
		t.Errorf("expected bullets drawn, got %v", tester.Texts())
	}
	if tester.FindText("abc").Exists() {
		t.Error("expected the value hidden")
	}

	tester.Press(event.Character("a"), event.Control)
	tester.Press(event.Character("c"), event.Control)
	if _, ok := tester.Clipboard().Read(core.ClipboardStandard); ok {
		t.Error("expected copying an obscured value to be refused")
	}
}

func TestTextInput_Submit(t *testing.T) {
	f := &field{}
	tester := mountField(t, f)

	tester.Press(event.KeyEnter, 0)
	if f.submitted != 1 {
		t.Errorf("expected one submit, got %d", f.submitted)
	}
}

func TestTextInput_Unfocus(t *testing.T) {
	tests := []struct {
		name    string
		unfocus func(*lattest.Tester[fieldMsg])
	}{
		{"escape", func(tt *lattest.Tester[fieldMsg]) { tt.Press(event.KeyEscape, 0) }},
		{"click outside", func(tt *lattest.Tester[fieldMsg]) { tt.ClickAt(geometry.Point{X: 100, Y: 60}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &field{}
			tester := mountField(t, f)

			tt.unfocus(tester)
			if _, ok := tester.Focused(); ok {
				t.Error("expected input unfocused")
			}
			tester.Type("x")
			if f.value != "" {
				t.Errorf("expected typing ignored, got %q", f.value)
			}
		})
	}
}

func TestTextInput_ReadOnly(t *testing.T) {
	f := &field{value: "fixed", readOnly: true}
	tester := mountField(t, f)

	tester.Type("x")
	tester.Press(event.KeyBackspace, 0)
	if f.value != "fixed" {
		t.Errorf("expected read-only value, got %q", f.value)
	}
	if got := tester.Interaction(); got != event.InteractionNotAllowed {
		t.Errorf("interaction: got %v", got)
	}
}

func TestTextInput_Interaction(t *testing.T) {
	f := &field{}
	tester := mountField(t, f)

	if got := tester.Interaction(); got != event.InteractionText {
		t.Errorf("over input: got %v", got)
	}
	tester.MoveTo(geometry.Point{X: 100, Y: 60})
	if got := tester.Interaction(); got != event.InteractionNone {
		t.Errorf("outside: got %v", got)
	}
}

func TestTextInput_Operations(t *testing.T) {
	f := &field{value: "bc"}
	tester := mount(t, geometry.Size{Width: 200, Height: 100}, f.view, f.update)

	tester.Focus(nameID)
	lattest.Operate(tester, operation.MoveCursorToFront[struct{}](nameID))
	tester.Type("a")
	if f.value != "abc" {
		t.Errorf("after MoveCursorToFront: got %q", f.value)
	}

	lattest.Operate(tester, operation.SelectAll[struct{}](nameID))
	tester.Type("z")
	if f.value != "z" {
		t.Errorf("after SelectAll: got %q", f.value)
	}

	lattest.Operate(tester, operation.MoveCursorTo[struct{}](nameID, 0))
	tester.Type("y")
	if f.value != "yz" {
		t.Errorf("after MoveCursorTo: got %q", f.value)
	}

	count, _ := lattest.Operate(tester, operation.CountFocusable())
	if count.Total != 1 || count.Focused != 0 {
		t.Errorf("count: got %+v", count)
	}
}

func TestTextInput_ClickPlacesCursor(t *testing.T) {
	f := &field{value: "abcdef"}
	tester := mount(t, geometry.Size{Width: 200, Height: 100}, f.view, f.update)

	// Padding is 5 and cells are 8 wide: x=5+2*8 lands between "b" and "c".
	tester.ClickAt(geometry.Point{X: 21, Y: 10})
	tester.Type("-")
	if f.value != "ab-cdef" {
		t.Errorf("got %q", f.value)
	}
}
