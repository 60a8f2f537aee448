package testing_test

import (
	"path/filepath"
	"testing"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/operation"
	lattest "github.com/go-drift/lattice/pkg/testing"
	"github.com/go-drift/lattice/pkg/testing/internal/testbed"
	"github.com/go-drift/lattice/pkg/widgets"
)

func newCounter(t *testing.T) (*testbed.Counter, *lattest.Tester[testbed.Message]) {
	t.Helper()
	app := testbed.NewCounter()
	return app, lattest.NewWithT(t, app.View, app.Update)
}

func option(value string) lattest.Finder {
	return lattest.ByPredicate(func(m operation.Match) bool {
		s, ok := m.State.(string)
		return ok && m.Kind == operation.KindCustom && s == value
	}, value)
}

func TestTester_ClickPublishesAndRebuilds(t *testing.T) {
	app, tester := newCounter(t)

	if !tester.FindText("Count: 0").Exists() {
		t.Fatalf("expected initial count, got %v", tester.Texts())
	}
	for range 2 {
		if err := tester.Click(testbed.IncrementID); err != nil {
			t.Fatal(err)
		}
	}
	if err := tester.Click(testbed.DecrementID); err != nil {
		t.Fatal(err)
	}

	if app.Count != 1 {
		t.Errorf("expected count 1, got %d", app.Count)
	}
	if got := len(tester.Messages()); got != 3 {
		t.Errorf("expected 3 messages, got %d", got)
	}
	if !tester.FindText("Count: 1").Exists() {
		t.Errorf("expected rebuilt text, got %v", tester.Texts())
	}
}

func TestTester_ClickUnknownID(t *testing.T) {
	_, tester := newCounter(t)

	if err := tester.Click(id.New("missing")); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestTester_TypeAndSubmit(t *testing.T) {
	app, tester := newCounter(t)

	if err := tester.Click(testbed.NameID); err != nil {
		t.Fatal(err)
	}
	if focused, ok := tester.Focused(); !ok || focused != testbed.NameID {
		t.Fatalf("expected name input focused, got %v (%v)", focused, ok)
	}

	tester.Type("Ada")
	if app.Name != "Ada" {
		t.Errorf("expected name Ada, got %q", app.Name)
	}

	tester.Press(event.KeyBackspace, 0)
	if app.Name != "Ad" {
		t.Errorf("expected name Ad after backspace, got %q", app.Name)
	}

	if status := tester.Press(event.KeyEnter, 0); status != event.Captured {
		t.Errorf("expected Enter captured, got %v", status)
	}
	if app.Submitted != 1 {
		t.Errorf("expected one submit, got %d", app.Submitted)
	}
}

func TestTester_KeysIgnoredWithoutFocus(t *testing.T) {
	app, tester := newCounter(t)

	tester.Type("x")
	if app.Name != "" {
		t.Errorf("expected unfocused input to ignore typing, got %q", app.Name)
	}
}

func TestTester_PickListSelects(t *testing.T) {
	app, tester := newCounter(t)

	if err := tester.Click(testbed.StepID); err != nil {
		t.Fatal(err)
	}
	five := tester.FindAll(option("five"))
	if five.Count() != 1 {
		t.Fatalf("expected one open menu item for five, got %d", five.Count())
	}

	tester.ClickAt(five.First().Bounds.Center())
	if app.Step != "five" {
		t.Fatalf("expected step five, got %q", app.Step)
	}
	if tester.FindAll(option("five")).Exists() {
		t.Error("expected menu closed after selecting")
	}

	if err := tester.Click(testbed.IncrementID); err != nil {
		t.Fatal(err)
	}
	if app.Count != 5 {
		t.Errorf("expected count 5, got %d", app.Count)
	}
}

func TestTester_OutsideClickDismissesMenu(t *testing.T) {
	app, tester := newCounter(t)

	if err := tester.Click(testbed.StepID); err != nil {
		t.Fatal(err)
	}
	if err := tester.Click(testbed.IncrementID); err != nil {
		t.Fatal(err)
	}

	if app.Count != 0 {
		t.Errorf("expected click under the menu to be swallowed, count is %d", app.Count)
	}
	if tester.FindAll(option("one")).Exists() {
		t.Error("expected menu dismissed")
	}

	if err := tester.Click(testbed.IncrementID); err != nil {
		t.Fatal(err)
	}
	if app.Count != 1 {
		t.Errorf("expected count 1 once the menu is gone, got %d", app.Count)
	}
}

func TestTester_Finders(t *testing.T) {
	_, tester := newCounter(t)

	if got := tester.FindAll(lattest.ByID(testbed.IncrementID)).Count(); got != 1 {
		t.Errorf("expected one increment button, got %d", got)
	}
	if got := tester.FindAll(lattest.ByKind(operation.KindTextInput)).Count(); got != 1 {
		t.Errorf("expected one text input, got %d", got)
	}
	if tester.FindAll(lattest.Focused()).Exists() {
		t.Error("expected nothing focused")
	}

	tester.Focus(testbed.NameID)
	focused := tester.FindAll(lattest.Focused())
	if !focused.Exists() || !id.Matches(focused.First().ID, testbed.NameID) {
		t.Error("expected name input focused")
	}
}

func TestFinderResult_FirstPanicsWhenEmpty(t *testing.T) {
	_, tester := newCounter(t)

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	tester.FindAll(lattest.ByID(id.New("missing"))).First()
}

func TestTester_SetSizeKeepsState(t *testing.T) {
	_, tester := newCounter(t)

	tester.Focus(testbed.NameID)
	tester.SetSize(geometry.Size{Width: 400, Height: 300})

	if got := tester.UI().Layout().Bounds().Width; got != 400 {
		t.Errorf("expected width 400 after resize, got %v", got)
	}
	if focused, ok := tester.Focused(); !ok || focused != testbed.NameID {
		t.Error("expected focus to survive resize")
	}
}

func TestTester_TickRedraws(t *testing.T) {
	var ticks int
	tester := lattest.NewWithT(t, func() core.Element[int] {
		return widgets.TextOf[int]("static").Element()
	}, func(int) { ticks++ })

	before := tester.Clock().Now()
	if status := tester.Tick(); status != event.Ignored {
		t.Errorf("expected tick ignored, got %v", status)
	}
	if got := tester.Clock().Now().Sub(before); got != lattest.FrameDuration {
		t.Errorf("expected clock advanced by one frame, got %v", got)
	}
	if ticks != 0 {
		t.Errorf("expected no messages, got %d", ticks)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	_, tester := newCounter(t)
	path := filepath.Join(t.TempDir(), "counter.snapshot.yaml")

	snap := tester.CaptureSnapshot()
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	tester.CaptureSnapshot().MatchesFile(t, path)

	if err := tester.Click(testbed.IncrementID); err != nil {
		t.Fatal(err)
	}
	if diff := tester.CaptureSnapshot().Diff(snap); diff == "" {
		t.Error("expected diff after count changed")
	}
}

type fakeT struct {
	fatal  string
	errors []string
}

func (f *fakeT) Helper()                        {}
func (f *fakeT) Name() string                   { return "TestFake" }
func (f *fakeT) Fatalf(format string, _ ...any) { f.fatal = format }
func (f *fakeT) Errorf(format string, _ ...any) { f.errors = append(f.errors, format) }

func TestSnapshot_MissingFile(t *testing.T) {
	t.Setenv("LATTICE_UPDATE_SNAPSHOTS", "")
	_, tester := newCounter(t)

	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, filepath.Join(t.TempDir(), "missing.yaml"))
	if ft.fatal == "" {
		t.Error("expected missing snapshot to fail")
	}
}

func TestSnapshot_Mismatch(t *testing.T) {
	t.Setenv("LATTICE_UPDATE_SNAPSHOTS", "")
	_, tester := newCounter(t)
	path := filepath.Join(t.TempDir(), "counter.snapshot.yaml")
	if err := tester.CaptureSnapshot().UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	tester.SetSize(geometry.Size{Width: 300, Height: 300})
	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if len(ft.errors) != 1 {
		t.Errorf("expected one mismatch error, got %d", len(ft.errors))
	}
}

func TestSnapshot_UpdateEnv(t *testing.T) {
	t.Setenv("LATTICE_UPDATE_SNAPSHOTS", "1")
	_, tester := newCounter(t)
	path := filepath.Join(t.TempDir(), "nested", "counter.snapshot.yaml")

	ft := &fakeT{}
	tester.CaptureSnapshot().MatchesFile(ft, path)
	if ft.fatal != "" || len(ft.errors) > 0 {
		t.Fatalf("expected silent update, got %q %v", ft.fatal, ft.errors)
	}

	t.Setenv("LATTICE_UPDATE_SNAPSHOTS", "")
	tester.CaptureSnapshot().MatchesFile(t, path)
}

func TestTester_AdvanceToRedraw(t *testing.T) {
	app := testbed.NewCounter()
	tester := lattest.NewWithT(t, app.View, app.Update)
	tester.Draw()

	if _, ok := tester.AdvanceToRedraw(); ok {
		t.Fatal("expected no pending redraw after drawing")
	}
	if err := tester.Click(testbed.IncrementID); err != nil {
		t.Fatal(err)
	}
	if !tester.PendingRedraw().IsNextFrame() {
		t.Fatalf("expected next-frame redraw, got %v", tester.PendingRedraw())
	}

	before := tester.Clock().Now()
	if _, ok := tester.AdvanceToRedraw(); !ok {
		t.Fatal("expected pending redraw")
	}
	if got := tester.Clock().Now().Sub(before); got != lattest.FrameDuration {
		t.Errorf("expected one frame, got %v", got)
	}
	if !tester.PendingRedraw().IsWait() {
		t.Errorf("expected redraw consumed, got %v", tester.PendingRedraw())
	}
}
