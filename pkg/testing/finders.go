package testing

import (
	"fmt"
	"strings"

	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/operation"
	"github.com/go-drift/lattice/pkg/renderer"
)

// Finder selects widgets among those visited by an operation.
type Finder interface {
	// Evaluate returns the matching widgets in traversal order.
	Evaluate(all []operation.Match) []operation.Match
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []operation.Match
	finder  Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() operation.Match {
	if len(r.matches) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.description()))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) operation.Match {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), r.description()))
	}
	return r.matches[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []operation.Match {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

// FindAll runs f over every widget visited by operations, base tree first
// and overlay last.
func (t *Tester[M]) FindAll(f Finder) FinderResult {
	all, _ := Operate(t, operation.CollectBounds())
	return FinderResult{matches: f.Evaluate(all), finder: f}
}

type predicateFinder struct {
	match func(operation.Match) bool
	desc  string
}

func (f predicateFinder) Evaluate(all []operation.Match) []operation.Match {
	var out []operation.Match
	for _, m := range all {
		if f.match(m) {
			out = append(out, m)
		}
	}
	return out
}

func (f predicateFinder) Description() string { return f.desc }

// ByID finds widgets identified by wid.
func ByID(wid id.ID) Finder {
	return predicateFinder{
		match: func(m operation.Match) bool { return id.Matches(m.ID, wid) },
		desc:  fmt.Sprintf("ByID(%s)", wid),
	}
}

// ByKind finds widgets that describe themselves as kind.
func ByKind(kind operation.Kind) Finder {
	return predicateFinder{
		match: func(m operation.Match) bool { return m.Kind == kind },
		desc:  fmt.Sprintf("ByKind(%s)", kind),
	}
}

// Focused finds focused widgets.
func Focused() Finder {
	return predicateFinder{
		match: func(m operation.Match) bool {
			f, ok := m.State.(operation.Focusable)
			return ok && m.Kind == operation.KindFocusable && f.IsFocused()
		},
		desc: "Focused()",
	}
}

// ByPredicate finds widgets for which match returns true.
func ByPredicate(match func(operation.Match) bool, description string) Finder {
	return predicateFinder{match: match, desc: fmt.Sprintf("ByPredicate(%s)", description)}
}

// TextResult holds the text operations recorded by a draw.
type TextResult struct {
	ops   []renderer.Op
	query string
}

// Exists returns true if the text was drawn.
func (r TextResult) Exists() bool {
	return len(r.ops) > 0
}

// Count returns how many times the text was drawn.
func (r TextResult) Count() int {
	return len(r.ops)
}

// First returns the first text operation. Panics if none.
func (r TextResult) First() renderer.Op {
	if len(r.ops) == 0 {
		panic(fmt.Sprintf("text %q was not drawn", r.query))
	}
	return r.ops[0]
}

// FindText draws the interface and returns the text operations whose
// content equals text.
func (t *Tester[M]) FindText(text string) TextResult {
	return t.findText(text, func(s string) bool { return s == text })
}

// FindTextContaining draws the interface and returns the text operations
// whose content contains substr.
func (t *Tester[M]) FindTextContaining(substr string) TextResult {
	return t.findText(substr, func(s string) bool { return strings.Contains(s, substr) })
}

func (t *Tester[M]) findText(query string, match func(string) bool) TextResult {
	result := TextResult{query: query}
	for _, op := range t.Draw() {
		if op.Kind == renderer.OpText && match(op.Text) {
			result.ops = append(result.ops, op)
		}
	}
	return result
}

// Texts draws the interface and returns every drawn string in order.
func (t *Tester[M]) Texts() []string {
	t.Draw()
	return t.recorder.Texts()
}
