package document

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/layout"
)

// Styles colors the rendered layout tree.
type Styles struct {
	Kind   lipgloss.Style
	ID     lipgloss.Style
	Bounds lipgloss.Style
	Branch lipgloss.Style
}

// DefaultStyles returns the terminal styles used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Kind:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		ID:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		Bounds: lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		Branch: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Kind: plain, ID: plain, Bounds: plain, Branch: plain}
}

// Tree pairs the nodes of a document with their resolved layout. Leaf
// widgets are shown without their internal layout nodes.
func Tree(n Node, l layout.Layout, styles Styles) *tree.Tree {
	t := tree.Root(label(n, l.Bounds(), styles)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styles.Branch)
	if !n.hasChildren() {
		return t
	}
	for i, child := range n.Children {
		if i >= l.ChildCount() {
			break
		}
		if child.hasChildren() && len(child.Children) > 0 {
			t.Child(Tree(child, l.Child(i), styles))
		} else {
			t.Child(label(child, l.Child(i).Bounds(), styles))
		}
	}
	return t
}

func label(n Node, bounds geometry.Rectangle, styles Styles) string {
	s := styles.Kind.Render(n.Kind)
	if n.ID != "" {
		s += " " + styles.ID.Render("#"+n.ID)
	}
	if n.Kind == KindText && n.Text != "" {
		s += " " + strconv.Quote(n.Text)
	}
	return s + " " + styles.Bounds.Render(formatBounds(bounds))
}

func formatBounds(r geometry.Rectangle) string {
	return fmt.Sprintf("(%s, %s) %sx%s", num(r.X), num(r.Y), num(r.Width), num(r.Height))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
