package state

// Widget is the part of a widget that reconciliation needs.
type Widget interface {
	// Tag identifies the type of state the widget keeps.
	Tag() Tag
	// State returns the initial state for a freshly created node.
	State() Cell
	// Children returns freshly built trees for the widget's children.
	Children() []*Tree
	// Diff reconciles the children of an existing, tag-compatible tree.
	Diff(tree *Tree)
}

// Tree is a persistent node of widget state mirroring the widget tree.
type Tree struct {
	// Tag of the widget that produced this node.
	Tag Tag
	// State of the widget.
	State Cell
	// Children of the widget, in declaration order.
	Children []*Tree
}

// Empty returns a stateless tree with no children.
func Empty() *Tree {
	return &Tree{Tag: Stateless(), State: None()}
}

// New builds a tree for w with fresh state.
func New(w Widget) *Tree {
	return &Tree{
		Tag:      w.Tag(),
		State:    w.State(),
		Children: w.Children(),
	}
}

// Diff reconciles t with w.
//
// When the tags match, w reconciles its children and the state of t is kept.
// Otherwise t is rebuilt in place and its previous state is dropped.
func (t *Tree) Diff(w Widget) {
	if t.Tag == w.Tag() {
		w.Diff(t)
		return
	}
	*t = *New(w)
}

// Count returns the number of nodes in the tree, including t.
func (t *Tree) Count() int {
	n := 1
	for _, child := range t.Children {
		n += child.Count()
	}
	return n
}

// DiffChildren reconciles the children of t with widgets by position.
func DiffChildren[W Widget](t *Tree, widgets []W) {
	DiffChildrenCustom(t, widgets,
		func(tree *Tree, w W) { tree.Diff(w) },
		func(w W) *Tree { return New(w) },
	)
}

// DiffChildrenCustom reconciles the children of t with items using custom
// diff and creation functions. Excess children are dropped, surviving
// children are diffed pairwise by index, and missing children are appended.
func DiffChildrenCustom[T any](t *Tree, items []T, diff func(*Tree, T), newState func(T) *Tree) {
	if len(t.Children) > len(items) {
		clear(t.Children[len(items):])
		t.Children = t.Children[:len(items)]
	}

	for i, child := range t.Children {
		diff(child, items[i])
	}

	for _, item := range items[len(t.Children):] {
		t.Children = append(t.Children, newState(item))
	}
}
