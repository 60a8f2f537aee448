package state

import "testing"

func counters(n int) []fakeWidget {
	out := make([]fakeWidget, n)
	for i := range out {
		out[i] = counter()
	}
	return out
}

func markClicks(trees []*Tree) {
	for i, tree := range trees {
		Get[*counterState](&tree.State).clicks = i + 1
	}
}

func clicksOf(trees []*Tree) []int {
	out := make([]int, len(trees))
	for i, tree := range trees {
		out[i] = Get[*counterState](&tree.State).clicks
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDiffChildrenWithSearchInsertsAtFront(t *testing.T) {
	current := New(column(counters(3)...)).Children
	markClicks(current)

	diff := func(tree *Tree, w fakeWidget) { tree.Diff(w) }
	fresh := func(w fakeWidget) *Tree { return New(w) }

	// An item was inserted at index 0, so the first item is reported as changed.
	DiffChildrenWithSearch(&current, counters(4), diff, func(i int) bool { return i == 0 }, fresh)

	if got, want := clicksOf(current), []int{0, 1, 2, 3}; !equalInts(got, want) {
		t.Errorf("clicks = %v, want %v", got, want)
	}
}

func TestDiffChildrenWithSearchAppendsAtEnd(t *testing.T) {
	current := New(column(counters(2)...)).Children
	markClicks(current)

	diff := func(tree *Tree, w fakeWidget) { tree.Diff(w) }
	fresh := func(w fakeWidget) *Tree { return New(w) }

	DiffChildrenWithSearch(&current, counters(3), diff, func(i int) bool { return i == 1 }, fresh)

	if got, want := clicksOf(current), []int{1, 2, 0}; !equalInts(got, want) {
		t.Errorf("clicks = %v, want %v", got, want)
	}
}

func TestDiffChildrenWithSearchRemovesChanged(t *testing.T) {
	current := New(column(counters(4)...)).Children
	markClicks(current)

	diff := func(tree *Tree, w fakeWidget) { tree.Diff(w) }
	fresh := func(w fakeWidget) *Tree { return New(w) }

	// Item at index 1 was removed.
	DiffChildrenWithSearch(&current, counters(3), diff, func(i int) bool { return i == 1 }, fresh)

	if got, want := clicksOf(current), []int{1, 3, 4}; !equalInts(got, want) {
		t.Errorf("clicks = %v, want %v", got, want)
	}
}

func TestDiffChildrenWithSearchEmpty(t *testing.T) {
	current := New(column(counters(2)...)).Children
	diff := func(tree *Tree, w fakeWidget) { tree.Diff(w) }
	fresh := func(w fakeWidget) *Tree { return New(w) }

	DiffChildrenWithSearch(&current, nil, diff, func(int) bool { return true }, fresh)
	if len(current) != 0 {
		t.Errorf("len = %d, want 0", len(current))
	}

	DiffChildrenWithSearch(&current, counters(2), diff, func(int) bool { return true }, fresh)
	if len(current) != 2 {
		t.Errorf("len = %d, want 2", len(current))
	}
}

func TestDiffChildrenKeyedFollowsKeys(t *testing.T) {
	tree := New(column(counters(3)...))
	markClicks(tree.Children)

	diff := func(tree *Tree, w fakeWidget) { tree.Diff(w) }
	fresh := func(w fakeWidget) *Tree { return New(w) }

	// "b" removed, "c" moved to the front, "d" added.
	DiffChildrenKeyed(tree,
		[]string{"a", "b", "c"},
		counters(3),
		[]string{"c", "a", "d"},
		diff, fresh,
	)

	if got, want := clicksOf(tree.Children), []int{3, 1, 0}; !equalInts(got, want) {
		t.Errorf("clicks = %v, want %v", got, want)
	}
}

func TestDiffChildrenKeyedDuplicateKeys(t *testing.T) {
	tree := New(column(counters(2)...))
	markClicks(tree.Children)

	diff := func(tree *Tree, w fakeWidget) { tree.Diff(w) }
	fresh := func(w fakeWidget) *Tree { return New(w) }

	DiffChildrenKeyed(tree, []int{7, 7}, counters(3), []int{7, 7, 7}, diff, fresh)

	if got, want := clicksOf(tree.Children), []int{1, 2, 0}; !equalInts(got, want) {
		t.Errorf("clicks = %v, want %v", got, want)
	}
}

func TestDiffChildrenKeyedTagChangeRebuilds(t *testing.T) {
	tree := New(column(counter()))
	markClicks(tree.Children)

	diff := func(tree *Tree, w fakeWidget) { tree.Diff(w) }
	fresh := func(w fakeWidget) *Tree { return New(w) }

	DiffChildrenKeyed(tree, []string{"a"}, []fakeWidget{toggle()}, []string{"a"}, diff, fresh)

	if tree.Children[0].Tag != TagOf[*toggleState]() {
		t.Errorf("tag = %v, want toggle state", tree.Children[0].Tag)
	}
}

func TestDiffChildrenKeyedMismatchedKeys(t *testing.T) {
	tests := []struct {
		name    string
		oldKeys []string
		items   int
		newKeys []string
		want    []int
	}{
		{"fewer keys than items", []string{"a", "b", "c"}, 3, []string{"b"}, []int{2, 0, 0}},
		{"unkeyed tail matched by position", []string{"a"}, 3, []string{"a"}, []int{1, 2, 3}},
		{"more keys than items", []string{"a", "b", "c"}, 2, []string{"c", "a", "x"}, []int{3, 1}},
		{"no keys at all", nil, 2, nil, []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New(column(counters(3)...))
			markClicks(tree.Children)

			diff := func(tree *Tree, w fakeWidget) { tree.Diff(w) }
			fresh := func(w fakeWidget) *Tree { return New(w) }

			DiffChildrenKeyed(tree, tt.oldKeys, counters(tt.items), tt.newKeys, diff, fresh)

			if got := clicksOf(tree.Children); !equalInts(got, tt.want) {
				t.Errorf("clicks = %v, want %v", got, tt.want)
			}
		})
	}
}
