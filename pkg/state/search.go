package state

import "slices"

// DiffChildrenWithSearch reconciles current with items, inserting or
// removing nodes at the first position reported as changed by
// maybeChanged instead of always at the end.
//
// It suits lazily built lists where an item inserted at the front would
// otherwise shift every node's state by one.
func DiffChildrenWithSearch[T any](
	current *[]*Tree,
	items []T,
	diff func(*Tree, T),
	maybeChanged func(int) bool,
	newState func(T) *Tree,
) {
	if len(items) == 0 {
		clear(*current)
		*current = (*current)[:0]
		return
	}

	if len(*current) == 0 {
		for _, item := range items {
			*current = append(*current, newState(item))
		}
		return
	}

	firstIndex := func() int {
		if maybeChanged(0) {
			return 0
		}
		for i := 1; i < len(*current); i++ {
			if maybeChanged(i) {
				return i
			}
		}
		return 0
	}

	if len(*current) > len(items) {
		excess := len(*current) - len(items)
		if !maybeChanged(0) && maybeChanged(len(*current)-1) {
			*current = (*current)[:len(items)]
		} else {
			at := firstIndex()
			if at+excess > len(*current) {
				at = len(*current) - excess
			}
			*current = slices.Delete(*current, at, at+excess)
		}
	}

	if len(*current) < len(items) {
		missing := len(items) - len(*current)
		if !maybeChanged(0) && maybeChanged(len(*current)-1) {
			for _, item := range items[len(*current):] {
				*current = append(*current, newState(item))
			}
		} else {
			at := firstIndex()
			fresh := make([]*Tree, 0, missing)
			for _, item := range items[at : at+missing] {
				fresh = append(fresh, newState(item))
			}
			*current = slices.Insert(*current, at, fresh...)
		}
	}

	for i, child := range *current {
		diff(child, items[i])
	}
}

// DiffChildrenKeyed reconciles the children of t with items using explicit
// keys instead of positions. oldKeys must list the keys that produced the
// current children, in order. A child whose key survives keeps its state
// wherever it moves; new keys get fresh state and vanished keys are dropped.
// Duplicate keys are matched in order of appearance.
//
// Keys are expected to match items one to one. Children past the end of
// their key list are unkeyed and are matched to each other by position.
//
// The caller is responsible for storing newKeys for the next reconciliation.
func DiffChildrenKeyed[T any, K comparable](
	t *Tree,
	oldKeys []K,
	items []T,
	newKeys []K,
	diff func(*Tree, T),
	newState func(T) *Tree,
) {
	pool := make(map[K][]*Tree, len(oldKeys))
	var unkeyed []*Tree
	for i, child := range t.Children {
		if i < len(oldKeys) {
			pool[oldKeys[i]] = append(pool[oldKeys[i]], child)
		} else {
			unkeyed = append(unkeyed, child)
		}
	}

	take := func(i int) *Tree {
		if i >= len(newKeys) {
			if len(unkeyed) == 0 {
				return nil
			}
			child := unkeyed[0]
			unkeyed = unkeyed[1:]
			return child
		}
		queue := pool[newKeys[i]]
		if len(queue) == 0 {
			return nil
		}
		pool[newKeys[i]] = queue[1:]
		return queue[0]
	}

	children := make([]*Tree, len(items))
	for i, item := range items {
		if child := take(i); child != nil {
			diff(child, item)
			children[i] = child
			continue
		}
		children[i] = newState(item)
	}
	t.Children = children
}
