// Package state stores widget state across rebuilds.
//
// Applications rebuild their widget descriptors on every update, so
// descriptors cannot hold mutable state. Instead, each widget position owns a
// [Tree] node whose [Cell] survives rebuilds. After a rebuild the tree is
// reconciled against the new descriptors with [Tree.Diff]:
//
//   - same tag at the same position: the state is kept and the widget
//     reconciles its own children (usually with [DiffChildren]);
//   - different tag: the node is rebuilt from scratch and the old state is
//     dropped.
//
// Children are matched by position. Reordering same-typed children therefore
// moves state to the wrong logical item; list-like containers that reorder
// should use [DiffChildrenKeyed].
//
// Widgets keep their state in a pointer type so it can be mutated in place:
//
//	type counterState struct{ clicks int }
//
//	func (c Counter) Tag() state.Tag    { return state.TagOf[*counterState]() }
//	func (c Counter) State() state.Cell { return state.NewCell(&counterState{}) }
//
//	s := state.Get[*counterState](&tree.State)
//	s.clicks++
package state
