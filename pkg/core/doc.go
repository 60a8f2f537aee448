// Package core defines the widget capability interface and the types widgets
// use to talk to the rest of the toolkit.
//
// # Core Types
//
// Widget is the uniform contract every widget implements: sizing policy,
// layout, drawing, event handling and participation in operations.
// Containers are ordinary widgets that own child Elements.
//
// Element erases the concrete type of a widget so heterogeneous widgets can
// be composed into one tree. The tree is rebuilt on every application update
// and reconciled against a persistent state.Tree.
//
// Shell collects the messages a widget publishes while handling an event,
// together with redraw and relayout requests.
//
// Overlay is a secondary tree, such as a dropdown menu, laid out and
// dispatched after the base tree and anchored to it.
//
// # Writing a Widget
//
// Embed Base to inherit no-op defaults and implement the rest:
//
//	type label[M any] struct {
//	    core.Base[M]
//	    text string
//	}
//
//	func (l label[M]) Size() (layout.Length, layout.Length) {
//	    return layout.Shrink, layout.Shrink
//	}
//
// Widgets with private state return a tag and an initial cell from Tag and
// State, and read the cell back with state.Get during events.
package core
