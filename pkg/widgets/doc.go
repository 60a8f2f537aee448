// Package widgets provides the standard widgets built on pkg/core.
//
// Every widget is generic over the application message type M and is a
// plain value rebuilt on each update. Persistent state such as a button's
// pressed flag or a scroll offset lives in the state tree and survives
// rebuilds as long as the widget keeps its place (or key) in the tree.
//
// # Widget Construction
//
// Widgets use a two-tier construction pattern.
//
// ## Tier 1: Struct Literal (canonical, full control)
//
//	btn := widgets.Button[Msg]{
//	    Content: widgets.TextOf[Msg]("Submit").Element(),
//	    OnPress: &submit,
//	    Width:   layout.Fill,
//	}
//
// ## Tier 2: XxxOf helpers and WithX chaining
//
//	btn := widgets.ButtonOf(label).WithOnPress(Submit{}).WithID(id.New("submit"))
//
// WithX methods return COPIES; they never mutate the receiver.
//
// Call Element to turn a widget into a core.Element for use as a child:
//
//	widgets.ColumnOf(
//	    widgets.TextOf[Msg]("Name").Element(),
//	    widgets.TextInputOf[Msg]("Ada", model.name).WithOnInput(NameChanged).Element(),
//	    btn.Element(),
//	).WithSpacing(8).Element()
//
// # Layout Widgets
//
// Row and Column pack children along one axis; children with a Fill width
// (in a Row) or height (in a Column) share the space left over.
// KeyedColumn matches children to state by key. Container pads, caps and
// aligns a single child. Space takes room.
//
// # Input Widgets
//
// Button, TextInput and PickList handle input. TextInput takes part in
// focus and text-input operations; Scrollable in scroll operations.
// PickList opens its menu in an overlay.
//
// # Style Guide for Widget Authors
//
// When adding WithX methods:
//   - Use value receiver, not pointer
//   - Return the modified copy, never mutate
//   - Doc comment: "returns a copy of X with..."
package widgets
