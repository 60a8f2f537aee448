// Package testbed provides internal test applications for the testing framework.
package testbed

import (
	"strconv"

	"github.com/go-drift/lattice/pkg/core"
	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/id"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/widgets"
)

// Kind is the kind of a Message.
type Kind int

const (
	Increment Kind = iota
	Decrement
	NameChanged
	Submit
	Picked
)

// Message is published by the counter application.
type Message struct {
	Kind Kind
	Text string
}

// Widget IDs.
var (
	IncrementID = id.New("increment")
	DecrementID = id.New("decrement")
	NameID      = id.New("name")
	StepID      = id.New("step")
)

// Steps are the options of the step pick list.
var Steps = []string{"one", "two", "five"}

// Counter is a small application with a count, two buttons, a name field
// and a pick list choosing the step.
type Counter struct {
	Count     int
	Name      string
	Step      string
	Submitted int
}

// NewCounter returns a counter stepping by one.
func NewCounter() *Counter {
	return &Counter{Step: Steps[0]}
}

func (c *Counter) step() int {
	switch c.Step {
	case "two":
		return 2
	case "five":
		return 5
	default:
		return 1
	}
}

// Update applies a message.
func (c *Counter) Update(m Message) {
	switch m.Kind {
	case Increment:
		c.Count += c.step()
	case Decrement:
		c.Count -= c.step()
	case NameChanged:
		c.Name = m.Text
	case Submit:
		c.Submitted++
	case Picked:
		c.Step = m.Text
	}
}

// View builds the widget tree.
func (c *Counter) View() core.Element[Message] {
	step := c.Step
	return widgets.Column[Message]{
		ChildrenWidgets: []core.Element[Message]{
			widgets.TextOf[Message]("Count: " + strconv.Itoa(c.Count)).Element(),
			widgets.RowOf(
				widgets.ButtonOf(widgets.TextOf[Message]("-").Element()).
					WithOnPress(Message{Kind: Decrement}).WithID(DecrementID).Element(),
				widgets.ButtonOf(widgets.TextOf[Message]("+").Element()).
					WithOnPress(Message{Kind: Increment}).WithID(IncrementID).Element(),
				widgets.PickListOf(Steps, &step, func(s string) Message {
					return Message{Kind: Picked, Text: s}
				}).WithID(StepID).Element(),
			).WithSpacing(10).Element(),
			widgets.TextInputOf[Message]("Name", c.Name).
				WithOnInput(func(s string) Message { return Message{Kind: NameChanged, Text: s} }).
				WithOnSubmit(Message{Kind: Submit}).
				WithID(NameID).Element(),
		},
		Spacing: 10,
		Padding: geometry.All(20),
		Width:   layout.Fill,
	}.Element()
}
