package renderer

import (
	"fmt"

	"github.com/go-drift/lattice/pkg/geometry"
)

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpQuad OpKind = iota
	OpText
	OpPushLayer
	OpPopLayer
)

func (k OpKind) String() string {
	switch k {
	case OpQuad:
		return "quad"
	case OpText:
		return "text"
	case OpPushLayer:
		return "push_layer"
	case OpPopLayer:
		return "pop_layer"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded drawing operation. Positions are absolute: the
// translations active when the operation was recorded are already applied.
type Op struct {
	Kind   OpKind
	Bounds geometry.Rectangle
	Color  Color
	Border Border
	Text   string
	Size   float64
}

// Recorder is a Renderer that records operations instead of rasterizing
// them. Text is measured by the embedded TextMeasurer.
type Recorder struct {
	TextMeasurer

	ops         []Op
	translation geometry.Vector
	depth       int
}

// NewRecorder creates a recorder measuring text with m.
func NewRecorder(m TextMeasurer) *Recorder {
	return &Recorder{TextMeasurer: m}
}

// Ops returns the operations recorded since the last Clear.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Depth returns the current layer nesting depth.
func (r *Recorder) Depth() int {
	return r.depth
}

// FillQuad records a quad.
func (r *Recorder) FillQuad(quad Quad, background Color) {
	r.ops = append(r.ops, Op{
		Kind:   OpQuad,
		Bounds: quad.Bounds.Translate(r.translation),
		Color:  background,
		Border: quad.Border,
	})
}

// FillText records a text run.
func (r *Recorder) FillText(text Text, position geometry.Point, color Color, clip geometry.Rectangle) {
	size := r.MeasureText(text.Content, text.Size)
	r.ops = append(r.ops, Op{
		Kind:   OpText,
		Bounds: geometry.RectangleFrom(position, size).Translate(r.translation),
		Color:  color,
		Text:   text.Content,
		Size:   text.Size,
	})
}

// WithLayer records a clipped layer around draw.
func (r *Recorder) WithLayer(bounds geometry.Rectangle, draw func()) {
	r.ops = append(r.ops, Op{Kind: OpPushLayer, Bounds: bounds.Translate(r.translation)})
	r.depth++
	draw()
	r.depth--
	r.ops = append(r.ops, Op{Kind: OpPopLayer})
}

// WithTranslation offsets every operation recorded by draw.
func (r *Recorder) WithTranslation(v geometry.Vector, draw func()) {
	previous := r.translation
	r.translation = r.translation.Add(v)
	draw()
	r.translation = previous
}

// Clear discards recorded operations.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.translation = geometry.Vector{}
	r.depth = 0
}

// Texts returns the content of every recorded text run, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}
