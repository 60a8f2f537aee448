package testing

import (
	"math"

	"github.com/go-drift/lattice/pkg/geometry"
	"github.com/go-drift/lattice/pkg/renderer"
)

// DisplayOp is a serialized drawing operation.
type DisplayOp struct {
	Op     string     `yaml:"op"`
	Bounds [4]float64 `yaml:"bounds,flow,omitempty"`
	Color  string     `yaml:"color,omitempty"`
	Border string     `yaml:"border,omitempty"`
	Text   string     `yaml:"text,omitempty"`
}

func serializeOps(ops []renderer.Op) []DisplayOp {
	out := make([]DisplayOp, 0, len(ops))
	for _, op := range ops {
		d := DisplayOp{Op: op.Kind.String()}
		switch op.Kind {
		case renderer.OpQuad:
			d.Bounds = serializeRect(op.Bounds)
			d.Color = serializeColor(op.Color)
			if op.Border.Width > 0 {
				d.Border = serializeColor(op.Border.Color)
			}
		case renderer.OpText:
			d.Bounds = serializeRect(op.Bounds)
			d.Color = serializeColor(op.Color)
			d.Text = op.Text
		case renderer.OpPushLayer:
			d.Bounds = serializeRect(op.Bounds)
		}
		out = append(out, d)
	}
	return out
}

func serializeRect(r geometry.Rectangle) [4]float64 {
	return [4]float64{round2(r.X), round2(r.Y), round2(r.Width), round2(r.Height)}
}

func serializeColor(c renderer.Color) string {
	if c.IsTransparent() {
		return ""
	}
	return c.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
