package engine

import (
	"github.com/go-drift/lattice/pkg/config"
	"github.com/go-drift/lattice/pkg/errors"
	"github.com/go-drift/lattice/pkg/layout"
	"github.com/go-drift/lattice/pkg/renderer"
)

// Options configures the process-wide toolkit settings.
type Options struct {
	// Snap rounds flexible shares down to whole pixels.
	Snap bool
	// UnboundedWarning logs once when filling children are laid out along
	// an unbounded axis.
	UnboundedWarning bool
	// TextSize is the default text size in logical pixels.
	TextSize float64
	// Measurer selects the text measurer, config.MeasurerFont or
	// config.MeasurerCell.
	Measurer string
	// VerboseErrors adds stack traces to reported errors.
	VerboseErrors bool
}

// DefaultOptions returns the options used without a configuration file.
func DefaultOptions() Options {
	return OptionsFrom(config.Default())
}

// OptionsFrom converts a resolved configuration.
func OptionsFrom(cfg *config.Resolved) Options {
	if cfg == nil {
		cfg = config.Default()
	}
	return Options{
		Snap:             cfg.Snap,
		UnboundedWarning: cfg.UnboundedWarning,
		TextSize:         cfg.TextSize,
		Measurer:         cfg.Measurer,
		VerboseErrors:    cfg.VerboseErrors,
	}
}

// Apply installs the options. It should be called before the first Build.
func (o Options) Apply() {
	layout.SetSnap(o.Snap)
	layout.SetUnboundedWarning(o.UnboundedWarning)
	errors.SetHandler(&errors.LogHandler{Verbose: o.VerboseErrors})
}

// TextMeasurer returns the measurer selected by the options. Cell metrics
// treat TextSize as the cell height with half-height cells.
func (o Options) TextMeasurer() renderer.TextMeasurer {
	size := o.TextSize
	if size <= 0 {
		size = config.Default().TextSize
	}
	if o.Measurer == config.MeasurerCell {
		return renderer.NewCellMeasurer(size/2, size)
	}
	return renderer.DefaultFontMeasurer(size)
}
