package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/lattice/cmd/lattice/internal/document"
	"github.com/go-drift/lattice/pkg/config"
	"github.com/go-drift/lattice/pkg/engine"
	"github.com/go-drift/lattice/pkg/event"
	"github.com/go-drift/lattice/pkg/renderer"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print the resolved layout of a widget document",
		Long: `Lay out the widget tree described by a YAML document and print the
bounds of every widget as a tree.

The viewport comes from the document's width and height, unless
overridden with --width or --height. Settings such as pixel snapping and
the text measurer are read from the lattice.yaml of the nearest project
directory above the document.

With --trace FILE, one update is traced and the timeline is written to
FILE as JSON.`,
		Usage: "lattice layout [--width W] [--height H] [--plain] [--trace FILE] DOCUMENT",
		Run:   runLayout,
	})
}

type layoutOptions struct {
	path   string
	width  float64
	height float64
	plain  bool
	trace  string
}

func parseLayoutArgs(args []string) (layoutOptions, error) {
	var opts layoutOptions
	value := func(i *int, flag string) (string, error) {
		arg := args[*i]
		if v, ok := strings.CutPrefix(arg, flag+"="); ok {
			return v, nil
		}
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		*i++
		return args[*i], nil
	}
	size := func(i *int, flag string) (float64, error) {
		v, err := value(i, flag)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return 0, fmt.Errorf("%s must be a positive number, got %q", flag, v)
		}
		return f, nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch {
		case arg == "--plain":
			opts.plain = true
		case arg == "--width" || strings.HasPrefix(arg, "--width="):
			opts.width, err = size(&i, "--width")
		case arg == "--height" || strings.HasPrefix(arg, "--height="):
			opts.height, err = size(&i, "--height")
		case arg == "--trace" || strings.HasPrefix(arg, "--trace="):
			opts.trace, err = value(&i, "--trace")
		case strings.HasPrefix(arg, "-"):
			err = fmt.Errorf("unknown flag: %s", arg)
		case opts.path != "":
			err = fmt.Errorf("unexpected argument: %s", arg)
		default:
			opts.path = arg
		}
		if err != nil {
			return opts, err
		}
	}
	if opts.path == "" {
		return opts, fmt.Errorf("layout requires a document path")
	}
	return opts, nil
}

func runLayout(args []string, out io.Writer) error {
	opts, err := parseLayoutArgs(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if root, err := config.FindProjectRoot(filepath.Dir(opts.path)); err == nil {
		if cfg, err = config.Resolve(root); err != nil {
			return err
		}
	}
	engineOpts := engine.OptionsFrom(cfg)
	engineOpts.Apply()

	doc, err := document.Load(opts.path)
	if err != nil {
		return err
	}
	root, err := doc.Root.Element()
	if err != nil {
		return err
	}

	viewport := doc.Size()
	if opts.width > 0 {
		viewport.Width = opts.width
	}
	if opts.height > 0 {
		viewport.Height = opts.height
	}

	r := renderer.NewRecorder(engineOpts.TextMeasurer())
	ui := engine.Build(root, viewport, engine.NewCache(), r)

	if opts.trace != "" {
		if err := writeTrace(ui, r, opts.trace); err != nil {
			return err
		}
	}

	styles := document.DefaultStyles()
	if opts.plain {
		styles = document.PlainStyles()
	}
	fmt.Fprintf(out, "viewport %sx%s\n", formatFloat(viewport.Width), formatFloat(viewport.Height))
	fmt.Fprintln(out, document.Tree(doc.Root, ui.Layout(), styles).String())
	return nil
}

// traceReport is the JSON written by --trace.
type traceReport struct {
	Timeline engine.Timeline `json:"timeline"`
	// Memory is the growth of the heap across the traced update.
	Memory engine.MemorySample `json:"memory"`
}

// writeTrace runs an empty update with tracing on and writes the timeline.
func writeTrace(ui *engine.UserInterface[document.Message], r *renderer.Recorder, path string) error {
	buf := engine.NewTraceBuffer(1, 0)
	ui.SetTrace(buf)
	before := engine.ReadMemorySample()
	ui.Update(nil, event.Unavailable(), r, nil)
	after := engine.ReadMemorySample()
	ui.SetTrace(nil)

	report := traceReport{Timeline: buf.Snapshot(), Memory: after.Delta(before)}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
