package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/go-drift/lattice/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long: `Show the CLI version, the Go toolchain it was built with and the
configuration schema version it understands.`,
		Usage: "lattice version",
		Run:   runVersion,
	})
}

func runVersion(_ []string, out io.Writer) error {
	version := Version
	if info, ok := debug.ReadBuildInfo(); ok && version == "0.1.0-dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			version = v
		}
	}
	fmt.Fprintf(out, "lattice version %s (built %s)\n", version, BuildTime)
	fmt.Fprintf(out, "  go:     %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "  config: %s (%s)\n", config.FileName, config.Default().Version)
	return nil
}
