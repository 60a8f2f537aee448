// Package cmd implements the lattice CLI commands.
//
// A root command dispatches to subcommands registered from init functions.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/lattice/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string, out io.Writer) error
}

var rootCmd = &Command{
	Name:  "lattice",
	Short: "lattice - retained-mode widget toolkit",
	Long: `lattice lays out widget trees described in YAML and prints the
resolved bounds of every widget.

Use "lattice <command> --help" for more information about a command.`,
	Usage: "lattice <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return Run(os.Args[1:], os.Stdout)
}

// Run runs the CLI with args, writing command output to out. A panicking
// command is reported through the error handler and returned as an error.
func Run(args []string, out io.Writer) (err error) {
	defer errors.RecoverWithCallback("cli", func(r any) {
		err = fmt.Errorf("internal error: %v", r)
	})

	if len(args) == 0 {
		printHelp(out)
		return nil
	}
	name := args[0]
	switch name {
	case "-h", "--help", "help":
		printHelp(out)
		return nil
	case "-v", "--version":
		name = "version"
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", name)
		printHelp(os.Stderr)
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(out, cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs, out)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, rootCmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range ordered {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  lattice layout form.yaml              Print the layout of form.yaml")
	fmt.Fprintln(w, "  lattice layout --width 320 form.yaml  Lay out in a 320px wide viewport")
}

func printCommandHelp(w io.Writer, cmd *Command) {
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
}
