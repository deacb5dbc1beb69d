// Package cli wires the minpath command tree: configuration, logging,
// metrics and the edge-list collaborators around the path finder.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitNoPath  = 2
)

// exitError carries a process exit code alongside the user-facing error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs the CLI against the real process streams and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command tree with explicit arguments and streams.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	a.flushMetrics()
	if err == nil {
		return ExitOK
	}

	a.paint(color.FgRed, color.Bold).Fprintf(stderr, "error: %v\n", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return ExitFailure
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "minpath",
		Short: "minpath - minimum-cost paths over directed weighted graphs",
		Long: `minpath reads a directed graph as "<from> <to> <cost>" lines (or a YAML
"edges:" document) and finds the cheapest path between two nodes.

Examples:
  # cheapest path from node 1 to node 5
  minpath find -g graph.txt --from 1 --to 5

  # type the edges in, finish with "end"
  minpath find -g - --from 1 --to 5

  # print the parsed graph
  minpath print -g graph.yaml

  # generate a 50x50 grid to play with
  minpath gen grid --rows 50 --cols 50 > grid.txt`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&a.flags.graph, "graph", "g", "", `edge list file, or "-" to read from stdin`)
	pf.BoolVarP(&a.flags.json, "json", "j", false, "print results as JSON")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug|info|warn|error")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "text|json")
	pf.StringVar(&a.flags.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile on exit")

	root.AddCommand(newFindCommand(a))
	root.AddCommand(newPrintCommand(a))
	root.AddCommand(newGenCommand(a))
	root.AddCommand(newVersionCommand())

	return root
}

// errorf wraps a message with an exit code.
func errorf(code int, format string, args ...any) error {
	return &exitError{code: code, err: fmt.Errorf(format, args...)}
}
