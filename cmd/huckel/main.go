// Command huckel prints the Hückel molecular-orbital energy-level diagram of
// a linear polyene, a cyclic polyene, a Platonic-solid cage or C60.
//
//	huckel cyclic-polyene 6
//	huckel platonic 20 --output yaml
//	huckel buckyball --solver gonum -v 2
//
// The flag forms -l, -c, -p, -b (and their long names) select the same
// topologies: "huckel -c 6" equals "huckel cyclic-polyene 6".
//
// Any argument error prints the usage text and exits 0. A solver or output
// failure is reported on stderr with exit status 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/huckel"
	"github.com/katalvlaran/huckel/analysis"
	"github.com/katalvlaran/huckel/builder"
	"github.com/katalvlaran/huckel/report"
	"github.com/katalvlaran/huckel/solver"
)

const usage = `usage: huckel [l | linear-polyene] num
       huckel [c | cyclic-polyene] num
       huckel [p | platonic] [4 | 6 | 8 | 12 | 20]
       huckel [b | buckyball]

flags: --solver jacobi|gonum  --output text|yaml  -v level
`

// errRuntime marks failures that are not the caller's fault; everything
// else degrades to the usage text.
var errRuntime = errors.New("huckel: runtime failure")

type options struct {
	solver string
	output string
}

// topologyCommand describes one topology selector. Each is reachable as a
// subcommand ("cyclic-polyene 6", "c 6") and as a root flag ("-c 6",
// "--cyclic-polyene 6").
type topologyCommand struct {
	name  string
	alias string
	short string
	sized bool
	mk    func(n int) builder.Topology
}

var topologyCommands = []topologyCommand{
	{name: "linear-polyene", alias: "l", short: "open polyene chain of num sites", sized: true,
		mk: func(n int) builder.Topology { return builder.Linear{N: n} }},
	{name: "cyclic-polyene", alias: "c", short: "polyene ring of num sites", sized: true,
		mk: func(n int) builder.Topology { return builder.Cyclic{N: n} }},
	{name: "platonic", alias: "p", short: "Platonic-solid cage with num vertices", sized: true,
		mk: func(n int) builder.Topology { return builder.Platonic{N: n} }},
	{name: "buckyball", alias: "b", short: "buckminsterfullerene, C60",
		mk: func(int) builder.Topology { return builder.Buckyball{} }},
}

func main() {
	code := run(os.Args[1:], os.Stdout, os.Stderr)
	klog.Flush()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code: 0 on success or
// after printing usage, 1 on a runtime failure reported to stderr.
func run(argv []string, stdout, stderr io.Writer) int {
	if err := execute(argv, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// execute runs the CLI against argv, writing results to out. Only errors
// wrapping errRuntime are returned.
func execute(argv []string, out io.Writer) error {
	root := newRootCmd(out)
	root.SetArgs(argv)

	ctx := klog.NewContext(context.Background(), klog.Background().WithName("huckel"))
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, errRuntime) {
		return err
	}
	klog.V(1).InfoS("argument error", "err", err)
	fmt.Fprint(out, usage)

	return nil
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	selected := make([]bool, len(topologyCommands))

	root := &cobra.Command{
		Use:           "huckel",
		Short:         "Hückel molecular-orbital energy levels of conjugated carbon topologies",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(c *cobra.Command, args []string) error {
			var tc *topologyCommand
			for i, on := range selected {
				if !on {
					continue
				}
				if tc != nil {
					return fmt.Errorf("more than one topology selected: %w", huckel.ErrInvalidArgument)
				}
				tc = &topologyCommands[i]
			}
			if tc == nil {
				if len(args) > 0 {
					return fmt.Errorf("unknown command %q: %w", args[0], huckel.ErrInvalidArgument)
				}
				return fmt.Errorf("missing command: %w", huckel.ErrInvalidArgument)
			}
			return runCommand(c, opts, *tc, args)
		},
	}
	root.SetOut(out)
	root.SetErr(out)
	root.SetUsageFunc(func(c *cobra.Command) error {
		fmt.Fprint(c.OutOrStdout(), usage)
		return nil
	})
	root.CompletionOptions.DisableDefaultCmd = true
	addGlobalFlags(root.PersistentFlags(), opts)

	for i, tc := range topologyCommands {
		root.Flags().BoolVarP(&selected[i], tc.name, tc.alias, false, tc.short)
		_ = root.Flags().MarkHidden(tc.name)
		root.AddCommand(subCmd(tc, opts))
	}

	return root
}

// addGlobalFlags registers the output/solver switches and klog's flags.
func addGlobalFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.solver, "solver", solver.NameJacobi, "eigensolver: jacobi | gonum")
	fs.StringVar(&opts.output, "output", string(report.FormatText), "output format: text | yaml")

	gofs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(gofs)
	fs.AddGoFlagSet(gofs)
}

func subCmd(tc topologyCommand, opts *options) *cobra.Command {
	use, posArgs := tc.name, cobra.NoArgs
	if tc.sized {
		use, posArgs = tc.name+" num", cobra.ExactArgs(1)
	}
	return &cobra.Command{
		Use:     use,
		Aliases: []string{tc.alias},
		Short:   tc.short,
		Args:    posArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runCommand(c, opts, tc, args)
		},
	}
}

// runCommand checks the positional arguments of tc and runs it.
func runCommand(c *cobra.Command, opts *options, tc topologyCommand, args []string) error {
	n := 0
	switch {
	case tc.sized && len(args) != 1:
		return fmt.Errorf("%s: want 1 argument, got %d: %w", tc.name, len(args), huckel.ErrInvalidArgument)
	case !tc.sized && len(args) != 0:
		return fmt.Errorf("%s: want no arguments, got %d: %w", tc.name, len(args), huckel.ErrInvalidArgument)
	case tc.sized:
		var err error
		if n, err = strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("%s: %q is not an integer: %w", tc.name, args[0], huckel.ErrInvalidArgument)
		}
	}

	return runTopology(c.Context(), c.OutOrStdout(), opts, tc.mk(n))
}

func runTopology(ctx context.Context, out io.Writer, opts *options, topo builder.Topology) error {
	s, err := solver.ByName(opts.solver)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	log := klog.FromContext(ctx)
	res, err := analysis.Run(topo, analysis.WithSolver(s), analysis.WithLogger(log))
	if err != nil {
		if errors.Is(err, huckel.ErrInvalidArgument) {
			return err
		}
		return fmt.Errorf("%w: %w", errRuntime, err)
	}
	log.V(1).Info("analysis complete", "topology", topo.String(), "levels", len(res.Levels))

	if err = report.Write(out, report.FromResult(res), format); err != nil {
		return fmt.Errorf("%w: %w", errRuntime, err)
	}

	return nil
}
