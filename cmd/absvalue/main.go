// Command absvalue prints the magnitude of the first value of a sequence.
//
// Usage:
//
//	absvalue [flags] [-- value ...]
//
// Without arguments it uses the built-in sequence -1.4, 2.6, -3.2 and prints
//
//	this is 1.4
//
// Values may be given after "--" so that negative numbers are not read as
// flags:
//
//	absvalue -- -5 2
//	absvalue -v -- -0.25
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-magnitude/dsp/magnitude"
	"github.com/cwbudde/algo-magnitude/internal/logging"
)

// defaultSequence is used when no values are given on the command line.
var defaultSequence = []float64{-1.4, 2.6, -3.2}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintf(stderr, "hint: %s\n", hint)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "absvalue [flags] [-- value ...]",
		Short: "Print the magnitude of the first value of a sequence",
		Example: `  absvalue
  absvalue -- -5 2
  absvalue -v -- -0.25`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(stderr, verbose)
			defer func() { _ = log.Sync() }()

			seq := defaultSequence
			if len(args) > 0 {
				parsed, err := parseSequence(args)
				if err != nil {
					return err
				}
				seq = parsed
			}

			return printFirst(stdout, log, seq)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log kernel selection and sequence size to stderr")

	return cmd
}

func parseSequence(args []string) ([]float64, error) {
	seq := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "invalid value %q at position %d", arg, i+1),
				"values must be decimal numbers; put them after -- when negative",
			)
		}
		seq[i] = v
	}
	return seq, nil
}

func printFirst(w io.Writer, log *zap.SugaredLogger, seq []float64) error {
	res := magnitude.AbsSlice(seq)
	log.Debugw("magnitudes computed", "kernel", magnitude.Kernel(), "len", len(res))

	if len(res) == 0 {
		return errors.New("empty sequence")
	}

	if _, err := fmt.Fprintf(w, "this is %v\n", res[0]); err != nil {
		return errors.Wrap(err, "write result")
	}
	return nil
}
