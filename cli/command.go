package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewCommand returns the root command. Rooms are read from the command's
// input (cmd.SetIn), results go to its output, logs to its error stream.
func NewCommand() *cobra.Command {
	var (
		mode    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:           "roomgraph",
		Short:         "MST and TSP solvers over 2-D rooms",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", ErrInvalidOption, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mode == "" && cmd.Flags().Changed("mode") {
				return fmt.Errorf("%w: empty value", ErrInvalidMode)
			}
			m, err := ParseMode(mode)
			if err != nil {
				return err
			}
			r := newRunner(Options{Mode: m, Verbose: verbose}, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

			return r.run()
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&mode, "mode", "m", "", "algorithm: MST, FASTTSP or OPTTSP")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log timings and host details to standard error")

	// scanArgs reports missing values and unknown options first; anything
	// pflag still rejects (e.g. --verbose=maybe) is an invalid option.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrInvalidOption, err)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		fmt.Fprint(c.OutOrStdout(), usageText)
	})

	return cmd
}

// Execute runs the command line args against the given streams and returns
// the process exit status.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	switch err := scanArgs(args); {
	case errors.Is(err, errHelp):
		fmt.Fprint(stdout, usageText)
		return 0
	case err != nil:
		fmt.Fprintln(stderr, diagnostic(err))
		return 1
	}

	cmd := NewCommand()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, diagnostic(err))
		return 1
	}

	return 0
}
