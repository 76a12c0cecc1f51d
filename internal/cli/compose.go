package cli

import (
	"github.com/spf13/cobra"
)

// NewComposeCommand creates the compose command.
func NewComposeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose <first.json> <second.json>",
		Short: "Combine two sequential operations into one",
		Long: `Combine two sequential operations into a single operation with the
same net effect. The second operation must apply to the first one's
output; misaligned lengths fail with an incompatibility error.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompose(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runCompose(opts *RootOptions, firstPath, secondPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	first, err := readOperation(firstPath)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}
	second, err := readOperation(secondPath)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}

	combined, err := first.Compose(second)
	if err != nil {
		return fail(formatter, ExitFailure, errorCode(err), err.Error())
	}
	formatter.VerboseLog("composed %s with %s into %s", first, second, combined)

	return outputOperation(formatter, opts, combined)
}
