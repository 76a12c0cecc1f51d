package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coding4m/ot/ot"
)

// TransformResult holds the transform command's JSON payload.
type TransformResult struct {
	// LeftPrime applies on top of the right operation's output.
	LeftPrime json.RawMessage `json:"left_prime"`

	// RightPrime applies on top of the left operation's output.
	RightPrime json.RawMessage `json:"right_prime"`
}

// NewTransformCommand creates the transform command.
func NewTransformCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform <left.json> <right.json>",
		Short: "Reconcile two concurrent operations",
		Long: `Reconcile two concurrent operations authored against the same base
document into a pair (left', right') where each applies on top of the
other side's result. When both operations insert at the same position,
the left operation's text is placed first.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runTransform(opts *RootOptions, leftPath, rightPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	left, err := readOperation(leftPath)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}
	right, err := readOperation(rightPath)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}

	leftPrime, rightPrime, err := ot.Transform(left, right)
	if err != nil {
		return fail(formatter, ExitFailure, errorCode(err), err.Error())
	}
	formatter.VerboseLog("transformed into %s and %s", leftPrime, rightPrime)

	leftJSON, err := json.Marshal(leftPrime)
	if err != nil {
		return fail(formatter, ExitFailure, "INTERNAL", err.Error())
	}
	rightJSON, err := json.Marshal(rightPrime)
	if err != nil {
		return fail(formatter, ExitFailure, "INTERNAL", err.Error())
	}

	if opts.Format == "json" {
		return formatter.Success(TransformResult{
			LeftPrime:  leftJSON,
			RightPrime: rightJSON,
		})
	}
	_, err = fmt.Fprintf(formatter.Writer, "left':  %s\nright': %s\n", leftJSON, rightJSON)
	return err
}
