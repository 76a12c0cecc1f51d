package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// OperationResult holds a single wire-form operation payload, shared by
// the invert, compose, and diff commands.
type OperationResult struct {
	Operation json.RawMessage `json:"operation"`
}

// NewInvertCommand creates the invert command.
func NewInvertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invert <operation.json> <document-file>",
		Short: "Derive the undo operation",
		Long: `Derive the operation that undoes the given one.

The document file must hold the text the operation applies to (its
pre-image), since inverting a delete re-inserts the removed text. Pass
"-" to read the document from stdin.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvert(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runInvert(opts *RootOptions, opPath, docPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	op, err := readOperation(opPath)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}
	doc, err := readDocument(docPath, cmd.InOrStdin())
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}

	inverse, err := op.Invert(doc)
	if err != nil {
		return fail(formatter, ExitFailure, errorCode(err), err.Error())
	}
	formatter.VerboseLog("inverse of %s is %s", op, inverse)

	return outputOperation(formatter, opts, inverse)
}
