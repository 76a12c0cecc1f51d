package cli

import (
	"github.com/spf13/cobra"
)

// ApplyResult holds the apply command's JSON payload.
type ApplyResult struct {
	Document string `json:"document"`
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <operation.json> <document-file>",
		Short: "Apply an operation to a document",
		Long: `Apply a wire-form operation to a document and print the result.

The operation file holds a JSON array in wire form (positive integer =
retain, string = insert, negative integer = delete). Pass "-" as the
document file to read the document from stdin.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(rootOpts, args[0], args[1], cmd)
		},
	}
	return cmd
}

func runApply(opts *RootOptions, opPath, docPath string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	op, err := readOperation(opPath)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}
	doc, err := readDocument(docPath, cmd.InOrStdin())
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}
	formatter.VerboseLog("applying %s to %d code points", op, op.BaseLen())

	result, err := op.Apply(doc)
	if err != nil {
		return fail(formatter, ExitFailure, errorCode(err), err.Error())
	}

	if opts.Format == "json" {
		return formatter.Success(ApplyResult{Document: result})
	}
	return formatter.Success(result)
}
