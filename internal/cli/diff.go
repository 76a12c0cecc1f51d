package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/coding4m/ot/ot"
)

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	var nfc bool

	cmd := &cobra.Command{
		Use:   "diff <before-file> <after-file>",
		Short: "Derive the operation between two documents",
		Long: `Derive a wire-form operation that rewrites the first document into
the second. With --nfc both documents are normalized to Unicode NFC
first, so visually identical text composed differently produces the
same operation on every replica.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(rootOpts, args[0], args[1], nfc, cmd)
		},
	}
	cmd.Flags().BoolVar(&nfc, "nfc", false, "normalize both documents to Unicode NFC before diffing")
	return cmd
}

func runDiff(opts *RootOptions, beforePath, afterPath string, nfc bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	before, err := readDocument(beforePath, cmd.InOrStdin())
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}
	after, err := readDocument(afterPath, cmd.InOrStdin())
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeLoad, err.Error())
	}

	if nfc {
		before = norm.NFC.String(before)
		after = norm.NFC.String(after)
	}

	op := ot.Diff(before, after)
	formatter.VerboseLog("diff is %s", op)

	return outputOperation(formatter, opts, op)
}
