package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/coding4m/ot/ot"
)

// Error codes for CLI responses that don't originate in the kernel.
const (
	ErrCodeLoad = "LOAD_ERROR"
)

// readOperation loads a wire-form operation from a JSON file.
func readOperation(path string) (*ot.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read operation file: %w", err)
	}
	var op ot.Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, fmt.Errorf("failed to parse operation file %s: %w", path, err)
	}
	return &op, nil
}

// readDocument loads document text from a file, or from stdin when path
// is "-". The bytes are taken verbatim; trailing newlines count.
func readDocument(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read document from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document file: %w", err)
	}
	return string(data), nil
}

// errorCode maps a kernel error to a response code.
func errorCode(err error) string {
	var ie *ot.IncompatibleError
	if errors.As(err, &ie) {
		return string(ie.Code)
	}
	return "INTERNAL"
}

// fail renders the error through the formatter and returns an ExitError
// carrying the process exit code. The formatter already told the user
// everything; main only needs the code.
func fail(f *Formatter, exitCode int, code, message string) error {
	_ = f.Error(code, message)
	return &ExitError{Code: exitCode, Message: message}
}

// outputOperation renders a wire-form operation in the configured
// format: the raw wire array in text mode, an OperationResult envelope
// in JSON mode.
func outputOperation(f *Formatter, opts *RootOptions, op *ot.Operation) error {
	data, err := json.Marshal(op)
	if err != nil {
		return fail(f, ExitFailure, "INTERNAL", err.Error())
	}
	if opts.Format == "json" {
		return f.Success(OperationResult{Operation: data})
	}
	return f.Success(string(data))
}

// newFormatter builds the per-command formatter. Verbose logs go to
// stderr so they never corrupt JSON output.
func newFormatter(opts *RootOptions, out, errOut io.Writer) *Formatter {
	return &Formatter{
		Format:    opts.Format,
		Writer:    out,
		ErrWriter: errOut,
		Verbose:   opts.Verbose,
	}
}
