package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/coding4m/ot/ot"
)

// Harness executes conformance scenarios against the kernel.
type Harness struct {
	logger *slog.Logger
}

// New creates a harness. A nil logger discards all output.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{logger: logger}
}

// Result captures everything a scenario run produced. All operation
// fields use the kernel's human-readable rendering, so results are
// byte-stable for golden comparison.
type Result struct {
	Scenario string `json:"scenario"`
	Base     string `json:"base"`

	// The two concurrent operations, normalized.
	Left  string `json:"left"`
	Right string `json:"right"`

	// The transformed pair: LeftPrime applies after Right, RightPrime
	// after Left.
	LeftPrime  string `json:"left_prime"`
	RightPrime string `json:"right_prime"`

	// Each side's document before the other side's edit arrives.
	AfterLeft  string `json:"after_left"`
	AfterRight string `json:"after_right"`

	// The document both orders converge to.
	Merged string `json:"merged"`
}

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Compile left and right from wire form
//  2. Transform them into (left', right')
//  3. Apply left then right', and right then left'
//  4. Require both orders to produce the same document
//  5. Check the expected merged document, when the scenario pins one
//
// A failed step aborts the run; nothing is retried.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	left, err := ot.FromWire(scenario.Left)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: left: %w", scenario.Name, err)
	}
	right, err := ot.FromWire(scenario.Right)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: right: %w", scenario.Name, err)
	}
	h.logger.Debug("compiled scenario operations",
		"scenario", scenario.Name, "left", left.String(), "right", right.String())

	leftPrime, rightPrime, err := ot.Transform(left, right)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: transform: %w", scenario.Name, err)
	}

	afterLeft, err := left.Apply(scenario.Base)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: apply left: %w", scenario.Name, err)
	}
	viaLeft, err := rightPrime.Apply(afterLeft)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: apply right' after left: %w", scenario.Name, err)
	}

	afterRight, err := right.Apply(scenario.Base)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: apply right: %w", scenario.Name, err)
	}
	viaRight, err := leftPrime.Apply(afterRight)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: apply left' after right: %w", scenario.Name, err)
	}

	if viaLeft != viaRight {
		return nil, fmt.Errorf("scenario %s: divergence: left-first produced %q, right-first produced %q",
			scenario.Name, viaLeft, viaRight)
	}
	if scenario.Merged != nil && viaLeft != *scenario.Merged {
		return nil, fmt.Errorf("scenario %s: converged to %q, expected %q",
			scenario.Name, viaLeft, *scenario.Merged)
	}
	h.logger.Debug("scenario converged", "scenario", scenario.Name, "merged", viaLeft)

	return &Result{
		Scenario:   scenario.Name,
		Base:       scenario.Base,
		Left:       left.String(),
		Right:      right.String(),
		LeftPrime:  leftPrime.String(),
		RightPrime: rightPrime.String(),
		AfterLeft:  afterLeft,
		AfterRight: afterRight,
		Merged:     viaLeft,
	}, nil
}

// Run executes a scenario with logging discarded.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}
