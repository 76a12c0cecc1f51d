// Package harness provides conformance testing for the OT kernel.
//
// The harness loads concurrent-edit scenarios, runs them through
// transform and compose, and validates the convergence property as an
// executable contract: applying left then right' must produce the same
// document as applying right then left'.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	base: "hello"
//	left: ["X", 5]
//	right: [5, "Y"]
//	merged: "XhelloY"
//
// left and right are concurrent operations against base, written in the
// wire form of the ot package: positive integer = retain, string =
// insert, negative integer = delete. merged is the expected converged
// document; when omitted, the harness still requires both application
// orders to agree, it just doesn't pin the result.
//
// # Deterministic Testing
//
// A scenario run is a pure function of the scenario file, so trace
// snapshots are byte-stable and compared against golden files under
// testdata/golden (regenerate with `go test ./internal/harness -update`).
package harness
