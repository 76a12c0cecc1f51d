// Package ot implements the operational-transformation kernel for
// collaborative plain-text editing.
//
// The kernel is an algebra over edit operations. An Operation is an
// ordered sequence of three primitives:
//
//   - Retain(n): skip n code points of the document unchanged
//   - Insert(s): insert the string s at the cursor
//   - Delete(n): remove the next n code points
//
// read left to right over a source document. The package provides the
// four algebraic functions an editing system needs:
//
//   - Apply: run an operation against a document, producing the new document
//   - Invert: derive the undo operation against the pre-image document
//   - Compose: collapse two sequential operations into one
//   - Transform: reconcile two concurrent operations from the same base
//     so that each can be applied on top of the other's result
//
// Transform satisfies the convergence property: for concurrent a and b
// with (a', b') = Transform(a, b), applying a then b' yields the same
// document as applying b then a'. When both operations insert at the
// same position, a's text is placed before b's.
//
// Key design constraints:
//   - Op is a sealed sum type; every algorithm dispatches exhaustively
//   - Operations are always in normal form (adjacent same-kind primitives
//     merged, no zero-length primitives)
//   - All lengths count Unicode code points, not bytes
//   - Every function is pure; nothing in this package holds shared state
//
// Misaligned inputs (an operation that does not span its document, or a
// compose/transform pair whose lengths do not line up) fail with
// *IncompatibleError and no partial result. Callers must treat that as
// "these inputs do not belong together" rather than retrying.
package ot
