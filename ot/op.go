package ot

import "unicode/utf8"

// Op is a sealed interface representing one edit primitive.
// Only Retain, Insert, and Delete implement it; algorithms rely on the
// set being closed and dispatch with exhaustive type switches.
type Op interface {
	// Len returns the primitive's length in Unicode code points.
	// A stored Op never has length zero.
	Len() int

	// LenDiff returns the primitive's effect on document length:
	// 0 for Retain, +Len for Insert, -Len for Delete.
	LenDiff() int

	op() // Sealed - only these three types implement it
}

// Retain skips the given number of code points at the cursor.
type Retain int

func (Retain) op() {}

// Len returns the retained span length.
func (r Retain) Len() int { return int(r) }

// LenDiff returns 0; retains never change document length.
func (Retain) LenDiff() int { return 0 }

// Insert adds its text at the cursor.
type Insert string

func (Insert) op() {}

// Len returns the inserted text's length in code points.
func (i Insert) Len() int { return utf8.RuneCountInString(string(i)) }

// LenDiff returns the inserted length; inserts grow the document.
func (i Insert) LenDiff() int { return i.Len() }

// Delete removes the given number of code points at the cursor.
type Delete int

func (Delete) op() {}

// Len returns the deleted span length.
func (d Delete) Len() int { return int(d) }

// LenDiff returns the negated length; deletes shrink the document.
func (d Delete) LenDiff() int { return -int(d) }

// shorten returns op with its first n code points consumed.
// Callers guarantee 0 < n < op.Len(), so the result is never empty.
func shorten(op Op, n int) Op {
	switch v := op.(type) {
	case Retain:
		return Retain(int(v) - n)
	case Insert:
		return Insert(string([]rune(string(v))[n:]))
	case Delete:
		return Delete(int(v) - n)
	}
	return nil // unreachable: Op is sealed
}

// shortenPair consumes the overlapping span of two co-traversed ops.
// The shorter side (or both, on equal lengths) comes back nil, signalling
// the caller to fetch its next op; the longer side keeps its remainder.
func shortenPair(a, b Op) (Op, Op) {
	la, lb := a.Len(), b.Len()
	switch {
	case la == lb:
		return nil, nil
	case la > lb:
		return shorten(a, lb), nil
	default:
		return nil, shorten(b, la)
	}
}
