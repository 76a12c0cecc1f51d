package ot

import (
	"fmt"
	"strings"
)

// Operation is an ordered sequence of edit primitives describing a full
// transformation from one document revision to the next.
//
// Operations are kept in normal form at all times: no stored primitive
// has length zero, and no two adjacent primitives share a kind. Append
// maintains this invariant; every other method treats the receiver as an
// immutable value.
type Operation struct {
	ops []Op
}

// New builds an Operation from the given primitives, normalizing as it
// goes. Zero-length primitives are dropped and adjacent same-kind
// primitives merge, so New(Retain(2), Retain(3)) equals New(Retain(5)).
func New(ops ...Op) *Operation {
	o := &Operation{}
	for _, op := range ops {
		o.Append(op)
	}
	return o
}

// Append adds one primitive to the end of the operation. It is the sole
// mutation primitive. Zero-length ops are silently dropped; an op of the
// same kind as the current tail merges into it (summed counts for
// Retain/Delete, concatenated text for Insert), preserving normal form.
func (o *Operation) Append(op Op) {
	if op == nil || op.Len() == 0 {
		return
	}
	if n := len(o.ops); n > 0 {
		if merged, ok := merge(o.ops[n-1], op); ok {
			o.ops[n-1] = merged
			return
		}
	}
	o.ops = append(o.ops, op)
}

// merge combines two primitives of the same kind into one.
func merge(a, b Op) (Op, bool) {
	switch x := a.(type) {
	case Retain:
		if y, ok := b.(Retain); ok {
			return x + y, true
		}
	case Insert:
		if y, ok := b.(Insert); ok {
			return x + y, true
		}
	case Delete:
		if y, ok := b.(Delete); ok {
			return x + y, true
		}
	}
	return nil, false
}

// Ops returns the primitives in order. The returned slice is a copy;
// modifying it does not affect the operation.
func (o *Operation) Ops() []Op {
	ops := make([]Op, len(o.ops))
	copy(ops, o.ops)
	return ops
}

// Equal reports whether two operations contain the same primitives in
// the same order. Both sides being in normal form, this is semantic
// equality for operations over the same base document.
func (o *Operation) Equal(other *Operation) bool {
	if len(o.ops) != len(other.ops) {
		return false
	}
	for i, op := range o.ops {
		if op != other.ops[i] {
			return false
		}
	}
	return true
}

// BaseLen returns the document length this operation must be applied to:
// the sum of retained and deleted spans.
func (o *Operation) BaseLen() int {
	n := 0
	for _, op := range o.ops {
		switch v := op.(type) {
		case Retain:
			n += v.Len()
		case Delete:
			n += v.Len()
		}
	}
	return n
}

// TargetLen returns the document length this operation produces:
// BaseLen plus LenDiff.
func (o *Operation) TargetLen() int {
	return o.BaseLen() + o.LenDiff()
}

// LenDiff returns the difference in length between the input and the
// output document when this operation is applied.
func (o *Operation) LenDiff() int {
	n := 0
	for _, op := range o.ops {
		n += op.LenDiff()
	}
	return n
}

// Apply runs the operation against doc and returns the new document.
// The operation must span doc exactly: it fails with *IncompatibleError
// if a Retain or Delete runs past the end of doc (too long) or if the
// cursor stops short of the end (too short).
func (o *Operation) Apply(doc string) (string, error) {
	runes := []rune(doc)
	var out strings.Builder
	i := 0
	for _, op := range o.ops {
		switch v := op.(type) {
		case Retain:
			if i+v.Len() > len(runes) {
				return "", errTooLong("cannot apply operation")
			}
			out.WriteString(string(runes[i : i+v.Len()]))
			i += v.Len()
		case Insert:
			out.WriteString(string(v))
		case Delete:
			if i+v.Len() > len(runes) {
				return "", errTooLong("cannot apply operation")
			}
			i += v.Len()
		}
	}
	if i != len(runes) {
		return "", errTooShort("cannot apply operation")
	}
	return out.String(), nil
}

// Invert derives the operation that undoes the receiver. It needs the
// pre-image document, since the text a Delete removed must be read back
// out of it. Applying o to doc and then the inverse to the result
// reproduces doc exactly.
func (o *Operation) Invert(doc string) (*Operation, error) {
	runes := []rune(doc)
	inverse := New()
	i := 0
	for _, op := range o.ops {
		switch v := op.(type) {
		case Retain:
			inverse.Append(v)
			i += v.Len()
		case Insert:
			inverse.Append(Delete(v.Len()))
		case Delete:
			if i+v.Len() > len(runes) {
				return nil, errTooLong("cannot invert operation")
			}
			inverse.Append(Insert(string(runes[i : i+v.Len()])))
			i += v.Len()
		}
	}
	return inverse, nil
}

// String renders the operation in a compact human-readable form, e.g.
// "retain(5) insert(\" world\")". Intended for logs and test output.
func (o *Operation) String() string {
	if len(o.ops) == 0 {
		return "noop"
	}
	parts := make([]string, len(o.ops))
	for i, op := range o.ops {
		switch v := op.(type) {
		case Retain:
			parts[i] = fmt.Sprintf("retain(%d)", int(v))
		case Insert:
			parts[i] = fmt.Sprintf("insert(%q)", string(v))
		case Delete:
			parts[i] = fmt.Sprintf("delete(%d)", int(v))
		}
	}
	return strings.Join(parts, " ")
}
