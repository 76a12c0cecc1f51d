package ot

// opIter walks an operation's primitives left to right. Partial
// consumption lives in the caller's pending slot, not the iterator: the
// co-traversal loops fetch a fresh primitive only when the pending one
// has been fully consumed (set to nil by shortenPair).
type opIter struct {
	ops []Op
	i   int
}

func (it *opIter) next() Op {
	if it.i >= len(it.ops) {
		return nil
	}
	op := it.ops[it.i]
	it.i++
	return op
}

// Compose combines the receiver with next, which must apply to the
// receiver's output, into a single operation with the same net effect.
// Compose(a, b).Apply(doc) equals b.Apply(a.Apply(doc)) for every doc
// valid against a.
//
// Fails with *IncompatibleError when the two operations' lengths do not
// line up: the receiver's output shorter than next consumes (too short)
// or longer than next covers (too long).
func (o *Operation) Compose(next *Operation) (*Operation, error) {
	iterA := opIter{ops: o.ops}
	iterB := opIter{ops: next.ops}
	combined := New()

	var a, b Op
	for {
		if a == nil {
			a = iterA.next()
		}
		if b == nil {
			b = iterB.next()
		}
		if a == nil && b == nil {
			// Both operations fully processed.
			return combined, nil
		}

		// A delete in the first operation removed text the second never
		// saw; an insert in the second adds text the first never saw.
		// Either passes through unchanged and consumes only its own side.
		if del, ok := a.(Delete); ok {
			combined.Append(del)
			a = nil
			continue
		}
		if ins, ok := b.(Insert); ok {
			combined.Append(ins)
			b = nil
			continue
		}

		if a == nil {
			return nil, &IncompatibleError{
				Code:    CodeTooShort,
				Message: "cannot compose operations: first operation is too short",
			}
		}
		if b == nil {
			return nil, &IncompatibleError{
				Code:    CodeTooLong,
				Message: "cannot compose operations: first operation is too long",
			}
		}

		// Both sides now address the same span of the intermediate
		// document: a is Retain or Insert, b is Retain or Delete.
		n := minLen(a, b)
		switch va := a.(type) {
		case Retain:
			switch b.(type) {
			case Retain:
				combined.Append(Retain(n))
			case Delete:
				combined.Append(Delete(n))
			}
		case Insert:
			switch b.(type) {
			case Retain:
				combined.Append(Insert(string([]rune(string(va))[:n])))
			case Delete:
				// b deletes exactly the text a inserted; they cancel.
			}
		}
		a, b = shortenPair(a, b)
	}
}

func minLen(a, b Op) int {
	if la, lb := a.Len(), b.Len(); la < lb {
		return la
	}
	return b.Len()
}
