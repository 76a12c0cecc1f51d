package ot

// Transform reconciles two concurrent operations a and b that were both
// authored against the same base document. It returns (a', b') such that
// b' applied after a yields the same document as a' applied after b; the
// replicas converge no matter which operation a caller saw first.
//
// Intention preservation rules:
//   - An insert always wins over a concurrent retain or delete at the
//     same position; the other side receives a matching Retain so it
//     skips the inserted text.
//   - When both sides insert at the same position, a's text is placed
//     before b's. The ordering is fixed, not configurable; callers that
//     need a different priority swap the arguments.
//   - Spans deleted by both sides are dropped from both results; the
//     text is already gone, nobody deletes it twice.
//
// Fails with *IncompatibleError when a and b imply different base
// document lengths, since such operations cannot be concurrent edits of
// one document.
func Transform(a, b *Operation) (aPrime, bPrime *Operation, err error) {
	if a.BaseLen() != b.BaseLen() {
		return nil, nil, errBaseMismatch(a.BaseLen(), b.BaseLen())
	}

	iterA := opIter{ops: a.ops}
	iterB := opIter{ops: b.ops}
	aPrime = New()
	bPrime = New()

	var curA, curB Op
	for {
		if curA == nil {
			curA = iterA.next()
		}
		if curB == nil {
			curB = iterB.next()
		}
		if curA == nil && curB == nil {
			// Both operations fully processed.
			return aPrime, bPrime, nil
		}

		// Inserts take priority; checking a first puts a's text ahead of
		// b's when both insert at the same position.
		if ins, ok := curA.(Insert); ok {
			aPrime.Append(ins)
			bPrime.Append(Retain(ins.Len()))
			curA = nil
			continue
		}
		if ins, ok := curB.(Insert); ok {
			aPrime.Append(Retain(ins.Len()))
			bPrime.Append(ins)
			curB = nil
			continue
		}

		// With inserts handled, both sides are Retain/Delete over the
		// same original span. Equal base lengths guarantee the sides
		// exhaust together, so neither cursor is nil here.
		if curA == nil || curB == nil {
			return nil, nil, errBaseMismatch(a.BaseLen(), b.BaseLen())
		}

		n := minLen(curA, curB)
		switch curA.(type) {
		case Retain:
			switch curB.(type) {
			case Retain:
				aPrime.Append(Retain(n))
				bPrime.Append(Retain(n))
			case Delete:
				bPrime.Append(Delete(n))
			}
		case Delete:
			switch curB.(type) {
			case Retain:
				aPrime.Append(Delete(n))
			case Delete:
				// Both deleted the same span; nothing left to reconcile.
			}
		}
		curA, curB = shortenPair(curA, curB)
	}
}
