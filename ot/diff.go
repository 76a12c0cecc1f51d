package ot

// Diff derives an operation that rewrites before into after:
// Diff(before, after).Apply(before) == after for all inputs.
//
// The derivation retains the longest common prefix and suffix and
// replaces everything between them with a single delete/insert pair.
// That is the minimal operation for a single contiguous edit; documents
// that diverged in several places still round-trip correctly, just with
// one coarse replacement span instead of several fine ones.
func Diff(before, after string) *Operation {
	b := []rune(before)
	a := []rune(after)

	prefix := commonPrefix(b, a)
	suffix := commonSuffix(b[prefix:], a[prefix:])

	op := New()
	op.Append(Retain(prefix))
	op.Append(Delete(len(b) - prefix - suffix))
	op.Append(Insert(string(a[prefix : len(a)-suffix])))
	op.Append(Retain(suffix))
	return op
}

// commonPrefix returns the number of leading code points shared by a
// and b.
func commonPrefix(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// commonSuffix returns the number of trailing code points shared by a
// and b.
func commonSuffix(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 1; i <= n; i++ {
		if a[len(a)-i] != b[len(b)-i] {
			return i - 1
		}
	}
	return n
}
