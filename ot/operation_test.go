package ot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendMergesSameKind(t *testing.T) {
	tests := []struct {
		name string
		ops  []Op
		want []Op
	}{
		{"retains sum", []Op{Retain(2), Retain(3)}, []Op{Retain(5)}},
		{"inserts concatenate", []Op{Insert("foo"), Insert("bar")}, []Op{Insert("foobar")}},
		{"deletes sum", []Op{Delete(1), Delete(4)}, []Op{Delete(5)}},
		{"different kinds stay separate", []Op{Retain(1), Insert("x"), Delete(2)}, []Op{Retain(1), Insert("x"), Delete(2)}},
		{"merge only touches the tail", []Op{Retain(1), Delete(2), Retain(3), Retain(4)}, []Op{Retain(1), Delete(2), Retain(7)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := New(tt.ops...)
			assert.Equal(t, tt.want, o.Ops())
		})
	}
}

func TestAppendDropsZeroLength(t *testing.T) {
	o := New()
	o.Append(Retain(0))
	o.Append(Insert(""))
	o.Append(Delete(0))
	assert.Empty(t, o.Ops())

	// A zero-length op between two same-kind ops must not block merging.
	o.Append(Retain(2))
	o.Append(Insert(""))
	o.Append(Retain(3))
	assert.Equal(t, []Op{Retain(5)}, o.Ops())
}

func TestAppendNormalFormLengthAccounting(t *testing.T) {
	// Merging preserves total length: appending two same-kind ops yields
	// one op whose length is the sum of the two.
	o := New(Retain(2))
	o.Append(Retain(7))
	ops := o.Ops()
	require.Len(t, ops, 1)
	assert.Equal(t, 9, ops[0].Len())
}

func TestOpsReturnsCopy(t *testing.T) {
	o := New(Retain(1), Insert("x"))
	ops := o.Ops()
	ops[0] = Delete(9)
	assert.Equal(t, []Op{Retain(1), Insert("x")}, o.Ops())
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		op   *Operation
		doc  string
		want string
	}{
		{"append text", New(Retain(5), Insert(" world")), "hello", "hello world"},
		{"delete everything", New(Delete(5)), "hello", ""},
		{"replace middle", New(Retain(1), Delete(3), Insert("ipp"), Retain(1)), "hello", "hippo"},
		{"noop on empty document", New(), "", ""},
		{"insert into empty document", New(Insert("hi")), "", "hi"},
		{"multibyte retain and delete", New(Retain(2), Delete(2), Insert("ß")), "äö€x", "äöß"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op.Apply(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyTooLong(t *testing.T) {
	tests := []struct {
		name string
		op   *Operation
		doc  string
	}{
		{"retain past end", New(Retain(10)), "hi"},
		{"delete past end", New(Retain(1), Delete(5)), "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Apply(tt.doc)
			require.Error(t, err)
			assert.True(t, IsIncompatible(err))
			var ie *IncompatibleError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, CodeTooLong, ie.Code)
		})
	}
}

func TestApplyTooShort(t *testing.T) {
	_, err := New(Retain(1)).Apply("hi")
	require.Error(t, err)
	var ie *IncompatibleError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, CodeTooShort, ie.Code)

	// Inserts alone never consume the document.
	_, err = New(Insert("x")).Apply("hi")
	require.Error(t, err)
	assert.True(t, IsIncompatible(err))
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		op   *Operation
		doc  string
		want *Operation
	}{
		{"retain is self-inverse", New(Retain(5)), "hello", New(Retain(5))},
		{"insert becomes delete", New(Retain(5), Insert(" world")), "hello", New(Retain(5), Delete(6))},
		{"delete restores removed text", New(Delete(5)), "hello", New(Insert("hello"))},
		{"mixed edit", New(Retain(1), Delete(3), Insert("ipp"), Retain(1)), "hello", New(Retain(1), Insert("ell"), Delete(3), Retain(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.op.Invert(tt.doc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(inv), "got %s, want %s", inv, tt.want)
		})
	}
}

func TestInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		op   *Operation
		doc  string
	}{
		{"append", New(Retain(5), Insert(" world")), "hello"},
		{"delete all", New(Delete(5)), "hello"},
		{"replace middle", New(Retain(1), Delete(3), Insert("ipp"), Retain(1)), "hello"},
		{"multibyte", New(Retain(1), Delete(2), Insert("xy"), Retain(1)), "ä€öü"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied, err := tt.op.Apply(tt.doc)
			require.NoError(t, err)

			inv, err := tt.op.Invert(tt.doc)
			require.NoError(t, err)

			restored, err := inv.Apply(applied)
			require.NoError(t, err)
			assert.Equal(t, tt.doc, restored)
		})
	}
}

func TestInvertTooLong(t *testing.T) {
	_, err := New(Delete(10)).Invert("hi")
	require.Error(t, err)
	var ie *IncompatibleError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, CodeTooLong, ie.Code)
}

func TestLengths(t *testing.T) {
	tests := []struct {
		name      string
		op        *Operation
		baseLen   int
		targetLen int
		lenDiff   int
	}{
		{"noop", New(), 0, 0, 0},
		{"pure insert", New(Insert("abc")), 0, 3, 3},
		{"pure delete", New(Delete(4)), 4, 0, -4},
		{"mixed", New(Retain(2), Delete(3), Insert("xy")), 5, 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.baseLen, tt.op.BaseLen())
			assert.Equal(t, tt.targetLen, tt.op.TargetLen())
			assert.Equal(t, tt.lenDiff, tt.op.LenDiff())
		})
	}
}

func TestLengthAccounting(t *testing.T) {
	// len(op.Apply(doc)) == len(doc) + op.LenDiff(), counted in code points.
	op := New(Retain(2), Delete(3), Insert("longer text"))
	doc := "héllo"
	got, err := op.Apply(doc)
	require.NoError(t, err)
	assert.Equal(t, len([]rune(doc))+op.LenDiff(), len([]rune(got)))
	assert.Equal(t, op.TargetLen(), len([]rune(got)))
}

func TestEqual(t *testing.T) {
	assert.True(t, New(Retain(2), Insert("x")).Equal(New(Retain(1), Retain(1), Insert("x"))))
	assert.False(t, New(Retain(2)).Equal(New(Retain(3))))
	assert.False(t, New(Insert("a")).Equal(New(Delete(1))))
	assert.True(t, New().Equal(New()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "noop", New().String())
	assert.Equal(t, `retain(2) insert("x") delete(3)`, New(Retain(2), Insert("x"), Delete(3)).String())
}
