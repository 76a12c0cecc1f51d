package ot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalWireForm(t *testing.T) {
	tests := []struct {
		name string
		op   *Operation
		want string
	}{
		{"noop", New(), "[]"},
		{"append text", New(Retain(5), Insert(" world")), `[5," world"]`},
		{"all three kinds", New(Retain(2), Delete(3), Insert("!")), `[2,-3,"!"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.op)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestUnmarshalWireForm(t *testing.T) {
	tests := []struct {
		name string
		data string
		want *Operation
	}{
		{"empty array", `[]`, New()},
		{"append text", `[5," world"]`, New(Retain(5), Insert(" world"))},
		{"negative is delete", `[2,-3,"!"]`, New(Retain(2), Delete(3), Insert("!"))},
		{"adjacent entries normalize", `[1,1,"a","b",-1,-2]`, New(Retain(2), Insert("ab"), Delete(3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var op Operation
			require.NoError(t, json.Unmarshal([]byte(tt.data), &op))
			assert.True(t, tt.want.Equal(&op), "got %s, want %s", &op, tt.want)
		})
	}
}

func TestUnmarshalRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero length", `[0]`},
		{"float length", `[1.5]`},
		{"empty insert", `[""]`},
		{"boolean entry", `[true]`},
		{"nested array", `[[1]]`},
		{"not an array", `{"retain":5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var op Operation
			assert.Error(t, json.Unmarshal([]byte(tt.data), &op))
		})
	}
}

func TestUnmarshalReplacesReceiver(t *testing.T) {
	op := New(Delete(7))
	require.NoError(t, json.Unmarshal([]byte(`[3]`), op))
	assert.True(t, New(Retain(3)).Equal(op))
}

func TestWireRoundTrip(t *testing.T) {
	ops := []*Operation{
		New(),
		New(Insert("héllo €")),
		New(Retain(1), Insert("x"), Delete(2), Retain(4), Insert("yz")),
	}
	for _, op := range ops {
		data, err := json.Marshal(op)
		require.NoError(t, err)
		var decoded Operation
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, op.Equal(&decoded), "round trip changed %s to %s", op, &decoded)
	}
}

func TestFromWire(t *testing.T) {
	op, err := FromWire([]any{5, " world"})
	require.NoError(t, err)
	assert.True(t, New(Retain(5), Insert(" world")).Equal(op))

	op, err = FromWire([]any{int64(-2), "x"})
	require.NoError(t, err)
	assert.True(t, New(Delete(2), Insert("x")).Equal(op))

	_, err = FromWire([]any{0})
	assert.Error(t, err)

	_, err = FromWire([]any{3.5})
	assert.Error(t, err)
}
