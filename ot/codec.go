package ot

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire format: an operation serializes to a flat JSON array in the form
// used across the OT ecosystem. A positive integer is a Retain, a string
// is an Insert, a negative integer is a Delete:
//
//	[5, " world"]        retain(5) insert(" world")
//	[2, -3, "!"]         retain(2) delete(3) insert("!")
//
// Zero and non-integer numbers are invalid on the wire. Decoding feeds
// every entry through Append, so a decoded operation is always in normal
// form even if the sender's wasn't.

// MarshalJSON implements json.Marshaler using the wire format above.
func (o *Operation) MarshalJSON() ([]byte, error) {
	entries := make([]any, len(o.ops))
	for i, op := range o.ops {
		switch v := op.(type) {
		case Retain:
			entries[i] = int(v)
		case Insert:
			entries[i] = string(v)
		case Delete:
			entries[i] = -int(v)
		}
	}
	return json.Marshal(entries)
}

// UnmarshalJSON implements json.Unmarshaler for the wire format above.
// The receiver's previous contents are discarded.
func (o *Operation) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // Keep numbers exact; floats are invalid on the wire.

	var entries []any
	if err := dec.Decode(&entries); err != nil {
		return fmt.Errorf("failed to parse operation: %w", err)
	}

	ops, err := opsFromWire(entries)
	if err != nil {
		return err
	}
	o.ops = nil
	for _, op := range ops {
		o.Append(op)
	}
	return nil
}

// FromWire builds an Operation from already-decoded wire entries, such
// as a YAML or JSON array unmarshalled to []any. Accepted entry types
// are string (Insert), and int/int64/json.Number (Retain when positive,
// Delete when negative).
func FromWire(entries []any) (*Operation, error) {
	ops, err := opsFromWire(entries)
	if err != nil {
		return nil, err
	}
	return New(ops...), nil
}

func opsFromWire(entries []any) ([]Op, error) {
	ops := make([]Op, 0, len(entries))
	for i, entry := range entries {
		op, err := opFromWire(entry)
		if err != nil {
			return nil, fmt.Errorf("operation entry %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func opFromWire(entry any) (Op, error) {
	switch v := entry.(type) {
	case string:
		if v == "" {
			return nil, fmt.Errorf("empty insert")
		}
		return Insert(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("non-integer length %q", v.String())
		}
		return opFromCount(n)
	case int:
		return opFromCount(int64(v))
	case int64:
		return opFromCount(v)
	default:
		return nil, fmt.Errorf("unsupported entry type %T", entry)
	}
}

func opFromCount(n int64) (Op, error) {
	switch {
	case n > 0:
		return Retain(n), nil
	case n < 0:
		return Delete(-n), nil
	default:
		return nil, fmt.Errorf("zero-length op")
	}
}
