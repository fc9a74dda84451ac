package dagcbor

import (
	"math"

	"github.com/ipfs/go-cid"
)

// Kind identifies which of the nine DAG-CBOR variants a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindBytes
	KindArray
	KindMap
	KindCid
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindCid:
		return "cid"
	}
	return "invalid"
}

// Entry is a single map entry. DAG-CBOR map keys are always text.
type Entry struct {
	Key   string
	Value Value
}

// Value is an immutable tagged union over the nine DAG-CBOR kinds.
//
// The zero Value is Null. Integers span the full CBOR range
// [-2^64, 2^64-1], which is wider than the formal DAG-CBOR int64 bound; a
// negative value v is stored as its CBOR argument -(v+1). Map entries keep
// the order they were constructed with; the encoder canonicalizes, and the
// decoder only ever produces canonically sorted maps.
type Value struct {
	kind Kind
	b    bool
	neg  bool
	arg  uint64
	f    float64
	s    string
	by   []byte
	arr  []Value
	ents []Entry
	c    cid.Cid
}

// Null returns the null value. Equivalent to the zero Value.
func Null() Value {
	return Value{kind: KindNull}
}

// NewBool returns a boolean value.
func NewBool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// NewInt returns an integer value.
func NewInt(v int64) Value {
	if v < 0 {
		return Value{kind: KindInt, neg: true, arg: uint64(-(v + 1))}
	}
	return Value{kind: KindInt, arg: uint64(v)}
}

// NewUint returns a non-negative integer value; it covers the
// [2^63, 2^64-1] range NewInt cannot express.
func NewUint(v uint64) Value {
	return Value{kind: KindInt, arg: v}
}

// newNegInt returns the negative integer -(arg+1). Only the decoder needs
// the sub-int64 tail of the range.
func newNegInt(arg uint64) Value {
	return Value{kind: KindInt, neg: true, arg: arg}
}

// NewFloat returns a float value. Non-finite payloads are representable but
// rejected by the encoder.
func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// NewText returns a text value. The payload MUST be well-formed UTF-8; the
// framer rejects anything else at the byte boundary.
func NewText(s string) Value {
	return Value{kind: KindText, s: s}
}

// NewBytes returns a byte-string value holding a copy of b.
func NewBytes(b []byte) Value {
	return Value{kind: KindBytes, by: append([]byte(nil), b...)}
}

// NewArray returns an array value holding a copy of elems.
func NewArray(elems []Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), elems...)}
}

// NewMap returns a map value holding a copy of entries, in the given order.
// Duplicate keys are representable here and rejected by the encoder.
func NewMap(entries []Entry) Value {
	return Value{kind: KindMap, ents: append([]Entry(nil), entries...)}
}

// NewCid returns a link value.
func NewCid(c cid.Cid) Value {
	return Value{kind: KindCid, c: c}
}

// Kind returns the variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean payload. The second result is false if v is
// not a bool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt64 returns the integer payload as an int64. The second result is
// false if v is not an integer or the payload does not fit.
func (v Value) AsInt64() (int64, bool) {
	if v.kind != KindInt || v.arg > math.MaxInt64 {
		return 0, false
	}
	if v.neg {
		return -int64(v.arg) - 1, true
	}
	return int64(v.arg), true
}

// AsUint64 returns the integer payload as a uint64. The second result is
// false if v is not an integer or is negative.
func (v Value) AsUint64() (uint64, bool) {
	if v.kind != KindInt || v.neg {
		return 0, false
	}
	return v.arg, true
}

// AsRawInt exposes the full 65-bit integer range: the CBOR argument and a
// negative flag, where a negative value is -(arg+1).
func (v Value) AsRawInt() (arg uint64, neg, ok bool) {
	if v.kind != KindInt {
		return 0, false, false
	}
	return v.arg, v.neg, true
}

// AsFloat returns the float payload. The second result is false if v is not
// a float. Integer widening is a path-accessor concern, not a Value one.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// AsText returns the text payload.
func (v Value) AsText() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// AsBytes returns a copy of the byte-string payload.
func (v Value) AsBytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	return append([]byte(nil), v.by...), true
}

// AsArray returns a copy of the element slice.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return append([]Value(nil), v.arr...), true
}

// AsMap returns a copy of the entry slice, in the order v carries it.
func (v Value) AsMap() ([]Entry, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return append([]Entry(nil), v.ents...), true
}

// AsCid returns the link payload.
func (v Value) AsCid() (cid.Cid, bool) {
	if v.kind != KindCid {
		return cid.Undef, false
	}
	return v.c, true
}

// Len returns the element count for arrays, the entry count for maps, and
// the byte length for bytes/text. It is 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindMap:
		return len(v.ents)
	case KindBytes:
		return len(v.by)
	case KindText:
		return len(v.s)
	}
	return 0
}

// Lookup scans a map for the first entry with the given key.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.ents {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Equal reports structural equality. Map comparison is order-sensitive;
// canonicalize both sides first when comparing trees built in different
// insertion orders.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.neg == b.neg && a.arg == b.arg
	case KindFloat:
		return a.f == b.f
	case KindText:
		return a.s == b.s
	case KindBytes:
		if len(a.by) != len(b.by) {
			return false
		}
		for i := range a.by {
			if a.by[i] != b.by[i] {
				return false
			}
		}
		return true
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.ents) != len(b.ents) {
			return false
		}
		for i := range a.ents {
			if a.ents[i].Key != b.ents[i].Key || !Equal(a.ents[i].Value, b.ents[i].Value) {
				return false
			}
		}
		return true
	case KindCid:
		return a.c.Equals(b.c)
	}
	return false
}

// Canonicalize returns a copy of v with every map's entries sorted into the
// canonical key order. Duplicate keys, if any, survive in adjacent
// positions; the encoder is the rejection point for those.
func Canonicalize(v Value) Value {
	switch v.kind {
	case KindArray:
		out := make([]Value, len(v.arr))
		for i, e := range v.arr {
			out[i] = Canonicalize(e)
		}
		return Value{kind: KindArray, arr: out}
	case KindMap:
		ents := sortedEntries(v.ents)
		for i := range ents {
			ents[i].Value = Canonicalize(ents[i].Value)
		}
		return Value{kind: KindMap, ents: ents}
	}
	return v
}
