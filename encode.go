package dagcbor

import (
	"fmt"
	"io"
	"math"
	"math/big"

	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"

	"xdao.co/dagcbor/cidutil"
)

// encMode is the framer configuration shared by all encodes. Canonical map
// sort is the DAG-CBOR order (length-first, then bytewise); floats stay
// binary64; big.Int payloads take the shortest integer head.
var encMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		ShortestFloat: cbor.ShortestFloatNone,
		BigIntConvert: cbor.BigIntConvertShortest,
		IndefLength:   cbor.IndefLengthForbidden,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

var bigOne = big.NewInt(1)

// ToCBOR translates a value tree into the generic tree the CBOR framer
// consumes, enforcing every DAG-CBOR restriction on the way: map entries
// are sorted and duplicate-checked, floats must be finite, and links are
// framed per tag 42.
//
// Evaluation is left-to-right, depth-first; the first violation aborts.
func ToCBOR(v Value) (any, error) {
	switch v.kind {
	case KindNull:
		return nil, nil
	case KindBool:
		return v.b, nil
	case KindInt:
		return intNode(v), nil
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return nil, newError(KindInvalidValue, "float must be finite and not NaN")
		}
		return v.f, nil
	case KindText:
		return v.s, nil
	case KindBytes:
		return v.by, nil
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			n, err := ToCBOR(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case KindMap:
		ents := sortedEntries(v.ents)
		if err := checkDuplicateKeys(ents); err != nil {
			return nil, err
		}
		out := make(map[string]any, len(ents))
		for _, e := range ents {
			n, err := ToCBOR(e.Value)
			if err != nil {
				return nil, err
			}
			out[e.Key] = n
		}
		return out, nil
	case KindCid:
		return encodeLink(v.c)
	}
	return nil, newError(KindInvalidValue, fmt.Sprintf("unknown value kind %d", v.kind))
}

// intNode picks the natural framer representation for the sign: uint64 for
// major type 0, int64 for major type 1, big.Int for the negative tail
// below int64 that only the 65-bit range reaches.
func intNode(v Value) any {
	if !v.neg {
		return v.arg
	}
	if v.arg <= math.MaxInt64 {
		return -int64(v.arg) - 1
	}
	n := new(big.Int).SetUint64(v.arg)
	n.Add(n, bigOne)
	n.Neg(n)
	return n
}

// ToBytes encodes v into canonical DAG-CBOR bytes.
func ToBytes(v Value) ([]byte, error) {
	node, err := ToCBOR(v)
	if err != nil {
		return nil, err
	}
	b, err := encMode.Marshal(node)
	if err != nil {
		return nil, wrapError(KindEncoding, "cbor framing failed", err)
	}
	return b, nil
}

// Encode writes the canonical encoding of v to w. Writing into a
// *bytes.Buffer is the supported append-into-caller-buffer convenience.
func Encode(w io.Writer, v Value) error {
	node, err := ToCBOR(v)
	if err != nil {
		return err
	}
	if err := encMode.NewEncoder(w).Encode(node); err != nil {
		return wrapError(KindEncoding, "cbor framing failed", err)
	}
	return nil
}

// ToBytesWithCID encodes v and returns the bytes together with their CIDv1
// (dag-cbor + sha2-256) address.
func ToBytesWithCID(v Value) ([]byte, cid.Cid, error) {
	b, err := ToBytes(v)
	if err != nil {
		return nil, cid.Undef, err
	}
	c, err := cidutil.CIDv1DagCBORSHA256CID(b)
	if err != nil {
		return nil, cid.Undef, wrapError(KindEncoding, "cid derivation failed", err)
	}
	return b, c, nil
}
