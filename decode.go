package dagcbor

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/big"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// decMode is the framer configuration shared by all decodes. Indefinite
// lengths are outside the DAG-CBOR profile, duplicate wire keys are a
// framer-level fault, and nesting is capped to keep adversarial input from
// exhausting the stack. Bignum tags must be refused here: the framer would
// otherwise fold tag 2/3 into a big.Int that the mapper cannot tell apart
// from a plain 65-bit negative.
var decMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DupMapKey:       cbor.DupMapKeyEnforcedAPF,
		IndefLength:     cbor.IndefLengthForbidden,
		MaxNestedLevels: 256,
		BignumTag:       cbor.BignumTagForbidden,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// FromCBOR translates a generic CBOR tree back into a value tree, rejecting
// every construct DAG-CBOR disallows: non-text map keys, tags other than
// 42, NaN and the infinities, integers outside [-2^64, 2^64-1], and simple
// values other than true/false/null.
//
// Maps come back canonically sorted regardless of wire order.
func FromCBOR(node any) (Value, error) {
	switch n := node.(type) {
	case nil:
		return Null(), nil
	case bool:
		return NewBool(n), nil
	case uint64:
		return NewUint(n), nil
	case int64:
		return NewInt(n), nil
	case big.Int:
		return fromBigInt(&n)
	case *big.Int:
		return fromBigInt(n)
	case float64:
		return fromFloat(n)
	case float32:
		return fromFloat(float64(n))
	case string:
		return NewText(n), nil
	case []byte:
		return NewBytes(n), nil
	case []any:
		out := make([]Value, len(n))
		for i, e := range n {
			v, err := FromCBOR(e)
			if err != nil {
				return Value{}, err
			}
			out[i] = v
		}
		return Value{kind: KindArray, arr: out}, nil
	case map[any]any:
		ents := make([]Entry, 0, len(n))
		for k, e := range n {
			key, err := mapKey(k)
			if err != nil {
				return Value{}, err
			}
			v, err := FromCBOR(e)
			if err != nil {
				return Value{}, err
			}
			ents = append(ents, Entry{Key: key, Value: v})
		}
		return canonicalMap(ents)
	case map[string]any:
		// ToCBOR output fed straight back in.
		ents := make([]Entry, 0, len(n))
		for k, e := range n {
			v, err := FromCBOR(e)
			if err != nil {
				return Value{}, err
			}
			ents = append(ents, Entry{Key: k, Value: v})
		}
		return canonicalMap(ents)
	case cbor.Tag:
		if n.Number != LinkTag {
			return Value{}, newTagError(n.Number, fmt.Sprintf("tag %d is not allowed; only tag 42 (CID) is", n.Number))
		}
		c, err := decodeLink(n.Content)
		if err != nil {
			return Value{}, err
		}
		return NewCid(c), nil
	case time.Time:
		// The framer interprets tags 0/1 before we see them, and the
		// resulting time.Time no longer says which of the two was used.
		// The byte front-ends rescan the input and restore the exact
		// number; a hand-assembled tree reports tag 0.
		return Value{}, newTagError(0, "time tags (0/1) are not allowed; only tag 42 (CID) is")
	case cbor.SimpleValue:
		return Value{}, newError(KindUnsupportedPrimitive, fmt.Sprintf("simple value %d is not allowed", uint8(n)))
	}
	return Value{}, newError(KindUnsupportedPrimitive, fmt.Sprintf("unsupported cbor node %T", node))
}

func mapKey(k any) (string, error) {
	switch key := k.(type) {
	case string:
		return key, nil
	case cbor.ByteString:
		return "", newError(KindInvalidMapKey, "map key must be a text string, got a byte string")
	}
	return "", newError(KindInvalidMapKey, fmt.Sprintf("map key must be a text string, got %T", k))
}

func fromFloat(f float64) (Value, error) {
	if math.IsNaN(f) {
		return Value{}, newError(KindFloatConversion, "NaN is not allowed")
	}
	if math.IsInf(f, 0) {
		return Value{}, newError(KindFloatConversion, "infinity is not allowed")
	}
	return NewFloat(f), nil
}

// fromBigInt handles the integer tail the framer cannot fit in int64 or
// uint64. Anything outside [-2^64, 2^64-1] is out of range.
func fromBigInt(n *big.Int) (Value, error) {
	if n.Sign() >= 0 {
		if !n.IsUint64() {
			return Value{}, newError(KindIntegerOutOfRange, "integer exceeds 2^64-1")
		}
		return NewUint(n.Uint64()), nil
	}
	arg := new(big.Int).Neg(n)
	arg.Sub(arg, bigOne)
	if !arg.IsUint64() {
		return Value{}, newError(KindIntegerOutOfRange, "integer below -2^64")
	}
	return newNegInt(arg.Uint64()), nil
}

// canonicalMap sorts decoded entries into the canonical order. The wire
// framer already rejects duplicate keys, but FromCBOR also accepts trees a
// caller assembled by hand, so the adjacent scan stays.
func canonicalMap(ents []Entry) (Value, error) {
	ents = sortedEntries(ents)
	if err := checkDuplicateKeys(ents); err != nil {
		return Value{}, err
	}
	return Value{kind: KindMap, ents: ents}, nil
}

// FromBytes decodes exactly one complete DAG-CBOR item; trailing bytes are
// a decoding error. The lenient profile is applied (see DecodeOptions).
func FromBytes(data []byte) (Value, error) {
	return FromBytesWithOptions(data, DecodeOptions{})
}

// FromBytesWithOptions decodes one complete item under the given options.
func FromBytesWithOptions(data []byte, opts DecodeOptions) (Value, error) {
	var node any
	if err := decMode.Unmarshal(data, &node); err != nil {
		return Value{}, framingError(data, err)
	}
	v, err := FromCBOR(node)
	if err != nil {
		return Value{}, restoreTimeTag(data, err)
	}
	if opts.Canonical {
		reenc, err := ToBytes(v)
		if err != nil {
			return Value{}, err
		}
		if !bytes.Equal(reenc, data) {
			return Value{}, newError(KindNotCanonical, "input bytes are not the canonical encoding of their value")
		}
	}
	return v, nil
}

// Decode consumes one complete item from r under the lenient profile. The
// consumed bytes are retained so tag rejections can name the tag the same
// way FromBytes does.
func Decode(r io.Reader) (Value, error) {
	var buf bytes.Buffer
	var node any
	if err := decMode.NewDecoder(io.TeeReader(r, &buf)).Decode(&node); err != nil {
		return Value{}, framingError(buf.Bytes(), err)
	}
	v, err := FromCBOR(node)
	if err != nil {
		return Value{}, restoreTimeTag(buf.Bytes(), err)
	}
	return v, nil
}

// framingError wraps a framer rejection. When the refused input carries one
// of the tag heads the framer normally interprets itself (0/1 time, 2/3
// bignum), the rejection is reported as an invalid tag with that number;
// the framer's own error does not say which tag it refused.
func framingError(data []byte, err error) error {
	if n, ok := interpretedTag(data); ok {
		return newTagError(n, fmt.Sprintf("tag %d is not allowed; only tag 42 (CID) is", n))
	}
	return wrapError(KindDecoding, "cbor framing failed", err)
}

// restoreTimeTag repairs the tag number on a time-tag rejection. The mapper
// only ever sees a time.Time and reports tag 0; the wire may have carried
// tag 1.
func restoreTimeTag(data []byte, err error) error {
	if n, ok := TagNumber(err); ok && n <= 1 {
		if scanned, found := interpretedTag(data); found && scanned <= 1 && scanned != n {
			return newTagError(scanned, "time tags (0/1) are not allowed; only tag 42 (CID) is")
		}
	}
	return err
}

// interpretedTag scans one encoded item for the first tag head in the range
// 0..3. These are the tags the framer folds into Go values (time.Time,
// big.Int) or refuses outright before the mapper runs, losing the number in
// both cases. The scan is purely structural: it walks heads, skips string
// payloads by length, and bails out on anything it cannot account for.
func interpretedTag(data []byte) (uint64, bool) {
	tag, found, _, ok := scanItem(data, 0)
	if !ok {
		return 0, false
	}
	return tag, found
}

// scanItem walks the item starting at pos and returns the first interpreted
// tag found inside it, along with the position just past the item. The last
// result is false when the input is not a well-formed definite-length item.
func scanItem(data []byte, pos int) (uint64, bool, int, bool) {
	arg, next, ok := scanArg(data, pos)
	if !ok {
		return 0, false, 0, false
	}
	switch data[pos] >> 5 {
	case 0, 1: // integers live entirely in the head
		return 0, false, next, true
	case 2, 3: // byte and text strings: skip the payload
		if arg > uint64(len(data)-next) {
			return 0, false, 0, false
		}
		return 0, false, next + int(arg), true
	case 4:
		return scanSeq(data, next, arg)
	case 5:
		if arg > math.MaxUint64/2 {
			return 0, false, 0, false
		}
		return scanSeq(data, next, 2*arg)
	case 6:
		if arg <= 3 {
			return arg, true, 0, true
		}
		return scanItem(data, next)
	default: // simple values and floats live in the head
		return 0, false, next, true
	}
}

func scanSeq(data []byte, pos int, count uint64) (uint64, bool, int, bool) {
	for ; count > 0; count-- {
		tag, found, next, ok := scanItem(data, pos)
		if !ok {
			return 0, false, 0, false
		}
		if found {
			return tag, true, 0, true
		}
		pos = next
	}
	return 0, false, pos, true
}

// scanArg reads a head's argument. Additional info 28..31 is reserved or
// indefinite, neither of which survives the framer.
func scanArg(data []byte, pos int) (uint64, int, bool) {
	if pos >= len(data) {
		return 0, 0, false
	}
	info := data[pos] & 0x1f
	var width int
	switch {
	case info < 24:
		return uint64(info), pos + 1, true
	case info == 24:
		width = 1
	case info == 25:
		width = 2
	case info == 26:
		width = 4
	case info == 27:
		width = 8
	default:
		return 0, 0, false
	}
	if len(data)-pos-1 < width {
		return 0, 0, false
	}
	var arg uint64
	for _, b := range data[pos+1 : pos+1+width] {
		arg = arg<<8 | uint64(b)
	}
	return arg, pos + 1 + width, true
}
