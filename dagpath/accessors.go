package dagpath

import (
	"github.com/ipfs/go-cid"

	"xdao.co/dagcbor"
)

// The typed getters resolve a path and require a target kind. Each kind K
// comes in two flavors:
//
//	GetK(v, path)                       the value must be present, non-null, and a K
//	GetNullableK(v, path, allowMissing) null (and optionally absence) map to present=false
//
// The only coercions are Nat from a non-negative Int and Float from any
// Int; everything else, including integers too wide for the requested
// type, is a TypeMismatch.

// resolveNullable implements the shared outcome table: absent is an error
// unless allowMissing, a stored null is an accepted non-present result.
func resolveNullable(v dagcbor.Value, path string, allowMissing bool) (dagcbor.Value, bool, error) {
	res, ok := Get(v, path)
	if !ok {
		if allowMissing {
			return dagcbor.Value{}, false, nil
		}
		return dagcbor.Value{}, false, notFound(path)
	}
	if res.IsNull() {
		return dagcbor.Value{}, false, nil
	}
	return res, true, nil
}

// IsNull reports whether the path resolves to a stored null, or is absent
// while allowMissing is set.
func IsNull(v dagcbor.Value, path string, allowMissing bool) bool {
	res, ok := Get(v, path)
	if !ok {
		return allowMissing
	}
	return res.IsNull()
}

// GetNullableNat resolves a non-negative integer. A negative integer is a
// TypeMismatch, not a range error.
func GetNullableNat(v dagcbor.Value, path string, allowMissing bool) (uint64, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return 0, false, err
	}
	u, ok := res.AsUint64()
	if !ok {
		return 0, false, mismatch(path, "nat", res.Kind())
	}
	return u, true, nil
}

// GetNat resolves a present, non-null, non-negative integer.
func GetNat(v dagcbor.Value, path string) (uint64, error) {
	u, present, err := GetNullableNat(v, path, false)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nullMismatch(path, "nat")
	}
	return u, nil
}

// GetNullableInt resolves a signed integer that fits int64.
func GetNullableInt(v dagcbor.Value, path string, allowMissing bool) (int64, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return 0, false, err
	}
	i, ok := res.AsInt64()
	if !ok {
		return 0, false, mismatch(path, "int", res.Kind())
	}
	return i, true, nil
}

// GetInt resolves a present, non-null signed integer.
func GetInt(v dagcbor.Value, path string) (int64, error) {
	i, present, err := GetNullableInt(v, path, false)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nullMismatch(path, "int")
	}
	return i, nil
}

// GetNullableFloat resolves a float, widening integers to float64.
func GetNullableFloat(v dagcbor.Value, path string, allowMissing bool) (float64, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return 0, false, err
	}
	if f, ok := res.AsFloat(); ok {
		return f, true, nil
	}
	if arg, neg, ok := res.AsRawInt(); ok {
		if neg {
			return -float64(arg) - 1, true, nil
		}
		return float64(arg), true, nil
	}
	return 0, false, mismatch(path, "float", res.Kind())
}

// GetFloat resolves a present, non-null float (or widened integer).
func GetFloat(v dagcbor.Value, path string) (float64, error) {
	f, present, err := GetNullableFloat(v, path, false)
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nullMismatch(path, "float")
	}
	return f, nil
}

// GetNullableBool resolves a boolean.
func GetNullableBool(v dagcbor.Value, path string, allowMissing bool) (bool, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return false, false, err
	}
	b, ok := res.AsBool()
	if !ok {
		return false, false, mismatch(path, "bool", res.Kind())
	}
	return b, true, nil
}

// GetBool resolves a present, non-null boolean.
func GetBool(v dagcbor.Value, path string) (bool, error) {
	b, present, err := GetNullableBool(v, path, false)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nullMismatch(path, "bool")
	}
	return b, nil
}

// GetNullableText resolves a text string.
func GetNullableText(v dagcbor.Value, path string, allowMissing bool) (string, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return "", false, err
	}
	s, ok := res.AsText()
	if !ok {
		return "", false, mismatch(path, "text", res.Kind())
	}
	return s, true, nil
}

// GetText resolves a present, non-null text string.
func GetText(v dagcbor.Value, path string) (string, error) {
	s, present, err := GetNullableText(v, path, false)
	if err != nil {
		return "", err
	}
	if !present {
		return "", nullMismatch(path, "text")
	}
	return s, nil
}

// GetNullableBytes resolves a byte string.
func GetNullableBytes(v dagcbor.Value, path string, allowMissing bool) ([]byte, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return nil, false, err
	}
	b, ok := res.AsBytes()
	if !ok {
		return nil, false, mismatch(path, "bytes", res.Kind())
	}
	return b, true, nil
}

// GetBytes resolves a present, non-null byte string.
func GetBytes(v dagcbor.Value, path string) ([]byte, error) {
	b, present, err := GetNullableBytes(v, path, false)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nullMismatch(path, "bytes")
	}
	return b, nil
}

// GetNullableArray resolves an array.
func GetNullableArray(v dagcbor.Value, path string, allowMissing bool) ([]dagcbor.Value, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return nil, false, err
	}
	elems, ok := res.AsArray()
	if !ok {
		return nil, false, mismatch(path, "array", res.Kind())
	}
	return elems, true, nil
}

// GetArray resolves a present, non-null array.
func GetArray(v dagcbor.Value, path string) ([]dagcbor.Value, error) {
	elems, present, err := GetNullableArray(v, path, false)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nullMismatch(path, "array")
	}
	return elems, nil
}

// GetNullableMap resolves a map as its entry list.
func GetNullableMap(v dagcbor.Value, path string, allowMissing bool) ([]dagcbor.Entry, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return nil, false, err
	}
	ents, ok := res.AsMap()
	if !ok {
		return nil, false, mismatch(path, "map", res.Kind())
	}
	return ents, true, nil
}

// GetMap resolves a present, non-null map.
func GetMap(v dagcbor.Value, path string) ([]dagcbor.Entry, error) {
	ents, present, err := GetNullableMap(v, path, false)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nullMismatch(path, "map")
	}
	return ents, nil
}

// GetNullableCid resolves a link.
func GetNullableCid(v dagcbor.Value, path string, allowMissing bool) (cid.Cid, bool, error) {
	res, present, err := resolveNullable(v, path, allowMissing)
	if err != nil || !present {
		return cid.Undef, false, err
	}
	c, ok := res.AsCid()
	if !ok {
		return cid.Undef, false, mismatch(path, "cid", res.Kind())
	}
	return c, true, nil
}

// GetCid resolves a present, non-null link.
func GetCid(v dagcbor.Value, path string) (cid.Cid, error) {
	c, present, err := GetNullableCid(v, path, false)
	if err != nil {
		return cid.Undef, err
	}
	if !present {
		return cid.Undef, nullMismatch(path, "cid")
	}
	return c, nil
}
