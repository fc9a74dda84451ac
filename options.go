package dagcbor

// DecodeOptions selects how aggressively the decoder rejects non-canonical
// input.
//
// The zero value is the lenient profile: the decoder enforces the DAG-CBOR
// data model (tag whitelist, text keys, finite floats, integer range) but
// does not verify that maps arrived sorted or that integers were minimally
// encoded. Canonical form is restored on re-encode.
//
// The canonical profile prefers explicit failure over silent acceptance:
// after decoding, the value is re-encoded and the input must be
// byte-identical to the canonical encoding. This catches unsorted maps,
// non-minimal integer heads, and floats narrower than binary64 in one pass.
type DecodeOptions struct {
	Canonical bool
}
