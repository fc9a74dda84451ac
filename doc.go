// Package dagcbor encodes and decodes DAG-CBOR, the deterministic IPLD
// profile of CBOR (RFC 8949).
//
// The codec is a translation layer between an in-memory Value tree and the
// generic CBOR tree consumed by the wire framer. It enforces every
// restriction DAG-CBOR places on CBOR: maps MUST carry text keys sorted
// length-first then bytewise, floats MUST be finite and are always emitted
// as binary64, the only permitted tag is 42 (a CID framed with the identity
// multibase prefix), and integers MUST fit the CBOR range [-2^64, 2^64-1].
//
// Encoding is total over valid values: maps are canonicalized (sorted) on
// the way out, so logically equal trees always produce byte-identical
// output. Decoding rejects any construct outside the profile; see
// DecodeOptions for the stricter canonical-form profile.
//
// All operations are pure and synchronous. No function mutates its input,
// and values may be shared across goroutines once constructed.
package dagcbor
