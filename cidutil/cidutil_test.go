package cidutil

import (
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

func TestCIDv1RawSHA256(t *testing.T) {
	data := []byte("hello")
	s := CIDv1RawSHA256(data)
	if s == "" {
		t.Fatalf("expected a CID string")
	}
	c, err := CIDv1RawSHA256CID(data)
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID: %v", err)
	}
	if c.String() != s {
		t.Fatalf("string and CID variants disagree: %q vs %q", s, c)
	}
	if c.Version() != 1 || c.Prefix().Codec != cid.Raw || c.Prefix().MhType != multihash.SHA2_256 {
		t.Fatalf("unexpected prefix %+v", c.Prefix())
	}
}

func TestCIDv1DagCBORSHA256CID(t *testing.T) {
	data := []byte{0xa0} // empty map block
	c, err := CIDv1DagCBORSHA256CID(data)
	if err != nil {
		t.Fatalf("CIDv1DagCBORSHA256CID: %v", err)
	}
	if c.Version() != 1 || c.Prefix().Codec != cid.DagCBOR || c.Prefix().MhType != multihash.SHA2_256 {
		t.Fatalf("unexpected prefix %+v", c.Prefix())
	}

	again, err := CIDv1DagCBORSHA256CID(data)
	if err != nil {
		t.Fatalf("CIDv1DagCBORSHA256CID: %v", err)
	}
	if !c.Equals(again) {
		t.Fatalf("derivation must be deterministic")
	}

	other, err := CIDv1DagCBORSHA256CID([]byte{0x80})
	if err != nil {
		t.Fatalf("CIDv1DagCBORSHA256CID: %v", err)
	}
	if c.Equals(other) {
		t.Fatalf("different blocks must not share a CID")
	}
}
