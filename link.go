package dagcbor

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
)

// LinkTag is the CBOR tag reserved by IPLD for CID payloads.
const LinkTag = 42

// encodeLink frames a CID as tag 42 around a byte string: the binary CID
// encoding behind the identity multibase prefix (0x00).
func encodeLink(c cid.Cid) (cbor.Tag, error) {
	if !c.Defined() {
		return cbor.Tag{}, newError(KindInvalidValue, "undefined CID")
	}
	s, err := multibase.Encode(multibase.Identity, c.Bytes())
	if err != nil {
		return cbor.Tag{}, wrapError(KindInvalidCIDFormat, "multibase framing failed", err)
	}
	return cbor.Tag{Number: LinkTag, Content: []byte(s)}, nil
}

// decodeLink unwraps the payload of a tag-42 value. Only the identity
// multibase is accepted; everything after the prefix must parse as a binary
// CID.
func decodeLink(payload any) (cid.Cid, error) {
	b, ok := payload.([]byte)
	if !ok {
		return cid.Undef, newError(KindInvalidCIDFormat, "tag 42 payload must be a byte string")
	}
	enc, raw, err := multibase.Decode(string(b))
	if err != nil {
		return cid.Undef, wrapError(KindInvalidCIDFormat, "invalid multibase framing", err)
	}
	if enc != multibase.Identity {
		return cid.Undef, newError(KindInvalidCIDFormat, "only the identity multibase is allowed in links")
	}
	c, err := cid.Cast(raw)
	if err != nil {
		return cid.Undef, wrapError(KindInvalidCIDFormat, "invalid binary CID", err)
	}
	return c, nil
}
