package dagcbor

import (
	"fmt"
	"sort"
)

// KeyLess reports whether key a sorts before key b in the canonical DAG-CBOR
// map order: shorter UTF-8 encoding first, ties broken by lexicographic
// comparison of the UTF-8 bytes.
//
// Consequences worth remembering: "z" < "aa" (length wins) and
// "A" < "Z" < "a" (case is byte-ordered).
func KeyLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// sortedEntries returns a copy of entries in canonical key order. The sort
// is stable so duplicate keys keep their relative value order for the
// adjacent-duplicate scan.
func sortedEntries(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return KeyLess(out[i].Key, out[j].Key)
	})
	return out
}

// checkDuplicateKeys scans canonically sorted entries for adjacent equal
// keys. Byte-equality of the UTF-8 encoding is the identity rule.
func checkDuplicateKeys(entries []Entry) error {
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Key == entries[i].Key {
			return newError(KindInvalidMapKey, fmt.Sprintf("duplicate map key %q", entries[i].Key))
		}
	}
	return nil
}
