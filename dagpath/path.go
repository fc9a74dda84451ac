package dagpath

import (
	"strconv"
	"strings"
)

// StepKind discriminates the three step variants.
type StepKind uint8

const (
	StepKey StepKind = iota
	StepIndex
	StepWildcard
)

// Step is one element of a parsed path: descend by map key, descend by
// array index, or expand across all children.
type Step struct {
	Kind  StepKind
	Key   string
	Index int
}

// Parse tokenizes a path string into steps. It is total: malformed bracket
// contents and empty segments are dropped rather than reported, the
// do-what-the-user-likely-meant policy for an accessor library.
//
//	"users[0].name"        -> Key(users) Index(0) Key(name)
//	"a..b."                -> Key(a) Key(b)
//	"key[abc][123][def]"   -> Key(key) Index(123)
//	"users[-1]"            -> Key(users)
//	"items[*]"             -> Key(items) Wildcard
//	"*.id"                 -> Wildcard Key(id)
//
// Keys may contain any character except '.', '[' and ']'.
func Parse(path string) []Step {
	var steps []Step
	var key strings.Builder

	flushKey := func() {
		if key.Len() == 0 {
			return
		}
		tok := key.String()
		key.Reset()
		if tok == "*" {
			steps = append(steps, Step{Kind: StepWildcard})
			return
		}
		steps = append(steps, Step{Kind: StepKey, Key: tok})
	}

	i := 0
	for i < len(path) {
		switch path[i] {
		case '.', ']':
			flushKey()
			i++
		case '[':
			flushKey()
			end := strings.IndexByte(path[i+1:], ']')
			if end < 0 {
				// Unterminated bracket: ignore the rest.
				return steps
			}
			if s, ok := bracketStep(path[i+1 : i+1+end]); ok {
				steps = append(steps, s)
			}
			i += end + 2
		default:
			key.WriteByte(path[i])
			i++
		}
	}
	flushKey()
	return steps
}

// bracketStep interprets bracket contents: "*" is a wildcard, a
// non-negative decimal is an index, anything else yields no step.
func bracketStep(content string) (Step, bool) {
	if content == "*" {
		return Step{Kind: StepWildcard}, true
	}
	n, err := strconv.ParseUint(content, 10, 63)
	if err != nil {
		return Step{}, false
	}
	return Step{Kind: StepIndex, Index: int(n)}, true
}
