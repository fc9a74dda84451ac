package dagpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func key(k string) Step { return Step{Kind: StepKey, Key: k} }
func index(i int) Step  { return Step{Kind: StepIndex, Index: i} }
func wildcard() Step    { return Step{Kind: StepWildcard} }

func TestParse(t *testing.T) {
	cases := []struct {
		path string
		want []Step
	}{
		{"", nil},
		{"users", []Step{key("users")}},
		{"users.name", []Step{key("users"), key("name")}},
		{"users[0]", []Step{key("users"), index(0)}},
		{"users[0].name", []Step{key("users"), index(0), key("name")}},
		{"[0]", []Step{index(0)}},
		{"[0].id", []Step{index(0), key("id")}},
		{"users[*].posts[0]", []Step{key("users"), wildcard(), key("posts"), index(0)}},
		{"*", []Step{wildcard()}},
		{"*.id", []Step{wildcard(), key("id")}},

		// Permissive policy: empty segments are skipped.
		{".users", []Step{key("users")}},
		{"users.", []Step{key("users")}},
		{"a..b.", []Step{key("a"), key("b")}},
		{"...", nil},

		// Permissive policy: malformed bracket contents yield no step.
		{"users[]", []Step{key("users")}},
		{"key[abc]", []Step{key("key")}},
		{"key[abc][123][def]", []Step{key("key"), index(123)}},
		{"users[-1]", []Step{key("users")}},
		{"users[+1]", []Step{key("users")}},
		{"users[1.5]", []Step{key("users")}},
		{"users[ 1]", []Step{key("users")}},

		// Unterminated bracket: rest of the path is ignored.
		{"users[1", []Step{key("users")}},
		{"users[", []Step{key("users")}},

		// '*' is only a wildcard as a whole token.
		{"a*b", []Step{key("a*b")}},
		{"**", []Step{key("**")}},

		// Keys may contain anything except '.', '[' and ']'.
		{"weird key!@#", []Step{key("weird key!@#")}},
		{"café.menu", []Step{key("café"), key("menu")}},

		// Stray ']' delimits like '.'.
		{"a]b", []Step{key("a"), key("b")}},

		{"a[0][1]", []Step{key("a"), index(0), index(1)}},
		{"a[0]b", []Step{key("a"), index(0), key("b")}},
	}
	for _, c := range cases {
		got := Parse(c.path)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.path, diff)
		}
	}
}

func TestParse_NeverErrors(t *testing.T) {
	// The parser is total; any input produces some (possibly empty) step
	// list without panicking.
	for _, p := range []string{"[[[", "]]]", "[*", "....[..]", "\x00\xff", "[99999999999999999999999]"} {
		_ = Parse(p)
	}
}

func TestParse_HugeIndexDropped(t *testing.T) {
	// An index that overflows is malformed bracket content, not a step.
	got := Parse("a[99999999999999999999999]")
	if diff := cmp.Diff([]Step{key("a")}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}
