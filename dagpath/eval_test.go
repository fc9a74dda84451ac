package dagpath

import (
	"testing"

	"xdao.co/dagcbor"
)

// usersFixture is the three-user document from the package examples.
func usersFixture(t *testing.T) dagcbor.Value {
	t.Helper()
	user := func(name string, posts ...string) dagcbor.Value {
		elems := make([]dagcbor.Value, len(posts))
		for i, p := range posts {
			elems[i] = dagcbor.NewText(p)
		}
		return dagcbor.NewMap([]dagcbor.Entry{
			{Key: "name", Value: dagcbor.NewText(name)},
			{Key: "posts", Value: dagcbor.NewArray(elems)},
		})
	}
	return dagcbor.NewMap([]dagcbor.Entry{
		{Key: "users", Value: dagcbor.NewArray([]dagcbor.Value{
			user("Alice", "post1", "post2"),
			user("Bob", "post3", "post4", "post5"),
			user("Charlie", "post6"),
		})},
	})
}

func textSlice(t *testing.T, v dagcbor.Value) []string {
	t.Helper()
	elems, ok := v.AsArray()
	if !ok {
		t.Fatalf("expected array, got %s", v.Kind())
	}
	out := make([]string, len(elems))
	for i, e := range elems {
		s, ok := e.AsText()
		if !ok {
			t.Fatalf("element %d: expected text, got %s", i, e.Kind())
		}
		out[i] = s
	}
	return out
}

func TestGet_KeyAndIndex(t *testing.T) {
	doc := usersFixture(t)
	v, ok := Get(doc, "users[1].name")
	if !ok {
		t.Fatalf("expected present")
	}
	if s, _ := v.AsText(); s != "Bob" {
		t.Fatalf("got %q, want Bob", s)
	}
}

func TestGet_EmptyPathReturnsRoot(t *testing.T) {
	doc := usersFixture(t)
	v, ok := Get(doc, "")
	if !ok || !dagcbor.Equal(v, doc) {
		t.Fatalf("empty path must resolve to the root")
	}
}

func TestGet_AbsentOutcomes(t *testing.T) {
	doc := usersFixture(t)
	for _, p := range []string{
		"missing",
		"users[3]",
		"users[0].missing",
		"users[0].name.deeper", // key step on a text value
		"users.name",           // key step on an array
		"[0]",                  // index step on a map
	} {
		if v, ok := Get(doc, p); ok {
			t.Errorf("Get(%q) = %v; want absent", p, v)
		}
	}
}

func TestGet_WildcardOverArray(t *testing.T) {
	doc := usersFixture(t)

	v, ok := Get(doc, "users[*].posts[0]")
	if !ok {
		t.Fatalf("wildcard result must be present")
	}
	got := textSlice(t, v)
	want := []string{"post1", "post3", "post6"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("users[*].posts[0] = %v, want %v", got, want)
		}
	}

	// Misses drop out element-wise: no user has an eleventh post.
	v, ok = Get(doc, "users[*].posts[10]")
	if !ok {
		t.Fatalf("wildcard result must be present even when empty")
	}
	if v.Kind() != dagcbor.KindArray || v.Len() != 0 {
		t.Fatalf("users[*].posts[10] = %v, want empty array", v)
	}

	v, ok = Get(doc, "users[1].posts[*]")
	if !ok {
		t.Fatalf("expected present")
	}
	got = textSlice(t, v)
	want = []string{"post3", "post4", "post5"}
	if len(got) != len(want) {
		t.Fatalf("users[1].posts[*] = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("users[1].posts[*] = %v, want %v", got, want)
		}
	}
}

func TestGet_WildcardOverMap(t *testing.T) {
	doc := dagcbor.NewMap([]dagcbor.Entry{
		{Key: "a", Value: dagcbor.NewMap([]dagcbor.Entry{{Key: "id", Value: dagcbor.NewInt(1)}})},
		{Key: "b", Value: dagcbor.NewMap([]dagcbor.Entry{{Key: "id", Value: dagcbor.NewInt(2)}})},
	})
	v, ok := Get(doc, "*.id")
	if !ok {
		t.Fatalf("expected present")
	}
	elems, _ := v.AsArray()
	if len(elems) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(elems))
	}
	first, _ := elems[0].AsInt64()
	second, _ := elems[1].AsInt64()
	if first != 1 || second != 2 {
		t.Fatalf("*.id = [%d %d], want [1 2]", first, second)
	}
}

func TestGet_WildcardOnScalarIsAbsent(t *testing.T) {
	doc := dagcbor.NewMap([]dagcbor.Entry{{Key: "n", Value: dagcbor.NewInt(1)}})
	if _, ok := Get(doc, "n[*]"); ok {
		t.Fatalf("wildcard over a scalar must be absent")
	}
}

func TestGet_ChainedWildcardsFlattenOneLevelEach(t *testing.T) {
	// Over [[1,2],[3]], one wildcard maps over the outer array and the
	// second over each inner array; each level contributes one wrapper.
	doc := dagcbor.NewArray([]dagcbor.Value{
		dagcbor.NewArray([]dagcbor.Value{dagcbor.NewInt(1), dagcbor.NewInt(2)}),
		dagcbor.NewArray([]dagcbor.Value{dagcbor.NewInt(3)}),
	})
	v, ok := Get(doc, "[*][*]")
	if !ok {
		t.Fatalf("expected present")
	}
	outer, _ := v.AsArray()
	if len(outer) != 2 {
		t.Fatalf("expected 2 inner groups, got %d", len(outer))
	}
	inner0, _ := outer[0].AsArray()
	inner1, _ := outer[1].AsArray()
	if len(inner0) != 2 || len(inner1) != 1 {
		t.Fatalf("inner group sizes = %d, %d; want 2, 1", len(inner0), len(inner1))
	}
}

func TestGetSteps_NullIsPresent(t *testing.T) {
	doc := dagcbor.NewMap([]dagcbor.Entry{{Key: "gone", Value: dagcbor.Null()}})
	v, ok := GetSteps(doc, Parse("gone"))
	if !ok {
		t.Fatalf("a stored null is present")
	}
	if !v.IsNull() {
		t.Fatalf("expected null, got %s", v.Kind())
	}
}
