package document

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadAfterWrite(t *testing.T) {
	cases := []struct {
		name string
		path string
		v    Value
	}{
		{"scalar", "a", Leaf{V: "x"}},
		{"nested scalar", "a.b.c", Leaf{V: 42.0}},
		{"array", "list", Leaf{V: []any{1.0, "two", true}}},
		{"document", "user.profile", Document{"name": Leaf{V: "Ana"}}},
		{"null", "n", Leaf{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Write(New(), tc.path, tc.v)
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			got, ok := Read(doc, tc.path)
			if !ok {
				t.Fatalf("Read(%q) missed", tc.path)
			}
			if diff := cmp.Diff(tc.v, got); diff != "" {
				t.Fatalf("Read(%q) mismatch (-want +got):\n%s", tc.path, diff)
			}
		})
	}
}

func TestWriteDisjointPaths(t *testing.T) {
	doc := New()
	doc, _ = Write(doc, "a.x", Leaf{V: "1"})
	doc, _ = Write(doc, "a.y", Leaf{V: "2"})
	doc, _ = Write(doc, "b", Leaf{V: "3"})

	want := Document{
		"a": Document{"x": Leaf{V: "1"}, "y": Leaf{V: "2"}},
		"b": Leaf{V: "3"},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteReplacesNonDocumentIntermediates(t *testing.T) {
	doc := Document{
		"s":   Leaf{V: "scalar"},
		"arr": Leaf{V: []any{1.0, 2.0}},
	}
	doc, _ = Write(doc, "s.inner", Leaf{V: true})
	doc, _ = Write(doc, "arr.0", Leaf{V: "zero"})

	want := Document{
		"s":   Document{"inner": Leaf{V: true}},
		"arr": Document{"0": Leaf{V: "zero"}},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteRoot(t *testing.T) {
	doc := Document{"old": Leaf{V: 1.0}}
	repl := Document{"new": Leaf{V: 2.0}}

	got, err := Write(doc, "", repl)
	if err != nil {
		t.Fatalf("Write root: %v", err)
	}
	if diff := cmp.Diff(repl, got); diff != "" {
		t.Fatalf("root mismatch (-want +got):\n%s", diff)
	}

	got, err = Write(doc, "", Leaf{V: "nope"})
	if !errors.Is(err, ErrRootNotDocument) {
		t.Fatalf("expected ErrRootNotDocument, got %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Fatalf("doc changed on failed root write (-want +got):\n%s", diff)
	}
}

func TestReadMisses(t *testing.T) {
	doc := Document{
		"a":   Document{"b": Leaf{V: "c"}},
		"arr": Leaf{V: []any{"x"}},
	}
	for _, p := range []string{"missing", "a.missing", "a.b.c", "arr.0", "a.b.c.d"} {
		if v, ok := Read(doc, p); ok {
			t.Fatalf("Read(%q) = %v, want miss", p, v)
		}
	}
	root, ok := Read(doc, "")
	if !ok {
		t.Fatalf("Read root missed")
	}
	if diff := cmp.Diff(Value(doc), root); diff != "" {
		t.Fatalf("root mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckAndRemove(t *testing.T) {
	doc, _ := Write(New(), "user.profile.name", Leaf{V: "Ana"})

	if ok, err := Check(doc, "user.profile.name"); err != nil || !ok {
		t.Fatalf("Check after write: ok=%v err=%v", ok, err)
	}
	if err := Remove(doc, "user.profile.name"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ok, _ := Check(doc, "user.profile.name"); ok {
		t.Fatalf("Check after remove should be false")
	}
	got, _ := Read(doc, "user")
	if diff := cmp.Diff(Value(Document{"profile": Document{}}), got); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
}

// Falsy values are present for Check but are not removable.
func TestRemoveKeepsFalsyValues(t *testing.T) {
	falsy := map[string]any{
		"zero":  0,
		"fzero": 0.0,
		"empty": "",
		"false": false,
		"null":  nil,
		"nan":   math.NaN(),
		"uint0": uint8(0),
	}
	for name, v := range falsy {
		t.Run(name, func(t *testing.T) {
			doc, _ := Write(New(), "x", ValueOf(v))
			if err := Remove(doc, "x"); err != nil {
				t.Fatalf("Remove: %v", err)
			}
			if ok, _ := Check(doc, "x"); !ok {
				t.Fatalf("falsy value %v should survive Remove", v)
			}
		})
	}
}

func TestRemoveTruthyContainers(t *testing.T) {
	doc := Document{
		"emptyDoc": Document{},
		"emptyArr": Leaf{V: []any{}},
		"one":      Leaf{V: 1},
	}
	for _, k := range []string{"emptyDoc", "emptyArr", "one"} {
		if err := Remove(doc, k); err != nil {
			t.Fatalf("Remove(%q): %v", k, err)
		}
		if ok, _ := Check(doc, k); ok {
			t.Fatalf("%q should have been removed", k)
		}
	}
}

func TestRemoveAndCheckThroughMissingParent(t *testing.T) {
	doc := Document{"a": Leaf{V: "leaf"}}
	if err := Remove(doc, "a.b"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := Remove(doc, "nope.b"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ok, _ := Check(doc, "a.b"); ok {
		t.Fatalf("Check through leaf should be false")
	}
	if _, ok := doc["a"]; !ok {
		t.Fatalf("leaf parent should be untouched")
	}
}

func TestEmptyPathContract(t *testing.T) {
	doc := New()
	if err := Remove(doc, ""); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("Remove(\"\") err = %v, want ErrEmptyPath", err)
	}
	if _, err := Check(doc, ""); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("Check(\"\") err = %v, want ErrEmptyPath", err)
	}
}
