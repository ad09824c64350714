package mapping_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/mapping"
)

func nestedFixture(leaves map[string]any) map[string]any {
	tree := make(map[string]any, 3)
	for _, top := range []string{"a1", "a2", "a3"} {
		branch := map[string]any{
			"b1": map[string]any{"c1": "old", "c2": "old"},
			"b2": map[string]any{"c3": "old", "c4": "old"},
			"b3": map[string]any{"c5": "old", "c6": "old"},
		}
		if leaf, ok := leaves[top]; ok {
			branch["b1"].(map[string]any)["c2"] = leaf
		}
		tree[top] = branch
	}
	return tree
}

func leafAt(t *testing.T, tree map[string]any, top string) any {
	t.Helper()
	return tree[top].(map[string]any)["b1"].(map[string]any)["c2"]
}

func TestUpdateValueScalar(t *testing.T) {
	tree := nestedFixture(nil)

	mapping.UpdateValue(tree, "c2", "new", []string{"a2"})

	if got := leafAt(t, tree, "a2"); got != "new" {
		t.Fatalf("a2 leaf = %v, want new", got)
	}
	if got := leafAt(t, tree, "a1"); got != "old" {
		t.Fatalf("a1 leaf = %v, want untouched old", got)
	}
	if got := leafAt(t, tree, "a3"); got != "old" {
		t.Fatalf("a3 leaf = %v, want untouched old", got)
	}
}

func TestUpdateValueAllTopLevels(t *testing.T) {
	tree := nestedFixture(nil)

	mapping.UpdateValue(tree, "c2", "new", nil)

	for _, top := range []string{"a1", "a2", "a3"} {
		if got := leafAt(t, tree, top); got != "new" {
			t.Fatalf("%s leaf = %v, want new", top, got)
		}
	}
}

func TestUpdateValueDescriptor(t *testing.T) {
	tree := nestedFixture(map[string]any{
		"a2": map[string]any{"default": "NotFound", "column": "old"},
	})

	mapping.UpdateValue(tree, "c2", "new", []string{"a2"})

	want := map[string]any{"default": "NotFound", "column": "new"}
	if diff := cmp.Diff(want, leafAt(t, tree, "a2")); diff != "" {
		t.Fatalf("descriptor leaf mismatch (-want +got):\n%s", diff)
	}
	if got := leafAt(t, tree, "a1"); got != "old" {
		t.Fatalf("a1 leaf = %v, want untouched old", got)
	}
}

func TestUpdateValueLiteralPromoted(t *testing.T) {
	tree := nestedFixture(map[string]any{"a2": "$old", "a3": "$old"})

	mapping.UpdateValue(tree, "c2", "new", []string{"a2", "a3"})

	want := map[string]any{"default": "old", "column": "new"}
	for _, top := range []string{"a2", "a3"} {
		if diff := cmp.Diff(want, leafAt(t, tree, top)); diff != "" {
			t.Fatalf("%s literal leaf mismatch (-want +got):\n%s", top, diff)
		}
	}
	if got := leafAt(t, tree, "a1"); got != "old" {
		t.Fatalf("a1 leaf = %v, want untouched old", got)
	}
}

func TestUpdateValueUnrelatedLeavesUntouched(t *testing.T) {
	tree := nestedFixture(nil)

	mapping.UpdateValue(tree, "c2", "new", nil)

	if got := tree["a1"].(map[string]any)["b2"].(map[string]any)["c3"]; got != "old" {
		t.Fatalf("unrelated leaf changed: %v", got)
	}
}

func TestCheckFieldsExist(t *testing.T) {
	available := []string{"field1", "field2", "field3", "field4", "field5", "field6"}

	if err := mapping.CheckFieldsExist([]string{"field1", "field4", "field6"}, available, "test_file_type"); err != nil {
		t.Fatalf("expected required fields to be present, got %v", err)
	}

	err := mapping.CheckFieldsExist([]string{"field1", "field4", "field7", "field8"}, available, "test_file_type")
	if err == nil {
		t.Fatal("expected missing fields to fail")
	}
	for _, fragment := range []string{"field7", "field8", "test_file_type"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("error %q does not name %q", err, fragment)
		}
	}
}
