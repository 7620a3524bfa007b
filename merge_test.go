package holydiver

import (
	"reflect"
	"testing"
)

func TestDeepMerge_OverridePrecedence(t *testing.T) {
	t.Parallel()

	base := map[string]any{"a": 1, "d": map[string]any{"e": 3}}
	override := map[string]any{"a": 5, "d": map[string]any{"f": 9}}

	merged := DeepMerge(base, override)

	want := map[string]any{"a": 5, "d": map[string]any{"e": 3, "f": 9}}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
}

func TestDeepMerge_BaseOnlyKeysSurvive(t *testing.T) {
	t.Parallel()

	base := map[string]any{"keep": "me", "nested": map[string]any{"still": "here"}}
	merged := DeepMerge(base, map[string]any{"other": 1})

	if merged["keep"] != "me" {
		t.Errorf("keep = %v, want %q", merged["keep"], "me")
	}
	nested, ok := merged["nested"].(map[string]any)
	if !ok || nested["still"] != "here" {
		t.Errorf("nested = %v, want map with still=here", merged["nested"])
	}
}

func TestDeepMerge_ListsReplacedWholesale(t *testing.T) {
	t.Parallel()

	base := map[string]any{"items": []any{1, 2, 3}}
	override := map[string]any{"items": []any{9}}

	merged := DeepMerge(base, override)

	if !reflect.DeepEqual(merged["items"], []any{9}) {
		t.Fatalf("items = %v, want [9]", merged["items"])
	}
}

func TestDeepMerge_MappingReplacesScalar(t *testing.T) {
	t.Parallel()

	base := map[string]any{"a": 1}
	override := map[string]any{"a": map[string]any{"b": 2}}

	merged := DeepMerge(base, override)

	want := map[string]any{"a": map[string]any{"b": 2}}
	if !reflect.DeepEqual(merged, want) {
		t.Fatalf("merged = %v, want %v", merged, want)
	}
}

func TestDeepMerge_InputsUntouched(t *testing.T) {
	t.Parallel()

	base := map[string]any{"a": 1}
	override := map[string]any{"a": 2, "b": 3}

	_ = DeepMerge(base, override)

	if base["a"] != 1 {
		t.Errorf("base mutated: a = %v", base["a"])
	}
	if _, ok := base["b"]; ok {
		t.Error("base mutated: gained key b")
	}
}
