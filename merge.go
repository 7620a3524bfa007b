package holydiver

// DeepMerge merges two plain mappings, with values from override taking
// priority. Nested mappings merge key-wise and recursively; every other
// value type, including slices, is overwritten wholesale. Keys present only
// in base survive untouched. Neither input is mutated.
func DeepMerge(base, override map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		if nested, ok := v.(map[string]any); ok {
			existing, _ := merged[k].(map[string]any)
			merged[k] = DeepMerge(existing, nested)
			continue
		}
		merged[k] = v
	}
	return merged
}
