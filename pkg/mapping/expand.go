package mapping

import "strings"

// PathDelimiter separates the segments of a flattened attribute path,
// e.g. "tax_lots.cost.amount".
const PathDelimiter = "."

// ExpandPath builds a singly nested map from an ordered list of path
// segments and a leaf value. The recursion terminates on the final
// segment, producing {last: value}, then wraps outward.
func ExpandPath(keys []string, value any) map[string]any {
	if len(keys) == 0 {
		return map[string]any{}
	}
	if len(keys) == 1 {
		return map[string]any{keys[0]: value}
	}
	return map[string]any{keys[0]: ExpandPath(keys[1:], value)}
}

// Expand converts a flat mapping whose keys may be dot-delimited paths
// into a nested mapping of mappings. Keys without a delimiter are
// carried over verbatim, so expanding an already nested mapping is a
// no-op.
func Expand(flat map[string]any) map[string]any {
	expanded := make(map[string]any, len(flat))
	for key, value := range flat {
		if strings.Contains(key, PathDelimiter) {
			Merge(expanded, ExpandPath(strings.Split(key, PathDelimiter), value))
			continue
		}
		Merge(expanded, map[string]any{key: value})
	}
	return expanded
}

// Merge deep-merges next into orig in place. Where both sides hold a
// map under the same key the merge recurses; any other value from next
// overwrites the original.
func Merge(orig, next map[string]any) {
	for key, value := range next {
		if nextMap, ok := value.(map[string]any); ok {
			if origMap, ok := orig[key].(map[string]any); ok {
				Merge(origMap, nextMap)
				continue
			}
		}
		orig[key] = value
	}
}
