package mapping

import (
	"slices"
	"strings"
)

// UpdateValue locates every leaf named searchKey within the nested
// mapping and repoints it at newColumn. When topLevel is non-empty only
// the named top-level subtrees are searched. A plain scalar leaf is
// replaced wholesale; a LiteralPrefix scalar is promoted to a
// {"default": old-without-prefix, "column": newColumn} descriptor; an
// existing descriptor keeps its default and only has its column entry
// overwritten. The mapping is mutated in place and returned.
func UpdateValue(nested map[string]any, searchKey, newColumn string, topLevel []string) map[string]any {
	for key, value := range nested {
		if len(topLevel) > 0 && !slices.Contains(topLevel, key) {
			continue
		}
		if subtree, ok := value.(map[string]any); ok {
			updateLeaf(subtree, searchKey, newColumn)
		}
	}
	return nested
}

func updateLeaf(node map[string]any, searchKey, newColumn string) {
	for key, value := range node {
		if key == searchKey {
			switch v := value.(type) {
			case map[string]any:
				v["column"] = newColumn
			case string:
				if strings.HasPrefix(v, LiteralPrefix) {
					node[key] = map[string]any{
						"default": strings.TrimPrefix(v, LiteralPrefix),
						"column":  newColumn,
					}
					continue
				}
				node[key] = newColumn
			default:
				node[key] = newColumn
			}
			continue
		}
		if subtree, ok := value.(map[string]any); ok && !IsDescriptor(subtree) {
			updateLeaf(subtree, searchKey, newColumn)
		}
	}
}
