package schema

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/mapping"
)

var (
	// ErrNilMapping is returned when no mapping was supplied at all.
	ErrNilMapping = errors.New("schema: required mapping is nil")
	// ErrEmptyMapping is returned when the supplied mapping has no
	// entries.
	ErrEmptyMapping = errors.New("schema: required mapping is empty")
)

// VerifyRequiredMapped checks that every required leaf path of the
// model is covered by the mapping. Paths whose first segment appears in
// exempt are supplied out-of-band (properties, identifiers) and are not
// required from the mapping. The error lists every missing path.
func (s *Schema) VerifyRequiredMapped(tree map[string]any, model string, exempt []string) error {
	if tree == nil {
		return ErrNilMapping
	}
	if len(tree) == 0 {
		return ErrEmptyMapping
	}

	required, err := s.RequiredLeafPaths(model)
	if err != nil {
		return err
	}

	provided := make(map[string]struct{})
	collectLeafPaths(mapping.Expand(tree), "", provided)

	var missing []string
	for _, path := range required {
		first, _, _ := strings.Cut(path, ".")
		if slices.Contains(exempt, first) {
			continue
		}
		if _, ok := provided[path]; ok {
			continue
		}
		missing = append(missing, path)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("schema: the mapping for %s is missing required attributes: %s", model, strings.Join(missing, ", "))
	}
	return nil
}

// collectLeafPaths records the dotted path of every leaf in a nested
// mapping. Field descriptors count as leaves.
func collectLeafPaths(tree map[string]any, prefix string, into map[string]struct{}) {
	for key, value := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if subtree, ok := value.(map[string]any); ok && !mapping.IsDescriptor(subtree) {
			collectLeafPaths(subtree, path, into)
			continue
		}
		into[path] = struct{}{}
	}
}
