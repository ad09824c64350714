// Package populate constructs platform request models from a mapping
// tree and one row of tabular data. Population is driven by the static
// descriptor tables in pkg/models: structural slots come from Options,
// everything else resolves through the mapping against the row.
package populate

import (
	"fmt"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/dataframe"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/mapping"
	"github.com/daniel-ilyin/lusid-go-tools/pkg/models"
)

// Options carries the objects assigned to a model's structural slots
// directly, bypassing row lookup. A nil slot leaves the attribute
// unset.
type Options struct {
	Properties     any
	Identifiers    any
	SubHoldingKeys any
}

// Populate builds one request model instance. The mapping tree may mix
// dotted keys and nested maps; it is expanded before traversal.
// Attributes without a mapping entry stay unset.
func Populate(modelName string, tree map[string]any, row dataframe.Row, opts Options) (any, error) {
	descriptor, ok := models.Lookup(modelName)
	if !ok {
		return nil, fmt.Errorf("populate: %s is not a registered model", modelName)
	}

	value, set, err := build(descriptor, mapping.Expand(tree), row, opts)
	if err != nil {
		return nil, err
	}
	if !set {
		return descriptor.New(map[string]any{})
	}
	return value, nil
}

// build constructs one model from an expanded mapping subtree. The
// second return reports whether any attribute resolved, so callers can
// omit nested objects whose subtree produced nothing.
func build(descriptor models.Descriptor, tree map[string]any, row dataframe.Row, opts Options) (any, bool, error) {
	fields := make(map[string]any)

	for _, field := range descriptor.Fields {
		if field.Kind.Structural() {
			if slot := structuralSlot(field.Kind, opts); slot != nil {
				fields[field.Name] = slot
			}
			continue
		}

		entry, ok := tree[field.Name]
		if !ok || entry == nil {
			continue
		}

		switch field.Kind {
		case models.KindNested, models.KindNestedList:
			subtree, isTree := entry.(map[string]any)
			if !isTree || mapping.IsDescriptor(subtree) {
				// A leaf entry for a complex attribute: resolve it and
				// let the constructor check the type.
				value, resolved, err := resolveLeaf(descriptor.Name, field.Name, entry, row)
				if err != nil {
					return nil, false, err
				}
				if resolved {
					fields[field.Name] = value
				}
				continue
			}
			nested, ok := models.Lookup(field.Model)
			if !ok {
				return nil, false, fmt.Errorf("populate: %s.%s refers to unregistered model %s",
					descriptor.Name, field.Name, field.Model)
			}
			value, set, err := build(nested, subtree, row, Options{})
			if err != nil {
				return nil, false, err
			}
			if !set {
				continue
			}
			if field.Kind == models.KindNestedList {
				fields[field.Name] = []any{value}
			} else {
				fields[field.Name] = value
			}
		case models.KindDatetime:
			value, resolved, err := resolveLeaf(descriptor.Name, field.Name, entry, row)
			if err != nil {
				return nil, false, err
			}
			if resolved {
				fields[field.Name] = normalizeTimestamp(value)
			}
		default:
			value, resolved, err := resolveLeaf(descriptor.Name, field.Name, entry, row)
			if err != nil {
				return nil, false, err
			}
			if resolved {
				fields[field.Name] = value
			}
		}
	}

	if len(fields) == 0 {
		return nil, false, nil
	}
	value, err := descriptor.New(fields)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func structuralSlot(kind models.Kind, opts Options) any {
	switch kind {
	case models.KindProperties:
		return opts.Properties
	case models.KindIdentifiers:
		return opts.Identifiers
	case models.KindSubHoldingKeys:
		return opts.SubHoldingKeys
	default:
		return nil
	}
}

// resolveLeaf resolves one mapping entry against the row: column
// references read the cell, literals pass through, descriptors fall
// back to their default when the cell is missing.
func resolveLeaf(model, attribute string, entry any, row dataframe.Row) (any, bool, error) {
	field, err := mapping.ParseField(entry)
	if err != nil {
		return nil, false, fmt.Errorf("populate: %s.%s: %w", model, attribute, err)
	}
	value, ok := field.Resolve(row.Get)
	return value, ok, nil
}
