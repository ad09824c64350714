package mapping

import (
	"fmt"
	"strings"
)

// LiteralPrefix marks a string mapping value as a literal constant
// rather than a source column reference.
const LiteralPrefix = "$"

// FieldKind discriminates the forms a mapping value can take.
type FieldKind int

const (
	// FieldColumn resolves the value from a named source column.
	FieldColumn FieldKind = iota
	// FieldLiteral supplies a constant value directly.
	FieldLiteral
	// FieldWithDefault resolves a column and falls back to a default
	// when the cell is missing.
	FieldWithDefault
)

// Field is the resolved form of a single mapping value: a column
// reference, a literal constant, or a column with a fallback default.
// It replaces ad hoc type inspection of raw mapping entries at each
// call site.
type Field struct {
	Kind    FieldKind
	Column  string
	Literal any
	Default any
}

// ParseField classifies a raw mapping value. Strings prefixed with
// LiteralPrefix become literals, other strings become column
// references, and {"column": ..., "default": ...} descriptors become
// the corresponding variant. Any other value is carried as a literal.
func ParseField(value any) (Field, error) {
	switch v := value.(type) {
	case string:
		if strings.HasPrefix(v, LiteralPrefix) {
			return Field{Kind: FieldLiteral, Literal: strings.TrimPrefix(v, LiteralPrefix)}, nil
		}
		return Field{Kind: FieldColumn, Column: v}, nil
	case map[string]any:
		column, _ := v["column"].(string)
		def, hasDefault := v["default"]
		switch {
		case column == "" && !hasDefault:
			return Field{}, fmt.Errorf("mapping: field descriptor needs a column or a default: %v", v)
		case column == "":
			return Field{Kind: FieldLiteral, Literal: def}, nil
		case !hasDefault:
			return Field{Kind: FieldColumn, Column: column}, nil
		default:
			return Field{Kind: FieldWithDefault, Column: column, Default: def}, nil
		}
	default:
		return Field{Kind: FieldLiteral, Literal: value}, nil
	}
}

// IsDescriptor reports whether a nested mapping node is a field
// descriptor rather than a subtree of attribute mappings.
func IsDescriptor(node map[string]any) bool {
	if len(node) == 0 || len(node) > 2 {
		return false
	}
	for key := range node {
		if key != "column" && key != "default" {
			return false
		}
	}
	return true
}

// Resolve returns the value this field contributes for one row, using
// lookup to read source columns. Column references prefer the row
// value; descriptors fall back to their default when the cell is
// missing. The second return reports whether a value was produced.
func (f Field) Resolve(lookup func(string) (any, bool)) (any, bool) {
	switch f.Kind {
	case FieldLiteral:
		return f.Literal, true
	case FieldColumn:
		value, ok := lookup(f.Column)
		if !ok || value == nil {
			return nil, false
		}
		return value, true
	case FieldWithDefault:
		if value, ok := lookup(f.Column); ok && value != nil {
			return value, true
		}
		return f.Default, true
	}
	return nil, false
}
