package mapping

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Well-known section names inside a mapping configuration file.
const (
	SectionRequired          = "required"
	SectionOptional          = "optional"
	SectionIdentifierMapping = "identifier_mapping"
	SectionProperties        = "properties"
	SectionCashFlag          = "cash_flag"
	SectionQuoteScalar       = "quote_scalar"
)

var (
	// ErrEmptyDocument is returned when the configuration file parses
	// to nothing.
	ErrEmptyDocument = errors.New("mapping: configuration document is empty")
)

// LoadFile reads and parses a YAML mapping configuration file.
func LoadFile(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapping: read %s: %w", path, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("mapping: parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML mapping configuration into a nested mapping
// tree. Values arrive untyped; validation of the shapes callers rely on
// happens in ValidateFileTypes at the load boundary.
func Parse(raw []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("mapping: decode yaml: %w", err)
	}
	if len(doc) == 0 {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// ValidateFileTypes checks the untyped configuration tree for the
// shapes the loaders depend on: each requested file type must be a
// mapping section holding a non-empty "required" mapping.
func ValidateFileTypes(doc map[string]any, fileTypes []string) error {
	if doc == nil {
		return ErrEmptyDocument
	}
	for _, fileType := range fileTypes {
		section, ok := doc[fileType]
		if !ok {
			return fmt.Errorf("mapping: configuration has no %s section", fileType)
		}
		tree, ok := section.(map[string]any)
		if !ok {
			return fmt.Errorf("mapping: the %s section must be a mapping, got %T", fileType, section)
		}
		required, ok := tree[SectionRequired]
		if !ok {
			return fmt.Errorf("mapping: the %s section has no %s block", fileType, SectionRequired)
		}
		requiredTree, ok := required.(map[string]any)
		if !ok {
			return fmt.Errorf("mapping: the %s.%s block must be a mapping, got %T", fileType, SectionRequired, required)
		}
		if len(requiredTree) == 0 {
			return fmt.Errorf("mapping: the %s.%s block is empty", fileType, SectionRequired)
		}
	}
	return nil
}

// FileTypeSection returns the mapping subtree for one file type.
func FileTypeSection(doc map[string]any, fileType string) (map[string]any, error) {
	section, ok := doc[fileType].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("mapping: configuration has no %s section", fileType)
	}
	return section, nil
}
