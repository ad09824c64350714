package schema

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/daniel-ilyin/lusid-go-tools/pkg/codes"
)

//go:embed platform.yaml
var embeddedDocument []byte

// Load parses a platform API document and extracts the model schemas
// the population and verification layers introspect.
func Load(ctx context.Context, source Source) (*Schema, error) {
	if source == nil {
		return nil, errors.New("schema: source is required")
	}
	raw, err := source.Read()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("schema: document %s is empty", source.Location())
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: load %s: %w", source.Location(), err)
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, fmt.Errorf("schema: document %s declares no model schemas", source.Location())
	}

	models := make(map[string]Model, len(doc.Components.Schemas))
	for name, ref := range doc.Components.Schemas {
		models[name] = buildModel(name, ref)
	}
	return &Schema{models: models}, nil
}

// Default loads the embedded trimmed platform document covering the
// request models this tool populates.
func Default(ctx context.Context) (*Schema, error) {
	return Load(ctx, SourceFromBytes("embedded platform document", embeddedDocument))
}

func buildModel(name string, ref *openapi3.SchemaRef) Model {
	model := Model{Name: name, Attributes: map[string]Attribute{}}
	if ref == nil || ref.Value == nil {
		return model
	}

	for _, property := range ref.Value.Required {
		model.Required = append(model.Required, codes.CamelToSnake(property))
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for property := range ref.Value.Properties {
		names = append(names, property)
	}
	sort.Strings(names)
	for _, property := range names {
		attribute := codes.CamelToSnake(property)
		model.Attributes[attribute] = Attribute{
			Name: attribute,
			Type: attributeType(ref.Value.Properties[property]),
		}
	}
	return model
}

// attributeType renders a property schema as the compact type
// descriptor convention the mapping layer reasons about: a bare model
// name, a primitive name, or list[...]/dict(str, ...) containers.
func attributeType(ref *openapi3.SchemaRef) string {
	if ref == nil {
		return "str"
	}
	if name := refName(ref.Ref); name != "" {
		return name
	}
	value := ref.Value
	if value == nil {
		return "str"
	}
	switch {
	case value.Type.Is(openapi3.TypeArray):
		return "list[" + attributeType(value.Items) + "]"
	case value.Type.Is(openapi3.TypeObject) && value.AdditionalProperties.Schema != nil:
		return "dict(str, " + attributeType(value.AdditionalProperties.Schema) + ")"
	case value.Type.Is(openapi3.TypeNumber):
		return "float"
	case value.Type.Is(openapi3.TypeInteger):
		return "int"
	case value.Type.Is(openapi3.TypeBoolean):
		return "bool"
	case value.Type.Is(openapi3.TypeString):
		if value.Format == "date-time" {
			return "datetime"
		}
		return "str"
	default:
		return "str"
	}
}

func refName(ref string) string {
	if ref == "" {
		return ""
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}
