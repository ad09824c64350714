package schema

import "regexp"

// Container describes how an attribute's type wraps its element type.
type Container int

const (
	// ContainerNone marks a bare type.
	ContainerNone Container = iota
	// ContainerList marks a list[...] descriptor.
	ContainerList
	// ContainerDict marks a dict(str, ...) descriptor.
	ContainerDict
)

func (c Container) String() string {
	switch c {
	case ContainerList:
		return "list"
	case ContainerDict:
		return "dict"
	default:
		return ""
	}
}

var (
	listDescriptor = regexp.MustCompile(`^list\[(.+)\]$`)
	dictDescriptor = regexp.MustCompile(`^dict\(\s*.+?,\s*(.+?)\s*\)$`)
)

// ParseAttributeType splits a type descriptor into its bare element
// type and container kind: "list[TaxLot]" yields ("TaxLot",
// ContainerList), "dict(str, str)" yields ("str", ContainerDict), and
// anything else is returned as-is with ContainerNone.
func ParseAttributeType(descriptor string) (string, Container) {
	if match := listDescriptor.FindStringSubmatch(descriptor); match != nil {
		return match[1], ContainerList
	}
	if match := dictDescriptor.FindStringSubmatch(descriptor); match != nil {
		return match[1], ContainerDict
	}
	return descriptor, ContainerNone
}

// IsNestedModel reports whether a type descriptor names another
// declared model, directly or inside a list/dict container, as opposed
// to a primitive.
func (s *Schema) IsNestedModel(descriptor string) bool {
	bare, _ := ParseAttributeType(descriptor)
	return s.IsModel(bare)
}
