package mapping

import (
	"fmt"
	"strings"
)

// CheckFieldsExist verifies that every required field name is present
// in the available set. The returned error names both the missing
// fields and the file type they were required for.
func CheckFieldsExist(required, available []string, fileType string) error {
	present := make(map[string]struct{}, len(available))
	for _, field := range available {
		present[field] = struct{}{}
	}

	var missing []string
	for _, field := range required {
		if _, ok := present[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("mapping: the %s mapping is missing fields: %s", fileType, strings.Join(missing, ", "))
	}
	return nil
}
