package agent

import (
	"fmt"
	"sort"
	"strings"
)

// maxOutputKeys caps the size of an agent output object.
const maxOutputKeys = 5

// validateOutput checks a parsed output against the declared schema:
// every schema key present, no keys beyond the schema, at most
// maxOutputKeys keys, and values loosely matching the declared types.
func validateOutput(schema map[string]string, output map[string]any) error {
	if len(output) > maxOutputKeys {
		return fmt.Errorf("%w: %d keys exceeds the cap of %d", ErrOutputValidation, len(output), maxOutputKeys)
	}

	var missing []string
	for key := range schema {
		if _, ok := output[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing keys %s", ErrOutputValidation, strings.Join(sortedSlice(missing), ", "))
	}

	var extra []string
	for key := range output {
		if _, ok := schema[key]; !ok {
			extra = append(extra, key)
		}
	}
	if len(extra) > 0 {
		return fmt.Errorf("%w: keys beyond schema: %s", ErrOutputValidation, strings.Join(sortedSlice(extra), ", "))
	}

	for key, typeName := range schema {
		if !typeMatches(typeName, output[key]) {
			return fmt.Errorf("%w: key %q is not a %s", ErrOutputValidation, key, typeName)
		}
	}
	return nil
}

// typeMatches loosely checks a JSON value against a schema type name.
// Null is accepted for any type; unknown type names are not enforced.
func typeMatches(typeName string, value any) bool {
	if value == nil {
		return true
	}
	switch typeName {
	case "string":
		_, ok := value.(string)
		return ok
	case "number":
		_, ok := value.(float64)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "array":
		_, ok := value.([]any)
		return ok
	case "object":
		_, ok := value.(map[string]any)
		return ok
	default:
		return true
	}
}

func sortedSlice(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}
