package services

import (
	"fmt"
	"strconv"
	"strings"
)

// hasFields reports whether every required key is present in the input
func hasFields(input map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if _, ok := input[k]; !ok {
			return false
		}
	}
	return true
}

// trimmedString renders an input value as a whitespace-trimmed string
func trimmedString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v))
}

// toInt coerces an input value to an integer. JSON numbers arrive as
// float64 and are truncated; numeric strings must parse as plain integers.
func toInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case float64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, fmt.Errorf("not an integer: %q", val)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("not an integer: %v", v)
	}
}
