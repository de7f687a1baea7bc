package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
)

// parseOverrides turns repeated key=value flags into one nested override.
// Dotted keys address nested fields, so "employee.role=hr" only replaces
// the role of the employee.
func parseOverrides(pairs []string) (entity.Record, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	overrides := entity.Record{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid override %q: expected key=value", pair)
		}
		for _, part := range strings.Split(key, ".") {
			if part == "" {
				return nil, fmt.Errorf("invalid override key %q", key)
			}
		}
		overrides = entity.Merge(overrides, entity.Path(key, parseValue(value)))
	}
	return overrides, nil
}

// parseValue keeps numbers and booleans typed in the generated JSON.
// Quote a value to force a string.
func parseValue(raw string) any {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}
