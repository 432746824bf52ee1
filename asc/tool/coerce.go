package tool

import (
	"encoding/json"
	"fmt"
	"math"
)

// Argument values arrive as the generic JSON shapes produced by the MCP
// transport decoder: string, float64, bool, []interface{}.

func asString(value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", value)
	}
	return s, nil
}

func asStrings(value interface{}) ([]string, error) {
	switch actual := value.(type) {
	case []string:
		return actual, nil
	case []interface{}:
		out := make([]string, 0, len(actual))
		for _, item := range actual {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string element, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected array of strings, got %T", value)
}

func asInt(value interface{}) (int, error) {
	switch actual := value.(type) {
	case int:
		return actual, nil
	case int64:
		return int(actual), nil
	case float64:
		if actual != math.Trunc(actual) {
			return 0, fmt.Errorf("expected integer, got %v", actual)
		}
		return int(actual), nil
	case json.Number:
		n, err := actual.Int64()
		if err != nil {
			return 0, fmt.Errorf("expected integer, got %v", actual)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("expected number, got %T", value)
}

func asBool(value interface{}) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("expected boolean, got %T", value)
	}
	return b, nil
}
