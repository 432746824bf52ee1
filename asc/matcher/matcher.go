// Package matcher implements the name-pattern semantics shared by the CLI
// listing commands.
package matcher

import "strings"

// Match reports whether a tool name satisfies pattern: "*" matches
// everything, an empty pattern nothing, anything else is a prefix match.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

// Filter returns the names satisfying pattern, preserving input order.
func Filter(pattern string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if Match(pattern, name) {
			out = append(out, name)
		}
	}
	return out
}
