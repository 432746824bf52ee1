package asc

import "fmt"

// UnknownToolError reports a tool name absent from the registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %v", e.Name)
}
