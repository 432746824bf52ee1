package cmd

import (
	"fmt"
	"sort"

	"github.com/viant/asc-mcp/asc/matcher"
)

// ListToolsCmd prints every registered tool with its description.
type ListToolsCmd struct {
	Pattern string `short:"p" long:"pattern" description:"Only list tools whose name matches the pattern (prefix or *)" default:"*"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	names := matcher.Filter(c.Pattern, svc.ToolNames())
	// Sorting for deterministic output (helpful for tests & scripting).
	sort.Strings(names)
	for _, name := range names {
		description, _, _ := svc.ToolMetadata(name)
		fmt.Printf("%s\t%s\n", name, description)
	}
	return nil
}
