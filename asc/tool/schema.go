package tool

import (
	"fmt"
	"reflect"

	schema "github.com/viant/mcp-protocol/schema"
	"github.com/viant/x"
)

// BuildSchema converts a descriptor's typed argument record into MCP tool
// metadata. The input schema is derived from the record's JSON shape; fields
// without omitempty become required properties.
func BuildSchema(d *Descriptor) (schema.Tool, error) {
	var inputSchema schema.ToolInputSchema
	sample := reflect.New(d.Args).Interface()
	if err := inputSchema.Load(sample); err != nil {
		return schema.Tool{}, fmt.Errorf("failed to build input schema for %s: %w", d.Name, err)
	}
	description := d.Description
	return schema.Tool{Name: d.Name, Description: &description, InputSchema: inputSchema}, nil
}

// typeRegistry holds the argument record type of every tool.
var typeRegistry = x.NewRegistry()

// Types returns the registry of argument record types.
func Types() *x.Registry {
	return typeRegistry
}

// RegisterTypes records every catalogue argument type so that generic
// JSON-to-record conversions can resolve them by type.
func RegisterTypes(registry *Registry) {
	for _, d := range registry.All() {
		typeRegistry.Register(x.NewType(d.Args))
	}
}
