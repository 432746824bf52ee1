package asc

import (
	"context"

	"github.com/viant/asc-mcp/asc/tool"
	"github.com/viant/asc-mcp/internal/conv"
	"github.com/viant/jsonrpc"
	mcpschema "github.com/viant/mcp-protocol/schema"
	serverproto "github.com/viant/mcp-protocol/server"
)

// Tools returns an MCP tool entry for every catalogue descriptor. Entries
// are built once and cached; the catalogue is immutable.
func (s *Service) Tools() serverproto.Tools {
	s.mu.RLock()
	if s.entries != nil {
		defer s.mu.RUnlock()
		return s.entries
	}
	s.mu.RUnlock()

	result := make(serverproto.Tools, 0)
	for _, name := range s.registry.Names() {
		entry, err := s.LookupTool(name)
		if err != nil {
			continue
		}
		result = append(result, entry)
	}
	s.mu.Lock()
	s.entries = result
	s.mu.Unlock()
	return result
}

// LookupTool builds the MCP tool entry for a single catalogue descriptor.
func (s *Service) LookupTool(name string) (*serverproto.ToolEntry, error) {
	d, ok := s.registry.Lookup(name)
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}
	metadata, err := tool.BuildSchema(d)
	if err != nil {
		return nil, err
	}
	entry := serverproto.ToolEntry{Metadata: metadata}
	entry.Handler = func(ctx context.Context, request *mcpschema.CallToolRequest) (*mcpschema.CallToolResult, *jsonrpc.Error) {
		output, err := s.ExecuteTool(ctx, request.Params.Name, request.Params.Arguments)
		res := &mcpschema.CallToolResult{}
		if err != nil {
			res.IsError = conv.Pointer[bool](true)
			res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
				Text: err.Error(),
			})
			return res, nil
		}
		res.Content = append(res.Content, mcpschema.CallToolResultContentElem{
			Text: output,
		})
		return res, nil
	}
	return &entry, nil
}
