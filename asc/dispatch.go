package asc

import (
	"context"
	"fmt"

	"github.com/viant/asc-mcp/asc/client"
	"github.com/viant/asc-mcp/asc/tool"
)

// ExecuteTool dispatches one tool invocation: lookup, validation, request
// shaping, credential issuance, the HTTP exchange and error translation.
// Every failure is terminal for the invocation; nothing is retried here.
func (s *Service) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	d, ok := s.registry.Lookup(name)
	if !ok {
		return "", &UnknownToolError{Name: name}
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	// Validation happens before the request is shaped; an invocation
	// lacking a required argument never reaches the network.
	if err := d.Validate(args); err != nil {
		return "", err
	}
	request, err := s.shapeRequest(d, args)
	if err != nil {
		return "", err
	}

	// One fresh single-use token per dispatched request.
	token, err := s.issuer.Issue(ctx)
	if err != nil {
		return "", err
	}

	body, err := s.upstream.Do(ctx, request, token)
	if err != nil {
		return "", err
	}
	if d.Confirm != "" {
		// The upstream body of a successful delete is empty.
		return fmt.Sprintf(d.Confirm, args[d.PathArg]), nil
	}
	return string(body), nil
}

// shapeRequest builds the concrete upstream request from the descriptor's
// path template, query rules and body envelope.
func (s *Service) shapeRequest(d *tool.Descriptor, args map[string]interface{}) (*client.Request, error) {
	path, err := d.BuildPath(args)
	if err != nil {
		return nil, err
	}
	query, err := d.BuildQuery(args)
	if err != nil {
		return nil, err
	}
	body, err := d.BuildBody(args)
	if err != nil {
		return nil, err
	}
	return &client.Request{Method: d.Method, Path: path, Query: query, Body: body}, nil
}
