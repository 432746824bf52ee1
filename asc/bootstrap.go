package asc

import (
	"context"

	"github.com/viant/asc-mcp/asc/auth"
	"github.com/viant/asc-mcp/asc/client"
	"github.com/viant/asc-mcp/asc/config"
	"github.com/viant/asc-mcp/asc/tool"
)

// init is the main bootstrap routine invoked by New once all options have
// been applied. Its sole responsibility is to orchestrate the individual
// preparation steps so that the logic stays easy to read and to maintain.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	// Validate configuration early to fail fast: missing credentials are a
	// startup condition, not a per-call error.
	if err := s.config.Validate(); err != nil {
		return err
	}

	s.registry = tool.NewRegistry()
	tool.RegisterTypes(s.registry)
	s.types = tool.Types()

	if s.issuer == nil {
		s.issuer = auth.New(s.config.KeyID, s.config.IssuerID, s.config.PrivateKey)
	}
	s.upstream = client.New(s.config.BaseURL, s.transport)
	return nil
}

// initDefaults applies fall-back values for optional dependencies that were
// not supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = config.FromEnv()
	}
	s.config.Init()
}
