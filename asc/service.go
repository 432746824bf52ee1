package asc

import (
	"context"
	"net/http"
	"sync"

	"github.com/viant/asc-mcp/asc/client"
	"github.com/viant/asc-mcp/asc/config"
	"github.com/viant/asc-mcp/asc/tool"
	"github.com/viant/x"

	serverproto "github.com/viant/mcp-protocol/server"
)

// TokenSource supplies one fresh credential per outbound request. The
// production implementation is auth.Issuer; tests substitute their own.
type TokenSource interface {
	Issue(ctx context.Context) (string, error)
}

// Service bundles configuration, the static tool registry, the credential
// issuer and the upstream HTTP client. All heavy lifting during
// instantiation lives in bootstrap.go to keep this file focused on the
// public surface.
type Service struct {
	config    *config.Config
	registry  *tool.Registry
	issuer    TokenSource
	upstream  *client.Client
	transport http.RoundTripper

	// guard lazily built MCP tool entries.
	mu      sync.RWMutex
	entries serverproto.Tools

	// Dynamic type registry holding every tool's argument record type.
	types *x.Registry
}

// Config returns the effective configuration instance passed to the service
// at construction time. Callers must treat the returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Registry returns the static tool registry.
func (s *Service) Registry() *tool.Registry { return s.registry }

// Issuer returns the credential source used to authorize upstream requests.
func (s *Service) Issuer() TokenSource { return s.issuer }

// Types returns the registry of argument record types, one per tool.
func (s *Service) Types() *x.Registry { return s.types }

// ToolNames returns all registered tool names in catalogue order. The slice
// is a copy and therefore safe for callers to modify.
func (s *Service) ToolNames() []string {
	return s.registry.Names()
}

// ToolMetadata returns description and input schema for a named tool when
// present. The last return value is false when the tool does not exist.
func (s *Service) ToolMetadata(name string) (string, interface{}, bool) {
	d, ok := s.registry.Lookup(name)
	if !ok {
		return "", nil, false
	}
	meta, err := tool.BuildSchema(d)
	if err != nil {
		return d.Description, nil, true
	}
	return d.Description, meta.InputSchema, true
}

// Option modifies a service instance before it is initialised. Users can
// pass an arbitrary number of options to New.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted the
// configuration is assembled from the environment.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithTransport overrides the upstream HTTP transport. Intended for tests
// that need to intercept outgoing requests.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *Service) {
		s.transport = rt
	}
}

// WithTokenSource overrides the default ES256 issuer built from the
// configuration.
func WithTokenSource(src TokenSource) Option {
	return func(s *Service) {
		s.issuer = src
	}
}

// New constructs a new service instance. The actual bootstrap is handled by
// init() in bootstrap.go so that callers do not need to care about the
// internal initialisation sequence.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig is a convenience constructor mirroring New with an explicit
// configuration instance. Additional options may be supplied after it.
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}
