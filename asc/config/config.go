// Package config assembles the immutable startup configuration of asc-mcp
// from a YAML document, the environment, or both.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// Environment variables consulted by FromEnv and ApplyEnv.
const (
	EnvKeyID      = "ASC_KEY_ID"
	EnvIssuerID   = "ASC_ISSUER_ID"
	EnvPrivateKey = "ASC_PRIVATE_KEY_PATH"
	EnvBaseURL    = "ASC_BASE_URL"
)

// DefaultBaseURL is the App Store Connect API v1 root.
const DefaultBaseURL = "https://api.appstoreconnect.apple.com/v1"

// Config is the immutable configuration constructed at startup and passed
// by reference into the issuer and dispatcher.
type Config struct {
	KeyID      string             `yaml:"keyId,omitempty" json:"keyId,omitempty"`
	IssuerID   string             `yaml:"issuerId,omitempty" json:"issuerId,omitempty"`
	PrivateKey string             `yaml:"privateKey,omitempty" json:"privateKey,omitempty"`
	BaseURL    string             `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`
	Server     *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
}

// ValidationError lists the required values missing at startup. It is fatal:
// the process does not start without them.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: missing %v", strings.Join(e.Missing, ", "))
}

// Load reads a YAML configuration document from a path or afs URL and fills
// any gaps from the environment.
func Load(ctx context.Context, path string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	cfg.ApplyEnv()
	cfg.Init()
	return &cfg, nil
}

// FromEnv builds a configuration purely from the environment.
func FromEnv() *Config {
	cfg := &Config{}
	cfg.ApplyEnv()
	cfg.Init()
	return cfg
}

// ApplyEnv fills unset values from the environment; explicit file values win.
func (c *Config) ApplyEnv() {
	if c.KeyID == "" {
		c.KeyID = os.Getenv(EnvKeyID)
	}
	if c.IssuerID == "" {
		c.IssuerID = os.Getenv(EnvIssuerID)
	}
	if c.PrivateKey == "" {
		c.PrivateKey = os.Getenv(EnvPrivateKey)
	}
	if c.BaseURL == "" {
		c.BaseURL = os.Getenv(EnvBaseURL)
	}
}

// Init applies defaults for optional values.
func (c *Config) Init() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}

// Validate reports every missing required value at once.
func (c *Config) Validate() error {
	var missing []string
	if c.KeyID == "" {
		missing = append(missing, "keyId ("+EnvKeyID+")")
	}
	if c.IssuerID == "" {
		missing = append(missing, "issuerId ("+EnvIssuerID+")")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "privateKey ("+EnvPrivateKey+")")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
