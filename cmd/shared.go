package cmd

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/viant/asc-mcp/asc"
	"github.com/viant/asc-mcp/asc/config"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *asc.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises an asc.Service only once and reuses the
// instance across sub-commands within the same CLI invocation. Without a
// config file the configuration is assembled from ASC_* environment variables.
func serviceSingleton() (*asc.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *config.Config
		if cfgPath != "" {
			var err error
			cfg, err = config.Load(ctx, cfgPath)
			if err != nil {
				svcErr = err
				return
			}
			// Pretty-print location if the user asked for it via env for debug.
			if debug := os.Getenv("ASCMCP_DEBUG_CONFIG"); debug == "1" {
				_ = json.NewEncoder(os.Stderr).Encode(cfg)
			}
		}

		svcInst, svcErr = asc.New(ctx, asc.WithConfig(cfg))
	})
	return svcInst, svcErr
}
