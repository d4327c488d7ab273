package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/arena/internal/server"
	"github.com/matzehuels/arena/pkg/cache"
	"github.com/matzehuels/arena/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the stateless JSON API:

  POST /v1/courts       generate a court
  POST /v1/courts/edit  apply edit ops to a court
  POST /v1/bom          bill of materials
  POST /v1/render       draw a court
  GET  /healthz

The cache backend comes from the [cache] config section or
ARENA_CACHE_BACKEND; API entries are kept under their own key prefix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.cfg.Server.Addr
			}

			ch, err := c.newCache(ctx, noCache)
			if err != nil {
				return err
			}
			keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api")
			runner := pipeline.NewRunner(ch, keyer, c.Logger)
			defer runner.Close()

			srv := server.New(runner, c.Logger, server.Options{
				ReadTimeout:     c.cfg.Server.ReadTimeout.Duration,
				WriteTimeout:    c.cfg.Server.WriteTimeout.Duration,
				ShutdownTimeout: c.cfg.Server.ShutdownTimeout.Duration,
				MaxBodyBytes:    c.cfg.Server.MaxBodyBytes,
			})
			printInfo("Serving on %s", StyleHighlight.Render(addr))
			printDetail("cache: %s", c.cfg.Cache.Backend)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
