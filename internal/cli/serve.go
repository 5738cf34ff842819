package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cubetex/pkg/api"
	"github.com/matzehuels/cubetex/pkg/buildinfo"
	"github.com/matzehuels/cubetex/pkg/observability"
	"github.com/matzehuels/cubetex/pkg/pipeline"
)

// serveFlags holds the command-line flags of the serve command.
type serveFlags struct {
	addr    string
	redis   string
	noCache bool
	maxBody int64
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	flags := serveFlags{
		addr:    "localhost:8080",
		maxBody: api.DefaultMaxBodyBytes,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		Long: `Serve the render API over HTTP.

Endpoints:
  POST /v1/render    render a spec ({"spec": ..., "formats": [...]}); add
                     ?raw=tex|tikz|json to get the artifact itself
  GET  /v1/example   the annotated tensor example spec
  GET  /healthz      liveness probe
  GET  /version      build information

Rendered artifacts are cached in the local file cache, or in redis when
--redis (or cache.redis_addr in the config file) is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", flags.addr, "listen address")
	cmd.Flags().StringVar(&flags.redis, "redis", "", "redis address or URL for the artifact cache")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().Int64Var(&flags.maxBody, "max-body", flags.maxBody, "maximum request body size in bytes")

	return cmd
}

// runServe serves the API until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, flags serveFlags) error {
	if flags.redis != "" {
		c.Config.Cache.RedisAddr = flags.redis
	}
	cc, err := c.newCache(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	runner := pipeline.NewRunner(cc, versionKeyer(), c.Logger)
	if ttl := c.Config.Cache.TTL.Duration; ttl > 0 {
		runner.TTL = ttl
	}
	defer runner.Close()

	if c.Logger.GetLevel() <= log.DebugLevel {
		observability.NewLogHooks(c.Logger).Register()
	}

	srv := api.NewServer(runner, c.Logger, api.WithMaxBodyBytes(flags.maxBody))
	ui := c.ui()
	ui.info("Serving cubetex %s", buildinfo.Version)
	ui.keyValue("Address", StyleLink.Render("http://"+flags.addr))
	ui.keyValue("Cache", c.describeCache(flags.noCache))
	if flags.noCache {
		ui.warning("Caching disabled, every request is rendered")
	}

	if err := srv.ListenAndServe(ctx, flags.addr); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return ctx.Err()
}

// describeCache names the cache backend newCache selects.
func (c *CLI) describeCache(noCache bool) string {
	switch {
	case noCache:
		return "none"
	case c.Config.Cache.RedisAddr != "":
		return "redis " + c.Config.Cache.RedisAddr
	}
	dir, err := c.cacheDir()
	if err != nil {
		return "none"
	}
	return "file " + dir
}
