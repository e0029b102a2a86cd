package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/vango-dev/chatapp/app"
	"github.com/vango-dev/chatapp/internal/config"
	cerrors "github.com/vango-dev/chatapp/internal/errors"
	"github.com/vango-dev/chatapp/pkg/livereload"
	"github.com/vango-dev/chatapp/pkg/middleware"
	"github.com/vango-dev/chatapp/pkg/server"
	"github.com/vango-dev/chatapp/pkg/serverfn"
	"github.com/vango-dev/chatapp/pkg/static"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		Long: `Start the server.

Startup stops at the first failure: configuration, database, migrations
or listening. In the dev environment connected pages reload when files
under the site root change.

Examples:
  chatapp serve
  chatapp serve --addr=0.0.0.0:8080
  chatapp serve -c deploy/chatapp.yaml --log-level=debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, logLevel)
			if err != nil {
				return err
			}
			if addr != "" {
				e.cfg.Site.Addr = addr
				if err := e.cfg.Validate(); err != nil {
					return err
				}
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, e)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Address to listen on (default from configuration)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default from configuration)")

	return cmd
}

func runServe(ctx context.Context, e *env) error {
	cfg, logger := e.cfg, e.logger

	conn, err := e.openDB(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	var (
		opts    []server.Option
		fnOpts  = []serverfn.Option{serverfn.WithLogger(logger)}
		srvConf = &server.ServerConfig{
			Address:        cfg.Site.Addr,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			CacheControl:   cfg.Static.CacheControl,
		}
	)
	if cfg.Metrics.Enabled {
		m := middleware.NewMetrics()
		fnOpts = append(fnOpts, serverfn.WithObserver(m.ObserveServerFn))
		opts = append(opts, server.WithMetrics(m))
		srvConf.MetricsPath = cfg.Metrics.Path
	}

	reg := serverfn.NewRegistry(fnOpts...)
	if err := app.Register(reg, logger); err != nil {
		return err
	}

	src, err := staticSource(ctx, cfg)
	if err != nil {
		return err
	}
	opts = append(opts, server.WithStatic(src), server.WithLogger(logger))

	renderOpts := cfg.RenderOptions()
	if renderOpts.IsDev() {
		hub := livereload.NewHub(logger)
		if err := livereload.Watch(ctx, cfg.SiteRoot(), hub.Reload, livereload.WatchOptions{Logger: logger}); err != nil {
			logger.Warn("live reload disabled", "root", cfg.SiteRoot(), "error", err)
		}
		opts = append(opts, server.WithReloadHub(hub))
	}

	state := &server.State{
		DB:        conn,
		Options:   renderOpts,
		Routes:    app.Routes(),
		Functions: reg,
	}
	logger.Info("starting",
		"version", version,
		"env", string(renderOpts.Env),
		"database", cfg.Database.URL,
		"functions", reg.Names(),
	)
	return server.New(state, srvConf, opts...).Run(ctx)
}

// staticSource picks the S3 bucket when one is configured, else the site
// root on disk.
func staticSource(ctx context.Context, cfg *config.Config) (static.Source, error) {
	s3cfg := cfg.Static.S3
	if s3cfg.Bucket == "" {
		return static.NewDir(cfg.SiteRoot()), nil
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if s3cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(s3cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, cerrors.New("E121").
			WithDetail("bucket " + s3cfg.Bucket).
			WithSuggestion("Check the AWS credentials and static.s3.region").
			Wrap(err)
	}
	return static.NewS3(s3.NewFromConfig(awsCfg), s3cfg.Bucket, s3cfg.Prefix), nil
}
