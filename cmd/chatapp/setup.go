package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/chatapp/internal/config"
	"github.com/vango-dev/chatapp/internal/db"
	"github.com/vango-dev/chatapp/internal/logging"
	"github.com/vango-dev/chatapp/migrations"
)

// env is what every subcommand starts from.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	level  *slog.LevelVar
}

// setup loads the configuration named by --config, or the one in the
// working directory, and builds the logger. levelOverride wins over
// logging.level when set.
func setup(cmd *cobra.Command, levelOverride string) (*env, error) {
	level := &slog.LevelVar{}
	logger := logging.New(logging.Options{Level: level})
	slog.SetDefault(logger)

	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	name := cfg.Logging.Level
	if levelOverride != "" {
		name = levelOverride
	}
	l, err := logging.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	level.Set(l)
	logger.Debug("configuration loaded", "path", cfg.Path())

	return &env{cfg: cfg, logger: logger, level: level}, nil
}

// openDB opens the configured database and brings its schema up to date.
func (e *env) openDB(ctx context.Context) (*sql.DB, error) {
	conn, err := db.Open(ctx, e.cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if _, err := db.Migrate(ctx, conn, migrations.FS, e.logger); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
