// Package db opens the SQLite database and applies schema migrations.
package db

import (
	"context"
	"database/sql"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/vango-dev/chatapp/internal/errors"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// Open opens dsn and pings it.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, errors.New("E110").WithDetail("dsn " + dsn).Wrap(err)
	}
	if IsMemory(dsn) {
		// Every connection to an in-memory DSN gets its own empty database.
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.New("E112").
			WithDetail("dsn " + dsn).
			WithSuggestion("Check database.url in the configuration file").
			Wrap(err)
	}
	return db, nil
}

// IsMemory reports whether dsn names an in-memory SQLite database.
func IsMemory(dsn string) bool {
	return dsn == ":memory:" ||
		strings.HasPrefix(dsn, "file::memory:") ||
		strings.Contains(dsn, "mode=memory")
}

// Applied describes one migration run by Migrate.
type Applied struct {
	Version  int64
	Path     string
	Duration time.Duration
}

// Migrate applies every pending migration found at the root of fsys.
func Migrate(ctx context.Context, db *sql.DB, fsys fs.FS, logger *slog.Logger) ([]Applied, error) {
	if logger == nil {
		logger = slog.Default()
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return nil, errors.New("E111").WithDetail("loading migrations").Wrap(err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, errors.New("E111").
			WithSuggestion("Check the SQL in the migrations directory").
			Wrap(err)
	}

	applied := make([]Applied, 0, len(results))
	for _, r := range results {
		a := Applied{Version: r.Source.Version, Path: r.Source.Path, Duration: r.Duration}
		logger.InfoContext(ctx, "migration applied", "version", a.Version, "path", a.Path, "duration", a.Duration)
		applied = append(applied, a)
	}
	return applied, nil
}

// Version returns the current schema version.
func Version(ctx context.Context, db *sql.DB, fsys fs.FS) (int64, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return 0, errors.New("E111").WithDetail("loading migrations").Wrap(err)
	}
	return provider.GetDBVersion(ctx)
}
