// Package migrations embeds the SQL schema migrations applied at startup.
package migrations

import "embed"

// FS holds the goose migration files at its root.
//
//go:embed *.sql
var FS embed.FS
