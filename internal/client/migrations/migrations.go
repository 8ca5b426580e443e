// Package migrations embeds the client's SQLite schema migrations for goose.
package migrations

import "embed"

// Migrations holds the embedded migration files, applied when the local
// drafts database is opened.
//
//go:embed *.sql
var Migrations embed.FS
