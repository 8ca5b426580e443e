// Package migrations embeds the server's SQL schema migrations for goose.
package migrations

import "embed"

// Migrations holds the embedded migration files, applied by the repository
// manager at startup.
//
//go:embed *.sql
var Migrations embed.FS
