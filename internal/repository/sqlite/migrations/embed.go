// Package migrations applies the embedded SQLite schema files in order.
package migrations

import "embed"

// FS holds the *.sql migration files, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
