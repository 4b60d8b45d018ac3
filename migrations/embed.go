// Package migrations holds the goose migrations of the key-value store,
// one directory per SQL dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
