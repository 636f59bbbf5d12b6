package migrations

import "embed"

// Files holds the forward-only schema migrations applied by internal/db.
//
//go:embed *.sql
var Files embed.FS
