package migrations

import "embed"

// Files holds the forward-only SQLite migrations compiled into the binary.
//
//go:embed *.sql
var Files embed.FS
