// Package migrations embeds the goose SQL migrations that create the
// stations, lines and sections tables. The API server applies them at
// startup when MIGRATE_ON_START is set, and integration tests apply them in
// TestMain.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass this to goose.NewProvider instead of relying on a filesystem path at
// runtime.
//
//go:embed *.sql
var FS embed.FS
