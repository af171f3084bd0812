// ABOUTME: Embeds the goose SQL migrations for the weartrack schema.
// ABOUTME: Migration files are versioned separately from seed data.
package migrations

import "embed"

// Files holds the versioned SQL migrations, applied in order by goose.
//
//go:embed *.sql
var Files embed.FS
