package migrations

import "embed"

// FS SQL миграции goose, вшиваются в бинарь cmd/migrate.
//
//go:embed *.sql
var FS embed.FS
