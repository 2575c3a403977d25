package migrations

import "embed"

// FS holds the postgres schema and seed migrations.
//
//go:embed postgres/*.sql
var FS embed.FS

const PostgresDir = "postgres"
