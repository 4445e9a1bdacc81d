package migrations

import "embed"

// Migrations holds the SQL migration files, compiled into the binary so
// deployments never depend on a migrations directory on disk.
//
//go:embed *.sql
var Migrations embed.FS
