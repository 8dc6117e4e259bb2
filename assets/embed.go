// assets/embed.go
//
// Embedded static assets. Currently only the SQL migration files,
// embedded so the binary migrates itself without a deploy-time sql/
// directory (and so tests can run migrations from any working dir).

package assets

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
