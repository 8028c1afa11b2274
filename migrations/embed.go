// Package migrations embebe los scripts SQL de goose para aplicarlos
// en el arranque o mediante cmd/migrate.
package migrations

import "embed"

// FS contiene los scripts de migración en orden.
//
//go:embed *.sql
var FS embed.FS
