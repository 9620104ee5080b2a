// Package migrations embeds the wiki service schema migrations,
// one directory per SQL dialect. The pages table is created without an
// author column on purpose: older deployments never had one, and the
// repomanager adds it at startup regardless of how old the schema is.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
