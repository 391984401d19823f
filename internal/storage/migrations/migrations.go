// Package migrations embeds the schema for every supported storage driver.
// Each driver has its own directory so goose can run it with the matching dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
