// Package migrations embeds the goose SQL migrations so the seeder can
// apply them without a checkout.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
