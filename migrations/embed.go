// Package migrations holds the SQL schema applied on start and by the e2e suite.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
