// Package locales embeds the message catalogs of trinom.
package locales

import "embed"

// FS holds fr.toml and en.yaml at its root.
//
//go:embed *.toml *.yaml
var FS embed.FS
