// Package assets provides the embedded sprite sheet description and enemy roster.
package assets

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
