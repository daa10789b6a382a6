// Package data embeds the static tables shipped with the binary: the waste
// collection schedule of each supported year and the nameday table.
package data

import "embed"

//go:embed *.json
var FS embed.FS
