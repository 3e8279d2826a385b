// Package testdata embeds the acceptance cases: one directory per case with
// an input.txt line and an expected.txt holding the printed translation, or,
// for directories ending in _err, a fragment of the error message.
package testdata

import "embed"

//go:embed acceptancetests/*/*.txt
var AcceptanceTests embed.FS

// GetFS returns the embedded filesystem
func GetFS() embed.FS {
	return AcceptanceTests
}
