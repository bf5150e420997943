// Package appfs holds the files embedded in the binaries: email templates and the catalog seed.
package appfs

import "embed"

//go:embed all:templates seed
var FS embed.FS
