// Package gamedata provides embedded walker definitions and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all YAML files from this directory at build time.
//
//go:embed *.yaml
var dataFS embed.FS
