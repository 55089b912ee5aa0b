//go:build tools
// +build tools

package symex

// Tools used by go:generate. They are pinned in go.mod through this file.
import (
	_ "golang.org/x/tools/cmd/stringer"
)
