package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath resolves $VAR references and a leading ~ in a database path.
// Paths that cannot be expanded are returned unchanged.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	rest, ok := strings.CutPrefix(p, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
