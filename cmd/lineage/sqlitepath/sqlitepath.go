// Package sqlitepath resolves the SQLite database of the lineage chain.
package sqlitepath

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/papercomputeco/lineage/pkg/dotdir"
)

// ErrNotFound is returned when no existing database could be located.
var ErrNotFound = errors.New("could not find lineage SQLite database; pass --sqlite")

// ResolveSQLitePath returns the path of an existing database: the override,
// then LINEAGE_SQLITE, then the first well-known location that exists.
func ResolveSQLitePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if envPath := strings.TrimSpace(os.Getenv("LINEAGE_SQLITE")); envPath != "" {
		return envPath, nil
	}

	for _, candidate := range sqliteCandidates() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", ErrNotFound
}

// ResolveOrDefault is ResolveSQLitePath falling back to lineage.db in the
// resolved .lineage/ directory, which is created if needed.
func ResolveOrDefault(override, configDir string) (string, error) {
	path, err := ResolveSQLitePath(override)
	if err == nil {
		return path, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", err
	}

	return dotdir.NewManager().DatabasePath(configDir)
}

func sqliteCandidates() []string {
	candidates := []string{
		dotdir.DatabaseFile,
		filepath.Join(dotdir.DirName, dotdir.DatabaseFile),
	}

	home, err := os.UserHomeDir()
	if err == nil {
		candidates = append(candidates, filepath.Join(home, dotdir.DirName, dotdir.DatabaseFile))
	}

	if xdgHome := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdgHome != "" {
		candidates = append(candidates, filepath.Join(xdgHome, "lineage", dotdir.DatabaseFile))
	}

	return candidates
}
