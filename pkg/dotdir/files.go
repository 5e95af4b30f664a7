package dotdir

import (
	"path/filepath"
)

const (
	// DatabaseFile is the default SQLite database of the chain.
	DatabaseFile = "lineage.db"

	// TargetsFile is the default targets file.
	TargetsFile = "targets.yaml"

	// RunLogFile receives the JSON logs of long-running commands.
	RunLogFile = "run.log"
)

// Path returns the absolute path of name inside the resolved .lineage/
// directory. Absolute names are returned as is.
func (m *Manager) Path(overrideDir, name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}

	dir, err := m.Target(overrideDir)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, name), nil
}

// DatabasePath returns the path of the default SQLite database.
func (m *Manager) DatabasePath(overrideDir string) (string, error) {
	return m.Path(overrideDir, DatabaseFile)
}

// RunLogPath returns the path of the JSON run log.
func (m *Manager) RunLogPath(overrideDir string) (string, error) {
	return m.Path(overrideDir, RunLogFile)
}
