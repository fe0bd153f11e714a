package config

import (
	"os"
	"path/filepath"
)

// defaultEnvFile is looked up when no name is given.
const defaultEnvFile = ".env"

// FindEnvFile resolves name against dir and each of its parents, returning the
// first path that names a regular file. Absolute names are only checked as-is.
func FindEnvFile(dir, name string) (string, error) {
	if name == "" {
		name = defaultEnvFile
	}
	if filepath.IsAbs(name) {
		if isFile(name) {
			return name, nil
		}
		return "", os.ErrNotExist
	}

	for curr := filepath.Clean(dir); ; {
		if candidate := filepath.Join(curr, name); isFile(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(curr)
		if parent == curr {
			return "", os.ErrNotExist
		}
		curr = parent
	}
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
