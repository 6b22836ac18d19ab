package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Markers that identify a jot root directory.
const (
	ConfigFile = "jot.yaml"
	DataDir    = ".jot"
)

// FindRoot recursively looks upwards for a jot root indicator: a jot.yaml
// file or a .jot directory. It returns the absolute path of the first
// directory that has one.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFile) || hasFile(dir, DataDir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("root not found")
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
