package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the name of the optional configuration file.
const ConfigFileName = "flatcms.yaml"

// FindConfig looks upwards from startDir for a configuration file and
// returns its absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found: %w", ConfigFileName, os.ErrNotExist)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe") {
		return true
	}

	tempDir := os.TempDir()
	return strings.HasPrefix(strings.ToLower(exe), strings.ToLower(tempDir))
}

// ResolveStoreRoot picks the store root for the run mode.
// Empty overrides fall back to cms/data and cms/test/data under base;
// relative overrides are joined with base.
func ResolveStoreRoot(base string, testMode bool, dataDir, testDataDir string) string {
	if base == "" {
		base = "."
	}
	dir, fallback := dataDir, filepath.Join("cms", "data")
	if testMode {
		dir, fallback = testDataDir, filepath.Join("cms", "test", "data")
	}
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
