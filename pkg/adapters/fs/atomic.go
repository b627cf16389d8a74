package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix names the scratch files used while replacing a document.
// Listings and watch events skip them through DefaultIgnore.
const TempFilePrefix = "flatcms-tmp-"

// writeFileAtomic stages data in a sibling temp file and renames it over
// filename, so readers see either the old or the new content.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", filepath.Base(filename), err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write staged content: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync staged content: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close staged file: %w", err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to chmod staged file: %w", err)
	}
	if err = os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(filename), err)
	}
	return nil
}
