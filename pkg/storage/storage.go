package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

type Storage struct{}

// SaveFile overwrites filePath with content.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

// SaveFileAtomic writes content to a temp file next to filePath and renames
// it into place, so readers see either the old file or the complete new one.
func (s *Storage) SaveFileAtomic(filePath string, write func(f *os.File) error) error {
	dir := filepath.Dir(filePath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op after a successful rename
		_ = os.Remove(tmpName)
	}()

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("error writing file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("error setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, filePath); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}
