package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteTempFile writes data to a new temporary file in dir and returns its name
func WriteTempFile(dir string, data []byte, pattern string) (string, error) {
	tmpFile, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("error creating temp file: %w", err)
	}

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("error writing to temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpFile.Name())
		return "", fmt.Errorf("error closing temp file: %w", err)
	}

	return tmpFile.Name(), nil
}

// WriteFile replaces path with data through a temp file in the same directory,
// so readers never observe a partially written document
func WriteFile(path string, data []byte) error {
	tmpName, err := WriteTempFile(filepath.Dir(path), data, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error setting file mode: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("error renaming temp file: %w", err)
	}
	return nil
}
