package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ModelExists reports whether a trained model artifact is present.
func ModelExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReplaceModel atomically replaces the model artifact at path. The
// save function writes to a uniquely named temp file in the same
// directory, which is then renamed over any prior artifact; readers
// never observe a half-written model.
func ReplaceModel(path string, save func(path string) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := save(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to save model: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace model artifact: %w", err)
	}
	return nil
}
