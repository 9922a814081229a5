package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReplaceModelWritesArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TrainingImageLabel", "Trainner.yml")

	err := ReplaceModel(path, func(tmp string) error {
		return os.WriteFile(tmp, []byte("model-v1"), 0o644)
	})
	if err != nil {
		t.Fatalf("ReplaceModel failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if string(data) != "model-v1" {
		t.Errorf("artifact = %q; want %q", data, "model-v1")
	}
}

func TestReplaceModelOverwritesPrior(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Trainner.yml")

	for _, version := range []string{"model-v1", "model-v2"} {
		err := ReplaceModel(path, func(tmp string) error {
			return os.WriteFile(tmp, []byte(version), 0o644)
		})
		if err != nil {
			t.Fatalf("ReplaceModel(%s) failed: %v", version, err)
		}
	}

	data, _ := os.ReadFile(path)
	if string(data) != "model-v2" {
		t.Errorf("artifact = %q; want full overwrite with %q", data, "model-v2")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("model dir has %d entries; want 1 (no temp files left behind)", len(entries))
	}
}

func TestReplaceModelSaveFailureKeepsPrior(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Trainner.yml")
	if err := os.WriteFile(path, []byte("model-v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	saveErr := errors.New("training backend exploded")
	err := ReplaceModel(path, func(string) error { return saveErr })
	if !errors.Is(err, saveErr) {
		t.Fatalf("ReplaceModel error = %v; want wrapped save error", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "model-v1" {
		t.Errorf("prior artifact = %q; want untouched %q", data, "model-v1")
	}
	if !ModelExists(path) {
		t.Error("prior artifact should still exist")
	}
}
