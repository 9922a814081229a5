package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Paths.SamplesDir != "TrainingImage" {
		t.Errorf("SamplesDir = %q; want %q", cfg.Paths.SamplesDir, "TrainingImage")
	}
	if cfg.Paths.RosterPath != "StudentDetails/StudentDetails.csv" {
		t.Errorf("RosterPath = %q; want %q", cfg.Paths.RosterPath, "StudentDetails/StudentDetails.csv")
	}
	if cfg.Paths.ModelPath != "TrainingImageLabel/Trainner.yml" {
		t.Errorf("ModelPath = %q; want %q", cfg.Paths.ModelPath, "TrainingImageLabel/Trainner.yml")
	}
	if cfg.Camera.Width != 640 || cfg.Camera.Height != 480 {
		t.Errorf("Camera = %dx%d; want 640x480", cfg.Camera.Width, cfg.Camera.Height)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FACEATTEND_SAMPLES_DIR", "/data/faces")
	t.Setenv("FACEATTEND_CAMERA", "2")
	t.Setenv("FACEATTEND_CAMERA_WIDTH", "not-a-number")

	cfg := Load()

	if cfg.Paths.SamplesDir != "/data/faces" {
		t.Errorf("SamplesDir = %q; want %q", cfg.Paths.SamplesDir, "/data/faces")
	}
	if cfg.Camera.Index != 2 {
		t.Errorf("Camera.Index = %d; want 2", cfg.Camera.Index)
	}
	// Unparseable numeric overrides fall back to the default.
	if cfg.Camera.Width != 640 {
		t.Errorf("Camera.Width = %d; want fallback 640", cfg.Camera.Width)
	}
}

func TestEmbeddedDetectTuning(t *testing.T) {
	cfg := Load()

	if cfg.Detect.Enroll.ScaleFactor != 1.3 {
		t.Errorf("Enroll.ScaleFactor = %v; want 1.3", cfg.Detect.Enroll.ScaleFactor)
	}
	if cfg.Detect.Attend.ScaleFactor != 1.2 {
		t.Errorf("Attend.ScaleFactor = %v; want 1.2", cfg.Detect.Attend.ScaleFactor)
	}
	if cfg.Detect.Enroll.MinNeighbors != 5 || cfg.Detect.Attend.MinNeighbors != 5 {
		t.Errorf("MinNeighbors = %d/%d; want 5/5", cfg.Detect.Enroll.MinNeighbors, cfg.Detect.Attend.MinNeighbors)
	}
}
