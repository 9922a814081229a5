package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed detect.yaml
var detectYAML []byte

type Config struct {
	Paths  PathsConfig
	Camera CameraConfig
	Detect DetectConfig
}

type PathsConfig struct {
	SamplesDir    string // directory of labeled face crops
	RosterPath    string // CSV mapping Id -> Name
	ModelPath     string // serialized recognizer state
	AttendanceDir string // per-day attendance CSVs
	CascadePath   string // Haar cascade XML for face detection
}

type CameraConfig struct {
	Index  int // capture device index
	Width  int
	Height int
}

// DetectConfig carries cascade tuning parameters per session type.
type DetectConfig struct {
	Enroll DetectParams `yaml:"enroll"`
	Attend DetectParams `yaml:"attend"`
}

type DetectParams struct {
	ScaleFactor  float64 `yaml:"scale_factor"`
	MinNeighbors int     `yaml:"min_neighbors"`
}

// Load reads configuration from environment variables with sensible
// defaults matching the conventional on-disk layout. Detector tuning
// comes from the embedded detect.yaml.
func Load() *Config {
	var detect DetectConfig
	if err := yaml.Unmarshal(detectYAML, &detect); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded detect.yaml: " + err.Error())
	}

	return &Config{
		Paths: PathsConfig{
			SamplesDir:    envString("FACEATTEND_SAMPLES_DIR", "TrainingImage"),
			RosterPath:    envString("FACEATTEND_ROSTER", "StudentDetails/StudentDetails.csv"),
			ModelPath:     envString("FACEATTEND_MODEL", "TrainingImageLabel/Trainner.yml"),
			AttendanceDir: envString("FACEATTEND_ATTENDANCE_DIR", "Attendance"),
			CascadePath:   envString("FACEATTEND_CASCADE", "haarcascade_frontalface_default.xml"),
		},
		Camera: CameraConfig{
			Index:  envInt("FACEATTEND_CAMERA", 0),
			Width:  envInt("FACEATTEND_CAMERA_WIDTH", 640),
			Height: envInt("FACEATTEND_CAMERA_HEIGHT", 480),
		},
		Detect: detect,
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
