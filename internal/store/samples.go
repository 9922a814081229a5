package store

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/faceattend/internal/constants"
	"github.com/example/faceattend/internal/imaging"
	"github.com/example/faceattend/internal/vision"
)

// SampleStore is a directory of grayscale face crops named
// <name>.<id>.<seq>.jpg. The id field doubles as the training label.
type SampleStore struct {
	dir     string
	maxSize int
	quality int
}

func NewSampleStore(dir string) *SampleStore {
	return &SampleStore{
		dir:     dir,
		maxSize: constants.MaxSampleSize,
		quality: constants.SampleJPEGQuality,
	}
}

func (s *SampleStore) Dir() string {
	return s.dir
}

// Write persists one face crop under the (name, id, seq) key. The name
// is stripped of diacritics so the dot-delimited filename schema stays
// portable; the roster keeps the original spelling. Oversized crops
// are downscaled before encoding.
func (s *SampleStore) Write(name string, id, seq int, face *image.Gray) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create sample directory: %w", err)
	}
	fileName := fmt.Sprintf("%s.%d.%d.jpg", RemoveDiacritics(name), id, seq)
	face = imaging.Shrink(face, s.maxSize)
	if err := imaging.EncodeJPEGFile(filepath.Join(s.dir, fileName), face, s.quality); err != nil {
		return fmt.Errorf("failed to write sample %s: %w", fileName, err)
	}
	return nil
}

// Scan collects every usable (image, label) pair in the store. Files
// whose label does not parse or whose image does not decode are
// silently skipped; stray files are tolerated, not fatal. The progress
// callback, if set, is invoked once per candidate file.
func (s *SampleStore) Scan(onProgress func(done, total int)) ([]vision.Sample, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sample directory: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".bmp" {
			candidates = append(candidates, entry.Name())
		}
	}

	var samples []vision.Sample
	for i, name := range candidates {
		if onProgress != nil {
			onProgress(i+1, len(candidates))
		}
		label, ok := ParseLabel(name)
		if !ok {
			continue
		}
		gray, err := imaging.DecodeGrayFile(filepath.Join(s.dir, name))
		if err != nil {
			continue
		}
		samples = append(samples, vision.Sample{Label: label, Image: gray})
	}
	return samples, nil
}

// ParseLabel extracts the numeric label from a sample filename. The
// label is the second dot-delimited field of <name>.<id>.<seq>.<ext>.
func ParseLabel(fileName string) (int, bool) {
	parts := strings.Split(fileName, ".")
	if len(parts) < 2 {
		return 0, false
	}
	label, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return label, true
}
