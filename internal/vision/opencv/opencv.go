// Package opencv implements the vision interfaces on top of gocv:
// webcam capture via VideoCapture, face detection via a Haar cascade
// and recognition via the contrib LBPH face recognizer.
package opencv

import "github.com/example/faceattend/internal/vision"

// Backend builds gocv-backed collaborators. The cascade file is loaded
// per detector so each session owns and releases its own classifier.
type Backend struct {
	cascadePath string
}

var _ vision.Backend = (*Backend)(nil)

func New(cascadePath string) *Backend {
	return &Backend{cascadePath: cascadePath}
}
