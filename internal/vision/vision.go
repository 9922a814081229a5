// Package vision defines the collaborator interfaces between the
// attendance pipeline and the underlying computer-vision library.
// Sessions depend only on these interfaces; the gocv-backed
// implementations live in the opencv subpackage and in-memory fakes
// for tests live in the fake subpackage.
package vision

import "image"

// Sample is a labeled grayscale face crop used for training.
type Sample struct {
	Label int
	Image *image.Gray
}

// DetectParams tunes the face detector for a session type.
type DetectParams struct {
	ScaleFactor  float64
	MinNeighbors int
}

// CameraOptions configures camera acquisition for a session.
type CameraOptions struct {
	Index   int    // capture device index
	Width   int    // requested capture width, 0 keeps the driver default
	Height  int    // requested capture height, 0 keeps the driver default
	Window  string // preview window title; empty runs headless
	DelayMS int    // per-frame preview delay, also the stop-key poll interval
}

// Camera is an exclusive handle on a capture device. Read returns the
// next frame converted to grayscale; false means end of stream (device
// unplugged or no more frames), which is not an error. Annotate
// presents the most recently read frame with the given overlays and
// polls the user stop key. The handle must be closed on every exit
// path; Close also tears down any preview surface.
type Camera interface {
	Read() (*image.Gray, bool)
	Annotate(overlays []Annotation)
	Stopped() bool
	Size() (width, height int)
	Close() error
}

// Detector finds face bounding boxes in a grayscale frame. Zero
// detections yields an empty slice, never an error.
type Detector interface {
	Detect(gray *image.Gray, minSize image.Point) []image.Rectangle
	Close() error
}

// Recognizer is a trainable face classifier. Predict returns the
// closest label and its distance score; lower distance means a closer
// match.
type Recognizer interface {
	Train(samples []Sample) error
	Save(path string) error
	Predict(face *image.Gray) (label int, distance float64, err error)
	Close() error
}

// Backend constructs vision collaborators. Constructors report a
// missing runtime capability (absent cascade file, unreadable model)
// as an error rather than panicking.
type Backend interface {
	OpenCamera(opts CameraOptions) (Camera, error)
	NewDetector(params DetectParams) (Detector, error)
	NewRecognizer() (Recognizer, error)
	LoadRecognizer(path string) (Recognizer, error)
}
