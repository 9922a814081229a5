// Package fake provides in-memory implementations of the vision
// interfaces for testing the sessions without a camera or OpenCV.
package fake

import (
	"image"
	"os"

	"github.com/example/faceattend/internal/vision"
)

// Backend hands out the configured fakes and supports error injection
// on every constructor.
type Backend struct {
	Camera     *Camera
	Detector   *Detector
	Recognizer *Recognizer

	// Error injection
	OpenCameraErr     error
	NewDetectorErr    error
	NewRecognizerErr  error
	LoadRecognizerErr error

	// Recorded calls
	CameraOpts vision.CameraOptions
	LoadedPath string
}

func (b *Backend) OpenCamera(opts vision.CameraOptions) (vision.Camera, error) {
	if b.OpenCameraErr != nil {
		return nil, b.OpenCameraErr
	}
	b.CameraOpts = opts
	return b.Camera, nil
}

func (b *Backend) NewDetector(params vision.DetectParams) (vision.Detector, error) {
	if b.NewDetectorErr != nil {
		return nil, b.NewDetectorErr
	}
	return b.Detector, nil
}

func (b *Backend) NewRecognizer() (vision.Recognizer, error) {
	if b.NewRecognizerErr != nil {
		return nil, b.NewRecognizerErr
	}
	return b.Recognizer, nil
}

func (b *Backend) LoadRecognizer(path string) (vision.Recognizer, error) {
	if b.LoadRecognizerErr != nil {
		return nil, b.LoadRecognizerErr
	}
	b.LoadedPath = path
	return b.Recognizer, nil
}

// Camera replays a fixed list of frames; Read reports end of stream
// once they run out.
type Camera struct {
	Frames    []*image.Gray
	StopAfter int // Stopped() turns true after this many reads; 0 = never

	Overlays [][]vision.Annotation
	Reads    int
	Closed   bool
}

// Frame returns a uniform gray frame of the given size, for seeding Frames.
func Frame(w, h int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, w, h))
}

func (c *Camera) Read() (*image.Gray, bool) {
	if c.Reads >= len(c.Frames) {
		return nil, false
	}
	frame := c.Frames[c.Reads]
	c.Reads++
	return frame, true
}

func (c *Camera) Annotate(overlays []vision.Annotation) {
	c.Overlays = append(c.Overlays, overlays)
}

func (c *Camera) Stopped() bool {
	return c.StopAfter > 0 && c.Reads >= c.StopAfter
}

func (c *Camera) Size() (int, int) {
	if len(c.Frames) == 0 {
		return 0, 0
	}
	b := c.Frames[0].Bounds()
	return b.Dx(), b.Dy()
}

func (c *Camera) Close() error {
	c.Closed = true
	return nil
}

// Detector returns scripted boxes per call, falling back to Boxes for
// every call once the script runs out (or when no script is set).
type Detector struct {
	Boxes  []image.Rectangle
	Script [][]image.Rectangle

	Calls    int
	MinSizes []image.Point
	Closed   bool
}

func (d *Detector) Detect(gray *image.Gray, minSize image.Point) []image.Rectangle {
	d.MinSizes = append(d.MinSizes, minSize)
	call := d.Calls
	d.Calls++
	if call < len(d.Script) {
		return d.Script[call]
	}
	return d.Boxes
}

func (d *Detector) Close() error {
	d.Closed = true
	return nil
}

// Recognizer predicts a fixed (label, distance) pair unless PredictFn
// is set. Save writes Contents to the given path so artifact handling
// can be observed on disk.
type Recognizer struct {
	Label    int
	Distance float64

	PredictFn func(face *image.Gray) (int, float64, error)
	Contents  string
	TrainErr  error
	SaveErr   error

	TrainedWith []vision.Sample
	SavedPaths  []string
	Closed      bool
}

func (r *Recognizer) Train(samples []vision.Sample) error {
	if r.TrainErr != nil {
		return r.TrainErr
	}
	r.TrainedWith = samples
	return nil
}

func (r *Recognizer) Save(path string) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.SavedPaths = append(r.SavedPaths, path)
	contents := r.Contents
	if contents == "" {
		contents = "fake-model"
	}
	return os.WriteFile(path, []byte(contents), 0o644)
}

func (r *Recognizer) Predict(face *image.Gray) (int, float64, error) {
	if r.PredictFn != nil {
		return r.PredictFn(face)
	}
	return r.Label, r.Distance, nil
}

func (r *Recognizer) Close() error {
	r.Closed = true
	return nil
}
