package opencv

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/example/faceattend/internal/vision"
)

type detector struct {
	classifier gocv.CascadeClassifier
	params     vision.DetectParams
}

// NewDetector loads the Haar cascade. A missing or unreadable cascade
// file is a configuration error.
func (b *Backend) NewDetector(params vision.DetectParams) (vision.Detector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(b.cascadePath) {
		classifier.Close()
		return nil, fmt.Errorf("failed to load cascade file %s", b.cascadePath)
	}
	return &detector{classifier: classifier, params: params}, nil
}

func (d *detector) Detect(gray *image.Gray, minSize image.Point) []image.Rectangle {
	mat, err := gocv.ImageGrayToMatGray(gray)
	if err != nil {
		return nil
	}
	defer mat.Close()

	return d.classifier.DetectMultiScaleWithParams(
		mat, d.params.ScaleFactor, d.params.MinNeighbors, 0, minSize, image.Point{})
}

func (d *detector) Close() error {
	return d.classifier.Close()
}
