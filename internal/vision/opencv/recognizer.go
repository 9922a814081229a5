package opencv

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
	"gocv.io/x/gocv/contrib"

	"github.com/example/faceattend/internal/vision"
)

type lbph struct {
	rec *contrib.LBPHFaceRecognizer
}

// NewRecognizer creates an untrained LBPH face recognizer.
func (b *Backend) NewRecognizer() (vision.Recognizer, error) {
	return &lbph{rec: contrib.NewLBPHFaceRecognizer()}, nil
}

// LoadRecognizer restores a recognizer from a saved model artifact.
func (b *Backend) LoadRecognizer(path string) (vision.Recognizer, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	rec := contrib.NewLBPHFaceRecognizer()
	rec.LoadFile(path)
	return &lbph{rec: rec}, nil
}

func (l *lbph) Train(samples []vision.Sample) error {
	images := make([]gocv.Mat, 0, len(samples))
	defer func() {
		for _, m := range images {
			m.Close()
		}
	}()

	labels := gocv.NewMatWithSize(len(samples), 1, gocv.MatTypeCV32SC1)
	defer labels.Close()

	for i, s := range samples {
		mat, err := gocv.ImageGrayToMatGray(s.Image)
		if err != nil {
			return fmt.Errorf("failed to convert sample %d: %w", i, err)
		}
		images = append(images, mat)
		labels.SetIntAt(i, 0, int32(s.Label))
	}

	l.rec.Train(images, labels)
	return nil
}

func (l *lbph) Save(path string) error {
	l.rec.SaveFile(path)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("recognizer did not write %s: %w", path, err)
	}
	return nil
}

func (l *lbph) Predict(face *image.Gray) (int, float64, error) {
	mat, err := gocv.ImageGrayToMatGray(face)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to convert face crop: %w", err)
	}
	defer mat.Close()

	resp := l.rec.PredictExtendedResponse(mat)
	return int(resp.Label), float64(resp.Confidence), nil
}

func (l *lbph) Close() error {
	return l.rec.Close()
}
