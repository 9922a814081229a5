package session

import (
	"context"
	"fmt"

	"github.com/example/faceattend/internal/store"
	"github.com/example/faceattend/internal/vision"
)

// Trainer rebuilds the recognition model from the full sample store.
// Every run is a complete retrain; the prior artifact is replaced
// wholesale. Labels no longer present in the roster keep contributing
// as long as their samples remain on disk.
type Trainer struct {
	Backend   vision.Backend
	Samples   *store.SampleStore
	ModelPath string

	// OnProgress, if set, receives sample-scan progress for UI feedback.
	OnProgress func(done, total int)
}

// Train scans the sample store, trains the recognizer on everything
// usable and atomically replaces the model artifact.
func (t *Trainer) Train(ctx context.Context) (string, error) {
	samples, err := t.Samples.Scan(t.OnProgress)
	if err != nil {
		return "", err
	}
	if len(samples) == 0 {
		return "", ErrNoSamples
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rec, err := t.Backend.NewRecognizer()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognizerUnavailable, err)
	}
	defer rec.Close()

	if err := rec.Train(samples); err != nil {
		return "", fmt.Errorf("training failed: %w", err)
	}
	if err := store.ReplaceModel(t.ModelPath, rec.Save); err != nil {
		return "", err
	}

	return fmt.Sprintf("trained on %d samples; model saved to %s", len(samples), t.ModelPath), nil
}
