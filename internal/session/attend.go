package session

import (
	"context"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/example/faceattend/internal/constants"
	"github.com/example/faceattend/internal/imaging"
	"github.com/example/faceattend/internal/store"
	"github.com/example/faceattend/internal/vision"
)

// Attendant recognizes faces in the live camera stream and appends one
// attendance record per identity per day.
type Attendant struct {
	Backend       vision.Backend
	Roster        *store.Roster
	ModelPath     string
	AttendanceDir string

	Camera       vision.CameraOptions
	Detect       vision.DetectParams
	MinFaceRatio float64 // minimum face size relative to capture resolution

	// Now supplies the wall clock; defaults to time.Now. The session
	// date, record timestamps and dedup all derive from it.
	Now func() time.Time

	// OnMark, if set, is called after each new record is flushed.
	OnMark func(rec store.Record, confidence float64)
}

// Run loads the model and roster, opens today's ledger and marks every
// identity recognized above the confidence threshold until the stream
// ends or the user stops the session. Returns the ledger path written to.
func (a *Attendant) Run(ctx context.Context) (string, error) {
	// Preconditions, in order; the first failure ends the session.
	if !a.Roster.Exists() {
		return "", ErrNoRoster
	}
	if !store.ModelExists(a.ModelPath) {
		return "", ErrNoModel
	}
	names, err := a.Roster.Names()
	if err != nil {
		return "", err
	}

	now := a.Now
	if now == nil {
		now = time.Now
	}

	rec, err := a.Backend.LoadRecognizer(a.ModelPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognizerUnavailable, err)
	}
	defer rec.Close()

	ledger, err := store.OpenLedger(a.AttendanceDir, now())
	if err != nil {
		return "", err
	}

	cam, err := a.Backend.OpenCamera(a.Camera)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}
	defer cam.Close()

	det, err := a.Backend.NewDetector(a.Detect)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognizerUnavailable, err)
	}
	defer det.Close()

	ratio := a.MinFaceRatio
	if ratio <= 0 {
		ratio = constants.MinFaceRatio
	}
	width, height := cam.Size()
	minSize := image.Pt(int(ratio*float64(width)), int(ratio*float64(height)))

	for ctx.Err() == nil {
		gray, ok := cam.Read()
		if !ok {
			break
		}

		faces := det.Detect(gray, minSize)
		overlays := make([]vision.Annotation, 0, len(faces))
		for _, box := range faces {
			crop := imaging.Crop(gray, box)
			label, distance, err := rec.Predict(crop)
			if err != nil {
				continue
			}
			confidence := 100 - distance

			overlay := vision.Annotation{
				Box:   box,
				Label: "Unknown",
				Score: fmt.Sprintf("%d%%", int(math.Round(confidence))),
				Tier:  vision.Grade(confidence),
			}
			// Strictly above threshold; exactly 50 is Unknown.
			if confidence > constants.ConfidenceThreshold {
				if name, known := names[label]; known {
					overlay.Label = fmt.Sprintf("%d-%s", label, name)
					record := store.NewRecord(label, name, now())
					written, err := ledger.Mark(record)
					if err != nil {
						return "", err
					}
					if written && a.OnMark != nil {
						a.OnMark(record, confidence)
					}
				}
			}
			overlays = append(overlays, overlay)
		}
		cam.Annotate(overlays)

		if cam.Stopped() {
			break
		}
	}

	return fmt.Sprintf("attendance saved to %s", ledger.Path()), nil
}
