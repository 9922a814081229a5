// Package session implements the three long-running pipeline
// operations: enrollment, training and attendance. Each is a
// synchronous, blocking entry point that owns its camera and
// recognizer handles for the duration of the call and returns a
// human-readable summary or a session-boundary error. The surrounding
// shell decides how to schedule them; they must not run concurrently
// against the same stores.
package session

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"strings"
	"unicode"

	"github.com/example/faceattend/internal/constants"
	"github.com/example/faceattend/internal/imaging"
	"github.com/example/faceattend/internal/store"
	"github.com/example/faceattend/internal/vision"
)

// Enroller captures labeled face samples from the camera and registers
// the identity in the roster.
type Enroller struct {
	Backend vision.Backend
	Samples *store.SampleStore
	Roster  *store.Roster

	Camera    vision.CameraOptions
	Detect    vision.DetectParams
	MinFacePx int // minimum detected face size; defaults to constants.MinEnrollFacePx

	// OnSample, if set, is called after each sample is persisted.
	OnSample func(count int)
}

// Enroll validates the identity, then reads camera frames and persists
// one sample per detected face until the target count is reached, the
// stream ends, or the user stops the session. The identity is appended
// to the roster afterwards. target <= 0 uses the default of 100.
func (e *Enroller) Enroll(ctx context.Context, id, name string, target int) (string, error) {
	label, err := validateIdentity(id, name)
	if err != nil {
		return "", err
	}
	if target <= 0 {
		target = constants.DefaultSampleTarget
	}
	minFace := e.MinFacePx
	if minFace <= 0 {
		minFace = constants.MinEnrollFacePx
	}

	cam, err := e.Backend.OpenCamera(e.Camera)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}
	defer cam.Close()

	det, err := e.Backend.NewDetector(e.Detect)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognizerUnavailable, err)
	}
	defer det.Close()

	count := 0
	minSize := image.Pt(minFace, minFace)
	for count < target && ctx.Err() == nil {
		gray, ok := cam.Read()
		if !ok {
			// End of stream, not a fault.
			break
		}

		faces := det.Detect(gray, minSize)
		overlays := make([]vision.Annotation, 0, len(faces))
		for _, box := range faces {
			count++
			crop := imaging.Crop(gray, box)
			if err := e.Samples.Write(name, label, count, crop); err != nil {
				return "", err
			}
			overlays = append(overlays, vision.Annotation{
				Box:   box,
				Label: fmt.Sprintf("%d/%d", count, target),
				Tier:  vision.TierMatched,
			})
			if e.OnSample != nil {
				e.OnSample(count)
			}
		}
		cam.Annotate(overlays)

		if cam.Stopped() {
			break
		}
	}

	if err := e.Roster.Append(label, name); err != nil {
		return "", err
	}
	return fmt.Sprintf("saved %d face samples for id %d (%s)", count, label, name), nil
}

// validateIdentity checks both fields and reports every violation in a
// single error so the caller sees all problems at once. Ids use strict
// integer semantics: unicode numeric forms are rejected.
func validateIdentity(id, name string) (int, error) {
	var problems []string

	label, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		problems = append(problems, fmt.Sprintf("id %q must be a whole number", id))
	}
	if !alphabetic(name) {
		problems = append(problems, fmt.Sprintf("name %q must contain letters only", name))
	}
	if len(problems) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}
	return label, nil
}

func alphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
