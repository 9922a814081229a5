package vision

import (
	"image"

	"github.com/example/faceattend/internal/constants"
)

// Tier classifies a prediction for display feedback. It has no effect
// on what gets persisted.
type Tier int

const (
	TierRejected Tier = iota
	TierBorderline
	TierMatched
)

// Annotation is a display overlay for one detected face.
type Annotation struct {
	Box   image.Rectangle
	Label string // text above the box, e.g. "7-Alice" or "Unknown"
	Score string // text below the box, e.g. "82%"
	Tier  Tier
}

// Grade maps a confidence value to its display tier. Matched requires
// strictly more than the confidence threshold.
func Grade(confidence float64) Tier {
	switch {
	case confidence > constants.ConfidenceThreshold:
		return TierMatched
	case confidence > constants.BorderlineThreshold:
		return TierBorderline
	default:
		return TierRejected
	}
}
