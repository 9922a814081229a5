// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Enrollment constants
const (
	// DefaultSampleTarget is the number of face samples captured per
	// enrollment session when no explicit target is given
	DefaultSampleTarget = 100

	// EnrollFrameDelayMS is the preview delay between frames while
	// capturing faces
	EnrollFrameDelayMS = 100
)

// Recognition constants
const (
	// ConfidenceThreshold is the minimum confidence (100 - LBPH distance)
	// required to accept a prediction and mark attendance. Exactly 50 is
	// rejected; the comparison is strictly greater-than.
	ConfidenceThreshold = 50.0

	// BorderlineThreshold marks predictions that almost cleared the
	// confidence threshold; used for display feedback only
	BorderlineThreshold = 40.0

	// AttendFrameDelayMS is the preview delay between frames during an
	// attendance session
	AttendFrameDelayMS = 1
)

// Sample store constants
const (
	// MaxSampleSize is the maximum dimension (width or height) of a stored
	// face crop; larger crops are downscaled before encoding
	MaxSampleSize = 512

	// SampleJPEGQuality is the JPEG quality for stored face crops
	SampleJPEGQuality = 85
)

// Detection constants
const (
	// MinFaceRatio is the minimum face size during attendance, relative
	// to the capture resolution
	MinFaceRatio = 0.1

	// MinEnrollFacePx is the minimum face size in pixels during enrollment
	MinEnrollFacePx = 20
)
