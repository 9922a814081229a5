package session

import "errors"

// Session-boundary failures. Every session entry point returns one of
// these (possibly wrapped) with a human-readable message; the CLI
// surfaces the message verbatim and never sees a raw fault.
var (
	// ErrInvalidInput reports bad enrollment input; the message names
	// every violation at once.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCameraUnavailable means the capture device could not be opened.
	ErrCameraUnavailable = errors.New("cannot open webcam")

	// ErrNoSamples means the sample store yielded nothing usable to train on.
	ErrNoSamples = errors.New("no face samples found; capture faces first")

	// ErrNoRoster means the roster file does not exist yet.
	ErrNoRoster = errors.New("roster not found; enroll someone first")

	// ErrNoModel means no trained model artifact exists.
	ErrNoModel = errors.New("trained model not found; run training first")

	// ErrRecognizerUnavailable means the recognition capability is
	// missing from the runtime environment (e.g. cascade or contrib
	// module absent). A configuration problem, not a crash.
	ErrRecognizerUnavailable = errors.New("face recognition capability is not available")
)
