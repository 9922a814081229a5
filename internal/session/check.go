package session

import (
	"context"
	"fmt"

	"github.com/example/faceattend/internal/vision"
)

// CheckCamera opens the capture device and previews frames until the
// stream ends or the user stops it. No detection or persistence; it
// only proves the camera works.
func CheckCamera(ctx context.Context, backend vision.Backend, opts vision.CameraOptions) (string, error) {
	cam, err := backend.OpenCamera(opts)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCameraUnavailable, err)
	}
	defer cam.Close()

	frames := 0
	for ctx.Err() == nil {
		if _, ok := cam.Read(); !ok {
			break
		}
		frames++
		cam.Annotate(nil)
		if cam.Stopped() {
			break
		}
	}

	if frames == 0 {
		return "", fmt.Errorf("%w: device produced no frames", ErrCameraUnavailable)
	}
	return fmt.Sprintf("camera ok, previewed %d frames", frames), nil
}
