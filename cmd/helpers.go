package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/faceattend/internal/config"
	"github.com/example/faceattend/internal/vision"
)

// signalContext returns a context cancelled on Ctrl+C, so the per-frame
// stop poll in the sessions sees the interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal...")
		cancel()
	}()

	return ctx, cancel
}

func cameraOptions(cfg *config.Config, window string, delayMS int, noPreview bool) vision.CameraOptions {
	if noPreview {
		window = ""
	}
	return vision.CameraOptions{
		Index:   cfg.Camera.Index,
		Width:   cfg.Camera.Width,
		Height:  cfg.Camera.Height,
		Window:  window,
		DelayMS: delayMS,
	}
}

func detectParams(p config.DetectParams) vision.DetectParams {
	return vision.DetectParams{
		ScaleFactor:  p.ScaleFactor,
		MinNeighbors: p.MinNeighbors,
	}
}
