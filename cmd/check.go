package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/faceattend/internal/config"
	"github.com/example/faceattend/internal/constants"
	"github.com/example/faceattend/internal/session"
	"github.com/example/faceattend/internal/vision/opencv"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the webcam works",
	Long: `Check opens the configured capture device and previews frames until
you press q. Useful before enrolling on a new machine.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	ctx, cancel := signalContext()
	defer cancel()

	backend := opencv.New(cfg.Paths.CascadePath)
	opts := cameraOptions(cfg, "Camera Check - press q to stop", constants.EnrollFrameDelayMS, false)

	msg, err := session.CheckCamera(ctx, backend, opts)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
