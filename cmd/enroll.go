package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/faceattend/internal/config"
	"github.com/example/faceattend/internal/constants"
	"github.com/example/faceattend/internal/session"
	"github.com/example/faceattend/internal/store"
	"github.com/example/faceattend/internal/vision/opencv"
)

var enrollCmd = &cobra.Command{
	Use:   "enroll [id] [name]",
	Short: "Capture face samples for an identity",
	Long: `Enroll captures labeled face samples from the webcam and registers
the identity in the roster. The id must be a whole number and the name
alphabetic. Capturing stops at the sample target or when you press q
in the preview window.

Examples:
  # Enroll Alice as id 7 with the default 100 samples
  faceattend enroll 7 Alice

  # A quick enrollment with fewer samples, no preview window
  faceattend enroll 7 Alice --samples 20 --no-preview`,
	Args: cobra.ExactArgs(2),
	RunE: runEnroll,
}

func init() {
	rootCmd.AddCommand(enrollCmd)

	enrollCmd.Flags().Int("samples", constants.DefaultSampleTarget, "Number of face samples to capture")
	enrollCmd.Flags().Bool("no-preview", false, "Run without the camera preview window")
}

func runEnroll(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	target := mustGetInt(cmd, "samples")
	noPreview := mustGetBool(cmd, "no-preview")

	ctx, cancel := signalContext()
	defer cancel()

	enroller := &session.Enroller{
		Backend: opencv.New(cfg.Paths.CascadePath),
		Samples: store.NewSampleStore(cfg.Paths.SamplesDir),
		Roster:  store.NewRoster(cfg.Paths.RosterPath),
		Camera:  cameraOptions(cfg, "Capturing Faces - press q to stop", constants.EnrollFrameDelayMS, noPreview),
		Detect:  detectParams(cfg.Detect.Enroll),
		OnSample: func(count int) {
			fmt.Printf("[%d] Face detected - saving image\n", count)
		},
	}

	msg, err := enroller.Enroll(ctx, args[0], args[1], target)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
