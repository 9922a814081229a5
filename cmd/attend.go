package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/example/faceattend/internal/config"
	"github.com/example/faceattend/internal/constants"
	"github.com/example/faceattend/internal/session"
	"github.com/example/faceattend/internal/store"
	"github.com/example/faceattend/internal/vision/opencv"
)

var attendCmd = &cobra.Command{
	Use:   "attend",
	Short: "Recognize faces and mark attendance",
	Long: `Attend runs live recognition against the trained model and appends
one attendance record per recognized identity per day. It keeps running
until you press q in the preview window or interrupt it.

Each day gets its own ledger file; identities already confirmed today
are never written twice.`,
	RunE: runAttend,
}

func init() {
	rootCmd.AddCommand(attendCmd)

	attendCmd.Flags().Bool("no-preview", false, "Run without the camera preview window")
}

func runAttend(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	noPreview := mustGetBool(cmd, "no-preview")

	ctx, cancel := signalContext()
	defer cancel()

	attendant := &session.Attendant{
		Backend:       opencv.New(cfg.Paths.CascadePath),
		Roster:        store.NewRoster(cfg.Paths.RosterPath),
		ModelPath:     cfg.Paths.ModelPath,
		AttendanceDir: cfg.Paths.AttendanceDir,
		Camera:        cameraOptions(cfg, "Attendance - press q to stop", constants.AttendFrameDelayMS, noPreview),
		Detect:        detectParams(cfg.Detect.Attend),
		OnMark: func(rec store.Record, confidence float64) {
			fmt.Printf("[SAVED] %s (%d) at %s with %d%% confidence\n",
				rec.Name, rec.ID, rec.Time, int(math.Round(confidence)))
		},
	}

	msg, err := attendant.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
