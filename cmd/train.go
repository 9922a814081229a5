package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/example/faceattend/internal/config"
	"github.com/example/faceattend/internal/session"
	"github.com/example/faceattend/internal/store"
	"github.com/example/faceattend/internal/vision/opencv"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the recognition model from captured samples",
	Long: `Train rebuilds the face recognition model from every usable sample
in the sample store and replaces the model artifact. Run it after each
enrollment so attendance sessions can recognize the new identity.`,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	ctx, cancel := signalContext()
	defer cancel()

	var bar *progressbar.ProgressBar
	trainer := &session.Trainer{
		Backend:   opencv.New(cfg.Paths.CascadePath),
		Samples:   store.NewSampleStore(cfg.Paths.SamplesDir),
		ModelPath: cfg.Paths.ModelPath,
		OnProgress: func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetDescription("Reading samples"),
					progressbar.OptionShowCount(),
					progressbar.OptionShowIts(),
					progressbar.OptionSetItsString("samples"),
					progressbar.OptionShowElapsedTimeOnFinish(),
					progressbar.OptionFullWidth(),
				)
			}
			bar.Add(1)
		},
	}

	msg, err := trainer.Train(ctx)
	if bar != nil {
		fmt.Println()
	}
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}
