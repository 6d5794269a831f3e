package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/drivesim-tools/sessionlens/internal/dataset"
	"github.com/drivesim-tools/sessionlens/internal/media"
	"github.com/drivesim-tools/sessionlens/internal/processor"
	"github.com/drivesim-tools/sessionlens/internal/sentiment"
	"github.com/drivesim-tools/sessionlens/internal/transcribe"
	"github.com/drivesim-tools/sessionlens/internal/watcher"
	"github.com/drivesim-tools/sessionlens/pkg/executor"
)

var (
	processInput  string
	processOutput string
	processWatch  bool
	segmentLength float64
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Transcribe session videos into per-window CSV tables",
	Long: `Process every video in the input folder: extract audio, cut it into
fixed-length windows, transcribe each window, label its sentiment, and
write one CSV table per video into the output folder. With --watch the
command keeps running and processes videos as they arrive.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processInput, "input", "i", "", "folder containing session videos")
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "folder for output CSV tables")
	processCmd.Flags().BoolVarP(&processWatch, "watch", "w", false, "keep watching the input folder after the batch pass")
	processCmd.Flags().Float64Var(&segmentLength, "segment-length", 0, "window length in seconds (default from config)")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if processInput != "" {
		cfg.Paths.Input = processInput
	}
	if processOutput != "" {
		cfg.Paths.Output = processOutput
	}
	if segmentLength > 0 {
		cfg.Segment.LengthSeconds = segmentLength
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exec := executor.New()
	proc := processor.New(
		cfg,
		media.New(cfg.FFmpeg, exec, log),
		transcribe.New(cfg.Whisper, exec, log),
		sentiment.NewScorer(),
		log,
	)
	driver := dataset.New(cfg, proc, log)

	if err := driver.Run(ctx); err != nil {
		return err
	}
	if !processWatch {
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, func(ctx context.Context, videoPath string) error {
		tablePath, err := driver.ProcessOne(ctx, videoPath)
		if err != nil {
			return err
		}
		fmt.Printf("Processed %s -> %s\n", videoPath, tablePath)
		return nil
	}, log, 1)
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
