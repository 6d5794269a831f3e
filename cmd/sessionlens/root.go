package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/drivesim-tools/sessionlens/internal/config"
	"github.com/drivesim-tools/sessionlens/internal/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sessionlens",
	Short: "Transcribe and analyze driving-simulator session videos",
	Long: `Sessionlens batch-processes recorded driving-simulator session videos:
it extracts the audio track, transcribes fixed-length windows, labels each
window's sentiment, and writes one CSV table per video. The visualize
command turns a table into word-count and sentiment bar charts.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: config.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// loadConfig reads the configured or default config file, falling back
// to built-in defaults so the binary runs with flags alone.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return config.Load("config.yaml")
	}
	return config.Default(), nil
}

func newLogger(cfg *config.Config) logger.Logger {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logger.New(level)
}
