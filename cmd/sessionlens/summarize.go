package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/drivesim-tools/sessionlens/internal/summarizer"
)

var (
	summarizeTables string
	summarizeDest   string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Write LLM session reports for processed tables",
	Long: `Read the session tables in the output folder and write a markdown and
docx report per table using Gemini. Requires gemini.api_keys in the
config file.`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeTables, "tables", "", "folder containing session tables (default: output folder)")
	summarizeCmd.Flags().StringVar(&summarizeDest, "dest", "", "folder for reports (default: <output>/summaries)")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(cfg.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys must be set to summarize sessions")
	}

	tables := summarizeTables
	if tables == "" {
		tables = cfg.Paths.Output
	}
	dest := summarizeDest
	if dest == "" {
		dest = filepath.Join(cfg.Paths.Output, "summaries")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, newLogger(cfg))
	return s.SummarizeAll(ctx, tables, dest)
}
