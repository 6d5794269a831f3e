package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drivesim-tools/sessionlens/internal/charts"
	"github.com/drivesim-tools/sessionlens/internal/session"
)

var (
	chartDir  string
	openChart bool
)

var visualizeCmd = &cobra.Command{
	Use:   "visualize <table.csv>",
	Short: "Render word-count and sentiment charts for one session table",
	Long: `Read one session table and render two bar charts: the transcribed word
count per 5-second bucket, and the sentiment label distribution. The
charts are written as HTML pages and opened in the default browser.`,
	Args: cobra.ExactArgs(1),
	RunE: runVisualize,
}

func init() {
	visualizeCmd.Flags().StringVar(&chartDir, "chart-dir", "", "folder for chart pages (default: next to the table)")
	visualizeCmd.Flags().BoolVar(&openChart, "open", true, "open the rendered charts in the browser")

	rootCmd.AddCommand(visualizeCmd)
}

func runVisualize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tablePath := args[0]
	records, err := session.ReadTable(tablePath)
	if err != nil {
		return err
	}

	dir := chartDir
	if dir == "" {
		dir = filepath.Dir(tablePath)
	}
	base := strings.TrimSuffix(filepath.Base(tablePath), filepath.Ext(tablePath))

	wordPath := filepath.Join(dir, base+"_word_counts.html")
	err = charts.RenderToFile(wordPath, func(w io.Writer) error {
		return charts.RenderWordCounts(session.WordCountBuckets(records, cfg.Segment.BucketSeconds), w)
	})
	if err != nil {
		return err
	}
	fmt.Printf("Rendered %s\n", wordPath)

	sentimentPath := filepath.Join(dir, base+"_sentiment.html")
	err = charts.RenderToFile(sentimentPath, func(w io.Writer) error {
		return charts.RenderSentiment(session.SentimentCounts(records), w)
	})
	if err != nil {
		return err
	}
	fmt.Printf("Rendered %s\n", sentimentPath)

	if openChart {
		for _, p := range []string{wordPath, sentimentPath} {
			if err := charts.Open(p); err != nil {
				return fmt.Errorf("open chart: %w", err)
			}
		}
	}
	return nil
}
