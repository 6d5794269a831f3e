// Package charts renders the two aggregation views of a session table
// as bar charts on standalone HTML pages.
package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/browser"

	"github.com/drivesim-tools/sessionlens/internal/session"
)

// RenderWordCounts draws the word-count-per-bucket bar chart, buckets
// in ascending index order.
func RenderWordCounts(buckets []session.Bucket, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Transcribed word count per 5-second bucket"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time bucket (seconds)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Word count"}),
	)

	labels := make([]string, len(buckets))
	data := make([]opts.BarData, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		data[i] = opts.BarData{Value: b.WordCount}
	}

	bar.SetXAxis(labels).AddSeries("words", data)
	return bar.Render(w)
}

// RenderSentiment draws the sentiment distribution bar chart in the
// order the counts were produced (descending frequency).
func RenderSentiment(counts []session.LabelCount, w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sentiment classification distribution"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Sentiment"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count"}),
	)

	labels := make([]string, len(counts))
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		labels[i] = c.Label
		data[i] = opts.BarData{Value: c.Count}
	}

	bar.SetXAxis(labels).AddSeries("sessions", data)
	return bar.Render(w)
}

// RenderToFile writes one chart to an HTML file.
func RenderToFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// Open shows a rendered chart page in the default browser.
func Open(path string) error {
	return browser.OpenFile(path)
}
