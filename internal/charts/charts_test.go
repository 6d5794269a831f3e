package charts

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drivesim-tools/sessionlens/internal/session"
)

func TestRenderWordCounts(t *testing.T) {
	buckets := []session.Bucket{
		{Index: 0, Label: "0-5 sec", WordCount: 5},
		{Index: 1, Label: "5-10 sec", WordCount: 1},
		{Index: 2, Label: "10-15 sec", WordCount: 4},
	}

	var buf bytes.Buffer
	if err := RenderWordCounts(buckets, &buf); err != nil {
		t.Fatalf("RenderWordCounts() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{"0-5 sec", "10-15 sec", "word count per 5-second bucket"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered chart missing %q", want)
		}
	}
}

func TestRenderSentiment(t *testing.T) {
	counts := []session.LabelCount{
		{Label: "positive", Count: 2},
		{Label: "neutral", Count: 1},
		{Label: "negative", Count: 1},
	}

	var buf bytes.Buffer
	if err := RenderSentiment(counts, &buf); err != nil {
		t.Fatalf("RenderSentiment() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{"positive", "neutral", "negative"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered chart missing %q", want)
		}
	}
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")

	err := RenderToFile(path, func(w io.Writer) error {
		return RenderSentiment([]session.LabelCount{{Label: "neutral", Count: 3}}, w)
	})
	if err != nil {
		t.Fatalf("RenderToFile() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}
