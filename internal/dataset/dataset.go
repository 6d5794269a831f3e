package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// videoExtensions are the accepted input formats, matched
// case-insensitively.
var videoExtensions = map[string]bool{
	".mp4": true,
	".avi": true,
	".mov": true,
	".mkv": true,
}

// IsVideoFile reports whether path has a recognized video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// TableName builds the output table name for a video:
// {basename}_{YYYYMMDD_HHMMSS}.csv. The timestamp keeps repeated runs
// from colliding.
func TableName(videoPath string, ts time.Time) string {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	return fmt.Sprintf("%s_%s.csv", base, ts.Format("20060102_150405"))
}

// Discover lists the video files in dir, sorted by name so dataset runs
// are deterministic.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var videos []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsVideoFile(e.Name()) {
			videos = append(videos, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(videos)
	return videos, nil
}

// Run processes every video in the input folder. A failed video is
// logged and skipped; the remaining videos still run.
func (d *implDriver) Run(ctx context.Context) error {
	if err := os.MkdirAll(d.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	videos, err := Discover(d.cfg.Paths.Input)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		d.logger.Info(ctx, "No videos found in %s", d.cfg.Paths.Input)
		return nil
	}

	for _, video := range videos {
		tablePath, err := d.ProcessOne(ctx, video)
		if err != nil {
			d.logger.Error(ctx, "Skipping %s: %v", video, err)
			continue
		}
		fmt.Printf("Processed %s -> %s\n", video, tablePath)
	}
	return nil
}

func (d *implDriver) ProcessOne(ctx context.Context, videoPath string) (string, error) {
	tablePath := filepath.Join(d.cfg.Paths.Output, TableName(videoPath, time.Now()))
	if err := d.proc.Process(ctx, videoPath, tablePath); err != nil {
		return "", err
	}
	return tablePath, nil
}
