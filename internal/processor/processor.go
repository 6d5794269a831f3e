package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/drivesim-tools/sessionlens/internal/segment"
	"github.com/drivesim-tools/sessionlens/internal/sentiment"
	"github.com/drivesim-tools/sessionlens/internal/session"
)

// Process orchestrates one video's pipeline. Extraction failure aborts
// the video and writes no table; a single window's transcription miss
// never blocks the windows after it.
func (p *implProcessor) Process(ctx context.Context, videoPath, tablePath string) error {
	startTime := time.Now()
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	p.logger.Info(ctx, "Starting session processing: %s", videoPath)

	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}

	// Step 1: Extract the full audio track
	wavPath := filepath.Join(p.cfg.Paths.Temp, base+".wav")
	if err := p.media.ExtractAudio(ctx, videoPath, wavPath); err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, wavPath)

	// Step 2: Plan fixed-length windows over the track
	duration, err := p.media.ProbeDuration(ctx, wavPath)
	if err != nil {
		return fmt.Errorf("probe duration: %w", err)
	}
	plan := segment.Plan(duration, p.cfg.Segment.LengthSeconds)

	chunkDir, err := os.MkdirTemp(p.cfg.Paths.Temp, base+"-chunks-*")
	if err != nil {
		return fmt.Errorf("create chunk dir: %w", err)
	}
	defer os.RemoveAll(chunkDir)

	// Step 3: Transcribe and classify each window in order
	records := make([]*session.Record, 0, len(plan))
	for _, w := range plan {
		records = append(records, p.processWindow(ctx, videoPath, wavPath, chunkDir, w))
	}

	// Step 4: Persist the table in one shot, header included
	if err := session.WriteTable(tablePath, records); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	p.logger.Info(ctx, "Processed %d windows of %s in %s", len(records), base, time.Since(startTime))
	return nil
}

// processWindow cuts, transcribes, and classifies one window. Every
// failure here degrades to an empty transcription.
func (p *implProcessor) processWindow(ctx context.Context, videoPath, wavPath, chunkDir string, w segment.Window) *session.Record {
	// Unique chunk name so staging files cannot collide across
	// iterations or concurrent videos.
	chunkPath := filepath.Join(chunkDir, uuid.NewString()+".wav")
	defer p.cleanupTempFile(ctx, chunkPath)

	text := ""
	if err := p.media.CutChunk(ctx, wavPath, chunkPath, w.Start, w.Length); err != nil {
		p.logger.Warn(ctx, "Skipping window at %.1fs: %v", w.Start, err)
	} else if t, err := p.transcriber.Transcribe(ctx, chunkPath); err != nil {
		p.logger.Warn(ctx, "Transcription failed at %.1fs: %v", w.Start, err)
	} else {
		text = t
	}

	return &session.Record{
		VideoFile:      videoPath,
		StartTimestamp: w.Start,
		Transcription:  text,
		Sentiment:      string(sentiment.Classify(p.scorer(text))),
	}
}
