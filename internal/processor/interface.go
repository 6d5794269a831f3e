package processor

import "context"

// Processor runs the per-video pipeline: extract audio, segment,
// transcribe and classify each window, persist one CSV table.
type Processor interface {
	Process(ctx context.Context, videoPath, tablePath string) error
}
