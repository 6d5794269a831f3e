package dataset

import "context"

// Driver runs the per-video pipeline over every video in the input
// folder. One video's failure never aborts the run.
type Driver interface {
	Run(ctx context.Context) error
	// ProcessOne processes a single video and returns the path of the
	// table it wrote. Used by both the batch run and the watch mode.
	ProcessOne(ctx context.Context, videoPath string) (string, error)
}
