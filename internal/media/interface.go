package media

import (
	"context"
	"errors"
)

// ErrMedia marks a video that is unreadable or carries no audio track.
// It is fatal for that video's pipeline.
var ErrMedia = errors.New("unreadable or audio-less media")

// Service wraps the ffmpeg/ffprobe operations the pipeline needs.
type Service interface {
	// ExtractAudio writes the video's full audio track as PCM WAV.
	ExtractAudio(ctx context.Context, videoPath, wavPath string) error
	// ProbeDuration returns the audio duration in seconds.
	ProbeDuration(ctx context.Context, path string) (float64, error)
	// CutChunk writes one window of the track as its own WAV file.
	CutChunk(ctx context.Context, wavPath, chunkPath string, start, length float64) error
}
