package transcribe

import "context"

// Transcriber converts one audio chunk to plain text. A chunk with no
// confident transcription yields the empty string; recognizer misses
// are never surfaced as errors, so the pipeline can always continue to
// the next chunk.
type Transcriber interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
}
