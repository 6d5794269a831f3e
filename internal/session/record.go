// Package session holds the per-window transcript row, its CSV table
// persistence, and the read-only aggregation views over one table.
package session

// Record is one transcribed window of a session video. Rows for one
// video are ordered by increasing StartTimestamp and cover the video's
// audio exhaustively.
type Record struct {
	VideoFile      string  `csv:"video_file"`
	StartTimestamp float64 `csv:"start_timestamp"`
	Transcription  string  `csv:"transcription"`
	Sentiment      string  `csv:"sentiment"`
}
