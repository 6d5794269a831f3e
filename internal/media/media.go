package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// ExtractAudio extracts the full audio track as mono 16-bit PCM WAV,
// the format the transcriber works best with.
func (s *implService) ExtractAudio(ctx context.Context, videoPath, wavPath string) error {
	s.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", strconv.Itoa(s.cfg.SampleRate),
		"-ac", strconv.Itoa(s.cfg.Channels),
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := s.executor.Execute(ctx, s.cfg.BinaryPath, args...); err != nil {
		return fmt.Errorf("%w: extract %s: %v", ErrMedia, videoPath, err)
	}

	s.logger.Debug(ctx, "Audio extracted: %s", wavPath)
	return nil
}

// probeOutput mirrors ffprobe JSON structure.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecName string `json:"codec_name"`
	} `json:"streams"`
}

// ProbeDuration reads the duration of the first audio stream via
// ffprobe. Files without an audio stream are reported as ErrMedia.
func (s *implService) ProbeDuration(ctx context.Context, path string) (float64, error) {
	args := []string{
		"-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=codec_name:format=duration",
		"-of", "json",
		path,
	}

	out, err := s.executor.Execute(ctx, s.cfg.ProbePath, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: probe %s: %v", ErrMedia, path, err)
	}

	var probe probeOutput
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("ffprobe JSON parse: %w", err)
	}

	if len(probe.Streams) == 0 {
		return 0, fmt.Errorf("%w: no audio stream in %s", ErrMedia, path)
	}

	dur, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: no duration for %s", ErrMedia, path)
	}
	return dur, nil
}

// CutChunk copies one window out of the extracted WAV. PCM allows a
// stream copy, so cutting is cheap and sample-exact enough for 5 s
// windows.
func (s *implService) CutChunk(ctx context.Context, wavPath, chunkPath string, start, length float64) error {
	args := []string{
		"-i", wavPath,
		"-ss", strconv.FormatFloat(start, 'f', -1, 64),
		"-t", strconv.FormatFloat(length, 'f', -1, 64),
		"-c", "copy",
		"-y",
		chunkPath,
	}

	if _, err := s.executor.Execute(ctx, s.cfg.BinaryPath, args...); err != nil {
		return fmt.Errorf("cut chunk at %.1fs: %w", start, err)
	}
	return nil
}
