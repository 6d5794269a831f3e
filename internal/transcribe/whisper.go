package transcribe

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Transcribe runs whisper.cpp on one chunk and reads back the text
// output. Unintelligible audio, a failing binary, or a missing output
// file all degrade to the empty string. The transient .txt whisper
// writes is removed on every path.
func (w *implWhisper) Transcribe(ctx context.Context, wavPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(wavPath, filepath.Ext(wavPath))
	txtPath := outputPrefix + ".txt"
	defer os.Remove(txtPath)

	// -otxt: plain text output
	// -l: force language (prevents hallucination)
	// -np: suppress whisper's own progress prints
	args := []string{
		"-m", w.cfg.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-np",
		"--output-file", outputPrefix,
	}

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, args...); err != nil {
		w.logger.Warn(ctx, "Transcription miss for %s: %v", wavPath, err)
		return "", nil
	}

	data, err := os.ReadFile(txtPath)
	if err != nil {
		w.logger.Warn(ctx, "Transcription produced no output for %s", wavPath)
		return "", nil
	}

	return strings.TrimSpace(string(data)), nil
}
