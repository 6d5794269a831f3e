package transcribe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drivesim-tools/sessionlens/internal/config"
	"github.com/drivesim-tools/sessionlens/internal/logger"
)

// scriptedExecutor simulates the whisper binary by writing (or not
// writing) the .txt output file it is asked for.
type scriptedExecutor struct {
	txtContent string
	writeTxt   bool
	err        error
}

func (s *scriptedExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.writeTxt {
		var prefix string
		for i, a := range args {
			if a == "--output-file" {
				prefix = args[i+1]
			}
		}
		if err := os.WriteFile(prefix+".txt", []byte(s.txtContent), 0644); err != nil {
			return "", err
		}
	}
	return "", nil
}

func newWhisper(exec *scriptedExecutor) Transcriber {
	cfg := config.Default()
	return New(cfg.Whisper, exec, logger.New("error"))
}

func TestTranscribe(t *testing.T) {
	wav := filepath.Join(t.TempDir(), "chunk.wav")
	w := newWhisper(&scriptedExecutor{writeTxt: true, txtContent: " keep both hands on the wheel \n"})

	text, err := w.Transcribe(context.Background(), wav)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "keep both hands on the wheel" {
		t.Errorf("text = %q", text)
	}

	// The transient .txt must be gone afterwards.
	if _, err := os.Stat(filepath.Join(filepath.Dir(wav), "chunk.txt")); !os.IsNotExist(err) {
		t.Error("transient txt file was not removed")
	}
}

func TestTranscribeBinaryFailure(t *testing.T) {
	wav := filepath.Join(t.TempDir(), "chunk.wav")
	w := newWhisper(&scriptedExecutor{err: errors.New("exit status 1")})

	text, err := w.Transcribe(context.Background(), wav)
	if err != nil {
		t.Fatalf("a recognizer miss must not surface as an error, got %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty string", text)
	}
}

func TestTranscribeNoOutputFile(t *testing.T) {
	wav := filepath.Join(t.TempDir(), "chunk.wav")
	w := newWhisper(&scriptedExecutor{writeTxt: false})

	text, err := w.Transcribe(context.Background(), wav)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if text != "" {
		t.Errorf("text = %q, want empty string", text)
	}
}
