package media

import (
	"context"
	"errors"
	"testing"

	"github.com/drivesim-tools/sessionlens/internal/config"
	"github.com/drivesim-tools/sessionlens/internal/logger"
)

// fakeExecutor records the last invocation and returns canned output.
type fakeExecutor struct {
	lastName string
	lastArgs []string
	out      string
	err      error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.lastName = name
	f.lastArgs = args
	return f.out, f.err
}

func newService(exec *fakeExecutor) Service {
	cfg := config.Default()
	return New(cfg.FFmpeg, exec, logger.New("error"))
}

func TestProbeDuration(t *testing.T) {
	exec := &fakeExecutor{out: `{"format":{"duration":"12.300000"},"streams":[{"codec_name":"pcm_s16le"}]}`}
	svc := newService(exec)

	dur, err := svc.ProbeDuration(context.Background(), "run1.wav")
	if err != nil {
		t.Fatalf("ProbeDuration() error = %v", err)
	}
	if dur != 12.3 {
		t.Errorf("duration = %v, want 12.3", dur)
	}
	if exec.lastName != "ffprobe" {
		t.Errorf("invoked %q, want ffprobe", exec.lastName)
	}
}

func TestProbeDurationNoAudioStream(t *testing.T) {
	exec := &fakeExecutor{out: `{"format":{"duration":"12.3"},"streams":[]}`}
	svc := newService(exec)

	_, err := svc.ProbeDuration(context.Background(), "silent.mp4")
	if !errors.Is(err, ErrMedia) {
		t.Errorf("error = %v, want ErrMedia", err)
	}
}

func TestProbeDurationFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	svc := newService(exec)

	_, err := svc.ProbeDuration(context.Background(), "corrupt.mp4")
	if !errors.Is(err, ErrMedia) {
		t.Errorf("error = %v, want ErrMedia", err)
	}
}

func TestExtractAudioFailure(t *testing.T) {
	exec := &fakeExecutor{err: errors.New("exit status 1")}
	svc := newService(exec)

	err := svc.ExtractAudio(context.Background(), "corrupt.mp4", "out.wav")
	if !errors.Is(err, ErrMedia) {
		t.Errorf("error = %v, want ErrMedia", err)
	}
}

func TestExtractAudioArgs(t *testing.T) {
	exec := &fakeExecutor{}
	svc := newService(exec)

	if err := svc.ExtractAudio(context.Background(), "run1.mp4", "run1.wav"); err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}
	if exec.lastName != "ffmpeg" {
		t.Errorf("invoked %q, want ffmpeg", exec.lastName)
	}

	want := map[string]bool{"-vn": true, "pcm_s16le": true, "run1.wav": true}
	for _, a := range exec.lastArgs {
		delete(want, a)
	}
	for missing := range want {
		t.Errorf("ffmpeg args missing %q: %v", missing, exec.lastArgs)
	}
}

func TestCutChunkArgs(t *testing.T) {
	exec := &fakeExecutor{}
	svc := newService(exec)

	if err := svc.CutChunk(context.Background(), "run1.wav", "chunk.wav", 5, 2.3); err != nil {
		t.Fatalf("CutChunk() error = %v", err)
	}

	args := exec.lastArgs
	for i, a := range args {
		if a == "-ss" && args[i+1] != "5" {
			t.Errorf("-ss = %q, want 5", args[i+1])
		}
		if a == "-t" && args[i+1] != "2.3" {
			t.Errorf("-t = %q, want 2.3", args[i+1])
		}
	}
}
