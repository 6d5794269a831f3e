package media

import (
	"github.com/drivesim-tools/sessionlens/internal/config"
	"github.com/drivesim-tools/sessionlens/internal/logger"
	"github.com/drivesim-tools/sessionlens/pkg/executor"
)

type implService struct {
	cfg      config.FFmpegConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Service backed by the configured ffmpeg/ffprobe binaries.
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Service {
	return &implService{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
