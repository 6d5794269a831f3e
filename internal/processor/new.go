package processor

import (
	"github.com/drivesim-tools/sessionlens/internal/config"
	"github.com/drivesim-tools/sessionlens/internal/logger"
	"github.com/drivesim-tools/sessionlens/internal/media"
	"github.com/drivesim-tools/sessionlens/internal/sentiment"
	"github.com/drivesim-tools/sessionlens/internal/transcribe"
)

type implProcessor struct {
	cfg         *config.Config
	media       media.Service
	transcriber transcribe.Transcriber
	scorer      sentiment.Scorer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, m media.Service, t transcribe.Transcriber, s sentiment.Scorer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		media:       m,
		transcriber: t,
		scorer:      s,
		logger:      log,
	}
}
