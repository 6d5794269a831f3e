package dataset

import (
	"github.com/drivesim-tools/sessionlens/internal/config"
	"github.com/drivesim-tools/sessionlens/internal/logger"
	"github.com/drivesim-tools/sessionlens/internal/processor"
)

type implDriver struct {
	cfg    *config.Config
	proc   processor.Processor
	logger logger.Logger
}

// New creates a new Driver instance
func New(cfg *config.Config, proc processor.Processor, log logger.Logger) Driver {
	return &implDriver{
		cfg:    cfg,
		proc:   proc,
		logger: log,
	}
}
