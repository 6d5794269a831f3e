package processor

import (
	"context"
	"os"
)

// cleanupTempFile removes an intermediate file. A file that is already
// gone is not an error; any other failure is only logged.
func (p *implProcessor) cleanupTempFile(ctx context.Context, path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
