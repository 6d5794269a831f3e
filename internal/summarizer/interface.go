package summarizer

import "context"

// Summarizer reads session tables and produces LLM-written markdown
// and docx reports.
type Summarizer interface {
	SummarizeAll(ctx context.Context, tableDir, destDir string) error
}
