package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/drivesim-tools/sessionlens/internal/session"
)

const summaryPrompt = `You analyze communication from driving-simulator experiment sessions.
Below is a per-segment transcript of one session, with the start offset in
seconds and the sentiment label of each segment.

Write a concise markdown report with:
- A one-sentence overview of the session's communication
- The notable phases of the session in order, with approximate time ranges
- The overall sentiment balance and any sentiment shifts
- A final "Observations" section with anything worth flagging for the
  experimenters (long silences, distress, confusion)

Transcript:
---
%s
---`

// SummarizeAll reads every session table in tableDir, asks Gemini for a
// report per table, and writes .md plus .docx files into destDir.
// Tables themselves are never modified.
func (s *implSummarizer) SummarizeAll(ctx context.Context, tableDir, destDir string) error {
	tables, err := discoverTables(tableDir)
	if err != nil {
		return fmt.Errorf("discover tables: %w", err)
	}

	if len(tables) == 0 {
		s.logger.Info(ctx, "No session tables found in %s", tableDir)
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Found %d session tables to summarize", len(tables))

	successCount := 0
	failCount := 0

	for i, tablePath := range tables {
		name := strings.TrimSuffix(filepath.Base(tablePath), ".csv")
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(tables), name)

		records, err := session.ReadTable(tablePath)
		if err != nil {
			s.logger.Error(ctx, "Failed to read %s: %v", tablePath, err)
			failCount++
			continue
		}

		summary, err := s.callGemini(ctx, formatTranscript(records))
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", name, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			name,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		mdPath := filepath.Join(destDir, name+".md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			failCount++
			continue
		}

		docxPath := filepath.Join(destDir, name+".docx")
		if err := summaryToDocx(name, summary, records, docxPath); err != nil {
			s.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", name, mdPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	return nil
}

// formatTranscript flattens table rows into prompt lines. Silent
// segments stay visible so the model can reason about pauses.
func formatTranscript(records []*session.Record) string {
	var b strings.Builder
	for _, r := range records {
		text := r.Transcription
		if text == "" {
			text = "(silence)"
		}
		fmt.Fprintf(&b, "[%.1fs] (%s) %s\n", r.StartTimestamp, r.Sentiment, text)
	}
	return b.String()
}

// callGemini sends the transcript to Gemini and returns the report text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func discoverTables(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".csv" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
