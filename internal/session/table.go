package session

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// WriteTable persists records as a CSV table at path, header included.
// A table is written once, fully formed; an empty record set still
// produces the header row.
func WriteTable(path string, records []*Record) error {
	if records == nil {
		records = []*Record{}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// ReadTable loads a CSV table written by WriteTable. A header-only
// table yields zero records.
func ReadTable(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	var records []*Record
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	return records, nil
}
