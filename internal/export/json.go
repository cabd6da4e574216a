package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marklytic/marksheet-analyzer/internal/marksheet"
)

// WriteRecordsJSON writes the hierarchical gazette export. The format is
// lossless: re-reading it reproduces seat numbers, marks and grades.
func WriteRecordsJSON(path string, records []marksheet.StudentRecord) error {
	return writeJSON(path, records)
}

// ReadRecordsJSON reads a gazette export back. Used by callers that
// post-process earlier analyses.
func ReadRecordsJSON(path string) ([]marksheet.StudentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read records file: %w", err)
	}

	var records []marksheet.StudentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("cannot parse records file: %w", err)
	}
	return records, nil
}

// WritePercentagesJSON writes the consolidated family's per-student output.
func WritePercentagesJSON(path string, records []marksheet.PercentageRecord) error {
	return writeJSON(path, records)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write records file: %w", err)
	}
	return nil
}
