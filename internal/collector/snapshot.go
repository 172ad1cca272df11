package collector

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/types"
)

// WriteSnapshot writes a trend snapshot as indented JSON, the format the
// refdata loader validates and the analyzer consumes.
func WriteSnapshot(path string, records []types.TrendRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode trend snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write trend snapshot %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot reads a previously written snapshot, used to compute
// growth rates between collection runs.
func ReadSnapshot(path string) ([]types.TrendRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trend snapshot %s: %w", path, err)
	}
	var records []types.TrendRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse trend snapshot %s: %w", path, err)
	}
	return records, nil
}
