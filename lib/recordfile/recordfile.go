// Package recordfile reads and writes race analysis records as JSON
// files on disk.
package recordfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gproassist/lib/scrapers/gpro"
)

// Path returns the conventional file name for a coordinate inside dir,
// e.g. "S54R14.json".
func Path(dir string, coordinate gpro.Coordinate) string {
	return filepath.Join(dir, fmt.Sprintf("S%dR%d.json", coordinate.Season, coordinate.Race))
}

// Write marshals the record to indented JSON, creating parent
// directories as needed.
func Write(record *gpro.RaceAnalysis, path string) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}

func Read(path string) (*gpro.RaceAnalysis, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	record := &gpro.RaceAnalysis{}
	err = json.Unmarshal(contents, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}
