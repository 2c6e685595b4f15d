// Package persistence writes export results: the JSON file external
// consumers depend on, and a SQLite ledger of runs for local bookkeeping.
package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"linkedin-network-export/export"
)

// WriteConnectionsJSON writes connections to path as a pretty-printed JSON
// array of {name, headline, employer} objects, employer null when unknown.
// Key names and the flat-array shape are the durable contract for external
// consumers. The file goes through a temp-and-rename so a failure never
// leaves a partial file behind.
func WriteConnectionsJSON(connections []export.Connection, path string) error {
	if connections == nil {
		connections = []export.Connection{}
	}
	data, err := json.MarshalIndent(connections, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal connections: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".connections-*.json")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename output into place: %w", err)
	}
	return nil
}
