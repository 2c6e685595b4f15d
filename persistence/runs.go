package persistence

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"linkedin-network-export/export"
)

// Run statuses.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// ExportRun is one row of the run ledger.
type ExportRun struct {
	ID              string
	StartedAt       time.Time
	FinishedAt      *time.Time
	Status          string
	OutputPath      string
	ConnectionCount int
	ErrorMessage    string
}

// StartRun records a new running export and returns its id.
func (s *Store) StartRun(outputPath string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO export_runs (id, status, output_path) VALUES (?, ?, ?)
	`, id, RunStatusRunning, outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to start run: %w", err)
	}
	return id, nil
}

// CompleteRun marks runID successful and archives its connections.
func (s *Store) CompleteRun(runID string, connections []export.Connection) error {
	return s.Transaction(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			UPDATE export_runs
			SET status = ?, finished_at = CURRENT_TIMESTAMP, connection_count = ?
			WHERE id = ?
		`, RunStatusCompleted, len(connections), runID)
		if err != nil {
			return fmt.Errorf("failed to complete run: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return fmt.Errorf("unknown run: %s", runID)
		}

		for i, c := range connections {
			var employer any
			if c.Employer != nil {
				employer = *c.Employer
			}
			if _, err := tx.Exec(`
				INSERT INTO export_connections (run_id, position, name, headline, employer)
				VALUES (?, ?, ?, ?, ?)
			`, runID, i, c.Name, c.Headline, employer); err != nil {
				return fmt.Errorf("failed to archive connection %d: %w", i, err)
			}
		}
		return nil
	})
}

// FailRun marks runID failed with the error that stopped it.
func (s *Store) FailRun(runID string, runErr error) error {
	message := ""
	if runErr != nil {
		message = runErr.Error()
	}
	_, err := s.db.Exec(`
		UPDATE export_runs
		SET status = ?, finished_at = CURRENT_TIMESTAMP, error_message = ?
		WHERE id = ?
	`, RunStatusFailed, message, runID)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// GetRun retrieves a run by id, or nil when it does not exist.
func (s *Store) GetRun(runID string) (*ExportRun, error) {
	row := s.db.QueryRow(`
		SELECT id, started_at, finished_at, status, output_path, connection_count, error_message
		FROM export_runs
		WHERE id = ?
	`, runID)

	run := &ExportRun{}
	var finishedAt sql.NullTime
	var outputPath, errorMessage sql.NullString

	err := row.Scan(&run.ID, &run.StartedAt, &finishedAt, &run.Status,
		&outputPath, &run.ConnectionCount, &errorMessage)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}
	if outputPath.Valid {
		run.OutputPath = outputPath.String
	}
	if errorMessage.Valid {
		run.ErrorMessage = errorMessage.String
	}
	return run, nil
}

// ConnectionsForRun returns the archived connections of a run in extraction
// order.
func (s *Store) ConnectionsForRun(runID string) ([]export.Connection, error) {
	rows, err := s.db.Query(`
		SELECT name, headline, employer
		FROM export_connections
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query connections: %w", err)
	}
	defer rows.Close()

	var connections []export.Connection
	for rows.Next() {
		var c export.Connection
		var headline, employer sql.NullString
		if err := rows.Scan(&c.Name, &headline, &employer); err != nil {
			return nil, fmt.Errorf("failed to scan connection: %w", err)
		}
		if headline.Valid {
			c.Headline = headline.String
		}
		if employer.Valid {
			v := employer.String
			c.Employer = &v
		}
		connections = append(connections, c)
	}
	return connections, rows.Err()
}
