// Package store persists a summary row per coverage run.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
	"rf-heatmap.klederson.com/internal/coverage"
)

// RunStore records coverage run summaries in SQLite.
type RunStore struct {
	db *sql.DB
}

// RunRecord is one persisted run summary.
type RunRecord struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	MinRange    float64   `json:"min_range"`
	MaxRange    float64   `json:"max_range"`
	PointsPer   int       `json:"points_per_emitter"`
	Emitters    int       `json:"emitters"`
	TotalPoints int       `json:"total_points"`
	MinStrength float64   `json:"min_strength"`
	MaxStrength float64   `json:"max_strength"`
	AvgStrength float64   `json:"avg_strength"`
	WeakCount   int       `json:"weak_count"`
	MediumCount int       `json:"medium_count"`
	StrongCount int       `json:"strong_count"`
}

// Open opens (or creates) the run history database at path.
func Open(path string) (*RunStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run store: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			min_range DOUBLE,
			max_range DOUBLE,
			points_per_emitter INTEGER,
			emitters INTEGER,
			total_points INTEGER,
			min_strength DOUBLE,
			max_strength DOUBLE,
			avg_strength DOUBLE,
			weak_count INTEGER,
			medium_count INTEGER,
			strong_count INTEGER
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}

	return &RunStore{db: db}, nil
}

// Record inserts one run summary and returns its generated id.
func (s *RunStore) Record(res *coverage.Result) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO runs (
			run_id, min_range, max_range, points_per_emitter, emitters,
			total_points, min_strength, max_strength, avg_strength,
			weak_count, medium_count, strong_count
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.Params.MinRange, res.Params.MaxRange, res.Params.PointsPerEmitter,
		len(res.Emitters), res.Stats.TotalPoints,
		res.Stats.MinStrength, res.Stats.MaxStrength, res.Stats.AvgStrength,
		res.Stats.WeakCount, res.Stats.MediumCount, res.Stats.StrongCount,
	)
	if err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return id, nil
}

// Recent returns up to limit run summaries, newest first.
func (s *RunStore) Recent(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT run_id, created_at, min_range, max_range, points_per_emitter,
		       emitters, total_points, min_strength, max_strength, avg_strength,
		       weak_count, medium_count, strong_count
		FROM runs ORDER BY created_at DESC, run_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(
			&r.ID, &r.CreatedAt, &r.MinRange, &r.MaxRange, &r.PointsPer,
			&r.Emitters, &r.TotalPoints, &r.MinStrength, &r.MaxStrength,
			&r.AvgStrength, &r.WeakCount, &r.MediumCount, &r.StrongCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return records, nil
}

// Close releases the underlying database handle.
func (s *RunStore) Close() error {
	return s.db.Close()
}
