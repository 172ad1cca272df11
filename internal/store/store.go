// Package store provides PostgreSQL access for reference data snapshots
// and saved analysis reports. The analysis core never touches it; the
// server and collector fetch or deposit snapshots here around the core.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/career-compass/internal/types"
)

// Store wraps a PostgreSQL connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// GetTrends returns the current trend snapshot ordered by trend score
// descending.
func (s *Store) GetTrends(ctx context.Context) ([]types.TrendRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT technology, category, trend_score, growth_rate
		 FROM trend_records
		 ORDER BY trend_score DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trend records: %w", err)
	}
	defer rows.Close()

	var trends []types.TrendRecord
	for rows.Next() {
		var record types.TrendRecord
		if err := rows.Scan(&record.Technology, &record.Category, &record.TrendScore, &record.GrowthRate); err != nil {
			return nil, fmt.Errorf("failed to scan trend record: %w", err)
		}
		trends = append(trends, record)
	}
	return trends, rows.Err()
}

// ReplaceTrends atomically swaps the trend snapshot for a new one.
func (s *Store) ReplaceTrends(ctx context.Context, records []types.TrendRecord) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM trend_records`); err != nil {
		return fmt.Errorf("failed to clear trend records: %w", err)
	}
	for _, record := range records {
		_, err := tx.Exec(ctx,
			`INSERT INTO trend_records (technology, category, trend_score, growth_rate)
			 VALUES ($1, $2, $3, $4)`,
			record.Technology, record.Category, record.TrendScore, record.GrowthRate)
		if err != nil {
			return fmt.Errorf("failed to insert trend record %s: %w", record.Technology, err)
		}
	}
	return tx.Commit(ctx)
}

// GetProjects returns the project catalog.
func (s *Store) GetProjects(ctx context.Context) ([]types.Project, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, description, url, industry, required_skills
		 FROM projects
		 ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var project types.Project
		if err := rows.Scan(&project.Name, &project.Description, &project.URL, &project.Industry, &project.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

// SaveReport persists an analysis report as JSON, keyed by the report's
// deterministic ID. Re-analyzing identical input overwrites the stored
// report instead of adding a duplicate row.
func (s *Store) SaveReport(ctx context.Context, report *types.AnalysisReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO analysis_reports (report_id, target_role, alignment_pct, report)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (report_id) DO UPDATE
		 SET target_role   = EXCLUDED.target_role,
		     alignment_pct = EXCLUDED.alignment_pct,
		     report        = EXCLUDED.report,
		     created_at    = now()`,
		report.ID, report.Summary.TargetRole, report.Summary.MarketAlignmentPercentage, payload)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport loads a saved analysis report by the ID clients received in
// the report payload.
func (s *Store) GetReport(ctx context.Context, id uuid.UUID) (*types.AnalysisReport, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT report FROM analysis_reports WHERE report_id = $1`, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report: %w", err)
	}

	var report types.AnalysisReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
