package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtnitsch/geosat-report/models"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run is one scrape invocation.
type Run struct {
	RunID        int64
	CreatedAt    time.Time
	FinishedAt   sql.NullTime
	SearchURL    string
	LinkCount    int
	SuccessCount int
	FailedCount  int
	ReportPath   sql.NullString
}

// Access is one page fetch attempt.
type Access struct {
	Link         string
	StatusCode   int
	ErrorType    string
	ErrorMessage string
	Success      bool
}

// CreateRun starts a run and returns its ID.
func (db *DB) CreateRun(searchURL string) (int64, error) {
	result, err := db.Exec(`INSERT INTO runs (search_url) VALUES (?)`, searchURL)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// FinishRun stores the final counts of a run.
func (db *DB) FinishRun(runID int64, linkCount, successCount, failedCount int, reportPath string) error {
	_, err := db.Exec(`
		UPDATE runs
		SET finished_at = CURRENT_TIMESTAMP, link_count = ?, success_count = ?, failed_count = ?, report_path = ?
		WHERE run_id = ?
	`, linkCount, successCount, failedCount, NewNullString(reportPath), runID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// SetReportPath records where the workbook of a run was written.
func (db *DB) SetReportPath(runID int64, reportPath string) error {
	_, err := db.Exec(`UPDATE runs SET report_path = ? WHERE run_id = ?`, reportPath, runID)
	if err != nil {
		return fmt.Errorf("failed to update report path: %w", err)
	}
	return nil
}

const insertRecordSQL = `
	INSERT INTO satellites (
		run_id, position, link, name, mission_type, background_full, background_summary,
		launch_date, lifetime, end_of_life, mass_kg, orbit_type, size_class,
		mission_status, product_candidates, image_url
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func recordArgs(runID int64, rec models.SatelliteRecord) []interface{} {
	var mass sql.NullFloat64
	if rec.Mass.Available {
		mass = sql.NullFloat64{Float64: rec.Mass.Kg, Valid: true}
	}
	return []interface{}{
		runID, rec.Position, rec.Link, rec.Name, rec.MissionType, rec.BackgroundFull, rec.BackgroundSummary,
		rec.LaunchDate, rec.Lifetime, rec.EndOfLife, mass, rec.OrbitType, string(rec.SizeClass),
		string(rec.MissionStatus), rec.ProductCandidates, rec.ImageURL,
	}
}

// InsertRecords appends records to a run in one transaction.
func (db *DB) InsertRecords(runID int64, recs []models.SatelliteRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, rec := range recs {
		if _, err := tx.Exec(insertRecordSQL, recordArgs(runID, rec)...); err != nil {
			return fmt.Errorf("failed to insert record %q: %w", rec.Link, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit records: %w", err)
	}
	return nil
}

// RecordAccess logs a page fetch attempt.
func (db *DB) RecordAccess(runID int64, a Access) error {
	_, err := db.Exec(`
		INSERT INTO page_accesses (run_id, link, status_code, error_type, error_message, success)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, a.Link, a.StatusCode, NewNullString(a.ErrorType), NewNullString(a.ErrorMessage), a.Success)
	if err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// GetRun returns one run.
func (db *DB) GetRun(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, created_at, finished_at, search_url, link_count, success_count, failed_count, report_path
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.FinishedAt, &r.SearchURL, &r.LinkCount,
		&r.SuccessCount, &r.FailedCount, &r.ReportPath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// ListRuns returns the most recent runs first. A limit of 0 returns all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, finished_at, search_url, link_count, success_count, failed_count, report_path
		FROM runs ORDER BY run_id DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.FinishedAt, &r.SearchURL, &r.LinkCount,
			&r.SuccessCount, &r.FailedCount, &r.ReportPath); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LatestRunID returns the newest run, or ErrRunNotFound when there is none.
func (db *DB) LatestRunID() (int64, error) {
	var runID int64
	err := db.QueryRow(`SELECT run_id FROM runs ORDER BY run_id DESC LIMIT 1`).Scan(&runID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrRunNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get latest run: %w", err)
	}
	return runID, nil
}

// GetRunRecords returns the records of a run in catalog order.
func (db *DB) GetRunRecords(runID int64) ([]models.SatelliteRecord, error) {
	rows, err := db.Query(`
		SELECT position, link, name, mission_type, background_full, background_summary,
		       launch_date, lifetime, end_of_life, mass_kg, orbit_type, size_class,
		       mission_status, product_candidates, image_url
		FROM satellites WHERE run_id = ? ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run records: %w", err)
	}
	defer rows.Close()

	var recs []models.SatelliteRecord
	for rows.Next() {
		var (
			rec                                 models.SatelliteRecord
			missionType, bgFull, bgSummary      sql.NullString
			launch, lifetime, eol, orbit, image sql.NullString
			mass                                sql.NullFloat64
			sizeClass, status                   string
		)
		if err := rows.Scan(&rec.Position, &rec.Link, &rec.Name, &missionType, &bgFull, &bgSummary,
			&launch, &lifetime, &eol, &mass, &orbit, &sizeClass, &status,
			&rec.ProductCandidates, &image); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec.MissionType = missionType.String
		rec.BackgroundFull = bgFull.String
		rec.BackgroundSummary = bgSummary.String
		rec.LaunchDate = launch.String
		rec.Lifetime = lifetime.String
		rec.EndOfLife = eol.String
		rec.OrbitType = orbit.String
		rec.ImageURL = image.String
		rec.SizeClass = models.Class(sizeClass)
		rec.MissionStatus = models.Status(status)
		if mass.Valid {
			rec.Mass = models.KnownMass(mass.Float64)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// GetRunFailures returns the failed page accesses of a run.
func (db *DB) GetRunFailures(runID int64) ([]Access, error) {
	rows, err := db.Query(`
		SELECT link, status_code, error_type, error_message, success
		FROM page_accesses WHERE run_id = ? AND success = 0 ORDER BY access_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run failures: %w", err)
	}
	defer rows.Close()

	var out []Access
	for rows.Next() {
		var (
			a                   Access
			statusCode          sql.NullInt64
			errType, errMessage sql.NullString
		)
		if err := rows.Scan(&a.Link, &statusCode, &errType, &errMessage, &a.Success); err != nil {
			return nil, fmt.Errorf("failed to scan access: %w", err)
		}
		a.StatusCode = int(statusCode.Int64)
		a.ErrorType = errType.String
		a.ErrorMessage = errMessage.String
		out = append(out, a)
	}
	return out, rows.Err()
}

// NewNullString maps "" to NULL.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
