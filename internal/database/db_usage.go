package database

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/spinachbro/Grade-Distribution-Analyzer/internal/models"
)

// Counter and config keys in the config table.
const (
	keyAnalysesTotal   = "analyses_total"
	keyGradesTotal     = "grades_total"
	keyInvalidRequests = "invalid_requests"
	keyLastAnalysis    = "last_analysis"
)

// GetConfigValue retrieves a configuration value from the config table.
func (db *Database) GetConfigValue(key string) (string, error) {
	var value string
	err := retryableQueryRowScan(db.mainDB, "SELECT value FROM config WHERE key = ?", []interface{}{key}, &value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil // Return empty string for missing keys
		}
		return "", err
	}
	return value, nil
}

// SetConfigValue sets or updates a configuration value in the config table.
func (db *Database) SetConfigValue(key, value string) error {
	_, err := retryableExec(db.mainDB, `
		INSERT OR REPLACE INTO config (key, value)
		VALUES (?, ?)
	`, key, value)
	return err
}

// incrementCounter adds delta to a numeric counter stored in the config table.
func (db *Database) incrementCounter(key string, delta int64) error {
	_, err := retryableExec(db.mainDB, `
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = CAST(value AS INTEGER) + ?
	`, key, strconv.FormatInt(delta, 10), delta)
	return err
}

// getCounter reads a numeric counter; missing keys read as zero.
func (db *Database) getCounter(key string) (int64, error) {
	value, err := db.GetConfigValue(key)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	return strconv.ParseInt(value, 10, 64)
}

// RecordAnalysis bumps the usage counters after a successful analysis.
// Only the grade count is recorded, never the grades themselves.
func (db *Database) RecordAnalysis(gradeCount int) error {
	if err := db.incrementCounter(keyAnalysesTotal, 1); err != nil {
		return err
	}
	if err := db.incrementCounter(keyGradesTotal, int64(gradeCount)); err != nil {
		return err
	}
	return db.SetConfigValue(keyLastAnalysis, time.Now().UTC().Format(time.RFC3339))
}

// RecordInvalidRequest bumps the invalid input counter.
func (db *Database) RecordInvalidRequest() error {
	return db.incrementCounter(keyInvalidRequests, 1)
}

// GetUsageStats returns the aggregated service counters for the stats page.
func (db *Database) GetUsageStats() (*models.UsageStats, error) {
	analyses, err := db.getCounter(keyAnalysesTotal)
	if err != nil {
		return nil, err
	}
	grades, err := db.getCounter(keyGradesTotal)
	if err != nil {
		return nil, err
	}
	invalid, err := db.getCounter(keyInvalidRequests)
	if err != nil {
		return nil, err
	}
	last, err := db.GetConfigValue(keyLastAnalysis)
	if err != nil {
		return nil, err
	}
	return &models.UsageStats{
		AnalysesTotal:   analyses,
		GradesTotal:     grades,
		InvalidRequests: invalid,
		LastAnalysis:    last,
	}, nil
}
