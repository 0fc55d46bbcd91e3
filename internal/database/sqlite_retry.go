package database

import (
	"database/sql"
	"log"
	"math/rand"
	"strings"
	"time"
)

const (
	maxRetries = 100
	baseDelay  = 10 * time.Millisecond
	maxDelay   = 25 * time.Millisecond
)

// isRetryableError checks if the error is a retryable SQLite error.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked") ||
		strings.Contains(errStr, "busy") ||
		strings.Contains(errStr, "locked")
}

// retryableExec executes a SQL statement with retry logic for lock conflicts.
func retryableExec(db *sql.DB, query string, args ...interface{}) (sql.Result, error) {
	var result sql.Result
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		result, err = db.Exec(query, args...)

		if !isRetryableError(err) {
			return result, err
		}

		if attempt < maxRetries-1 {
			// Exponential backoff with jitter
			delay := time.Duration(attempt+1) * baseDelay
			if delay > maxDelay {
				delay = maxDelay
			}
			jitter := time.Duration(rand.Int63n(int64(delay) / 2))
			time.Sleep(delay + jitter)

			log.Printf("[WARN] SQLite retry attempt %d/%d for query (first 50 chars): %s... Error: %v",
				attempt+1, maxRetries, truncateString(query, 50), err)
		}
	}

	return result, err
}

// retryableQueryRowScan performs a QueryRow().Scan() with retry logic.
func retryableQueryRowScan(db *sql.DB, query string, args []interface{}, dest ...interface{}) error {
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		err = db.QueryRow(query, args...).Scan(dest...)

		if !isRetryableError(err) {
			return err
		}

		if attempt < maxRetries-1 {
			delay := time.Duration(attempt+1) * baseDelay
			if delay > maxDelay {
				delay = maxDelay
			}
			jitter := time.Duration(rand.Int63n(int64(delay) / 2))
			time.Sleep(delay + jitter)

			log.Printf("[WARN] SQLite retry attempt %d/%d for query (first 50 chars): %s... Error: %v",
				attempt+1, maxRetries, truncateString(query, 50), err)
		}
	}

	return err
}

func truncateString(s string, maxLen int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
