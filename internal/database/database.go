// Package database provides the sqlite-backed usage counter store for the
// grade distribution analyzer. Submitted grades are never persisted; the
// only state kept here are service-level aggregates for the /stats page.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

// Database wraps the main database connection.
type Database struct {
	mainDB   *sql.DB
	dbconfig *DBConfig

	mux      sync.Mutex
	StopChan chan struct{} // Channel to signal shutdown
}

// DBConfig represents database configuration.
type DBConfig struct {
	// Directory to store the database file
	DataDir string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// Performance settings
	WALMode   bool   // Write-Ahead Logging
	SyncMode  string // OFF, NORMAL, FULL
	CacheSize int    // KB, negative means KiB pages
	TempStore string // MEMORY, FILE
}

// DefaultDBConfig returns default database configuration.
func DefaultDBConfig() *DBConfig {
	return &DBConfig{
		DataDir:         "./data",
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 0, // Unlimited for SQLite - connections don't need to be recycled
		WALMode:         true,
		SyncMode:        "NORMAL",
		CacheSize:       -4096, // 4 MB cache
		TempStore:       "MEMORY",
	}
}

// OpenDatabase opens (and on first boot creates) the usage counter database.
func OpenDatabase(dbconfig *DBConfig) (*Database, error) {
	if dbconfig == nil {
		dbconfig = DefaultDBConfig()
	}

	db := &Database{
		dbconfig: dbconfig,
		StopChan: make(chan struct{}, 1),
	}

	if err := db.initMainDB(); err != nil {
		return nil, fmt.Errorf("failed to initialize main database: %w", err)
	}

	if err := db.createSchema(); err != nil {
		if cerr := db.mainDB.Close(); cerr != nil {
			return nil, fmt.Errorf("failed to create schema: %w; also failed to close mainDB: %v", err, cerr)
		}
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// initMainDB initializes the main database connection.
func (db *Database) initMainDB() error {
	dbPath := filepath.Join(db.dbconfig.DataDir, "gradeboard.sq3")
	log.Printf("Initializing main database at: %s", dbPath)

	if err := createDirIfNotExists(db.dbconfig.DataDir); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	mainDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open main database: %w", err)
	}

	mainDB.SetMaxOpenConns(db.dbconfig.MaxOpenConns)
	mainDB.SetMaxIdleConns(db.dbconfig.MaxIdleConns)
	mainDB.SetConnMaxLifetime(db.dbconfig.ConnMaxLifetime)

	if err := db.applySQLitePragmas(mainDB); err != nil {
		if cerr := mainDB.Close(); cerr != nil {
			return fmt.Errorf("failed to apply SQLite pragmas: %w; also failed to close mainDB: %v", err, cerr)
		}
		return fmt.Errorf("failed to apply SQLite pragmas: %w", err)
	}

	db.mainDB = mainDB
	return nil
}

// applySQLitePragmas applies performance and configuration pragmas.
func (db *Database) applySQLitePragmas(conn *sql.DB) error {
	pragmas := []string{
		fmt.Sprintf("PRAGMA cache_size = %d", db.dbconfig.CacheSize),
		fmt.Sprintf("PRAGMA synchronous = %s", db.dbconfig.SyncMode),
		fmt.Sprintf("PRAGMA temp_store = %s", db.dbconfig.TempStore),
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 30000", // 30 seconds
	}
	if db.dbconfig.WALMode {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return fmt.Errorf("pragma %q failed: %w", pragma, err)
		}
	}
	return nil
}

// createSchema ensures the config table exists. The schema is a single
// key/value table, so plain CREATE IF NOT EXISTS replaces the versioned
// migration machinery a bigger system would need.
func (db *Database) createSchema() error {
	_, err := retryableExec(db.mainDB, `
		CREATE TABLE IF NOT EXISTS config (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	return err
}

// GetMainDB returns the main database connection for direct access.
// This should only be used by tests and specialized tools.
func (db *Database) GetMainDB() *sql.DB {
	return db.mainDB
}

// Shutdown closes the database cleanly.
func (db *Database) Shutdown() error {
	db.mux.Lock()
	defer db.mux.Unlock()
	if db.mainDB == nil {
		return nil
	}
	if err := db.mainDB.Close(); err != nil {
		return fmt.Errorf("failed to close main database: %w", err)
	}
	db.mainDB = nil
	log.Printf("Database shutdown complete")
	return nil
}

func createDirIfNotExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}
	return nil
}
