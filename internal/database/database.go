package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver
)

// Open opens a connection to the SQLite database.
//
// Connection options ride on the DSN so that every pooled connection gets
// them; a PRAGMA issued through db.Exec only reaches whichever connection
// the pool hands out. Foreign keys make fund deletion cascade to its return
// rows, and busy_timeout makes contending writers wait instead of failing.
//
// _txlock=immediate starts every transaction with the write lock held. A
// deferred transaction that reads before writing cannot upgrade its lock
// while another writer is active; SQLite fails the upgrade with SQLITE_BUSY
// without consulting busy_timeout. Immediate transactions queue on
// busy_timeout instead, so concurrent sync workers wait their turn rather
// than spuriously skipping valid records.
func Open(dbPath string) (*sql.DB, error) {
	opts := "_txlock=immediate&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}

	db, err := sql.Open("sqlite", dbPath+sep+opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// HealthCheck performs a simple health check on the database
func HealthCheck(db *sql.DB) error {
	return db.Ping()
}
