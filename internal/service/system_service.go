package service

import (
	"database/sql"

	"github.com/clearfolio/fund-catalog-backend/internal/database"
)

// Version is the build version, overridable at link time.
var Version = "dev"

// SystemService exposes operational status of the service.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService with the provided database connection.
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// Health reports whether the backing store is reachable.
func (s *SystemService) Health() error {
	return database.HealthCheck(s.db)
}

// VersionInfo returns the running build version.
func (s *SystemService) VersionInfo() string {
	return Version
}
