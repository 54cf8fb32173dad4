// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver), schema migrations, and first-run seeding.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

// DefaultCriteria is the skill sequence installed on first run, matching the
// scorecard the call-center team started from. Admins edit it afterwards.
var DefaultCriteria = []string{
	"Communication",
	"Relationship Building",
	"Problem-Solving",
	"Task Management",
	"Customer Service",
	"Analytical & Reporting Skills",
	"Accuracy & Attention to Detail",
}

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for all domain models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Member{},
		&domain.UserAccount{},
		&domain.Criterion{},
		&domain.Evaluation{},
		&domain.CoachingLog{},
		&domain.Idempotency{},
	)
}

// SeedCriteria installs DefaultCriteria when the criteria table is empty.
// Subsequent runs are no-ops, so admin edits are never overwritten.
func SeedCriteria(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Criterion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]domain.Criterion, 0, len(DefaultCriteria))
	for i, name := range DefaultCriteria {
		rows = append(rows, domain.Criterion{
			ID:        uuid.NewString(),
			Name:      name,
			Position:  i,
			CreatedAt: now,
		})
	}
	return db.Create(&rows).Error
}
