package repo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

func TestOpenSQLite_CreatesFileAndMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	if !db.Migrator().HasTable(&domain.Evaluation{}) || !db.Migrator().HasTable(&domain.CoachingLog{}) {
		t.Fatal("tables missing after migrate")
	}
}

func TestOpenSQLite_MissingParentDir(t *testing.T) {
	if _, err := OpenSQLite(filepath.Join(t.TempDir(), "nope", "deep", "test.db")); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestSeedCriteria_IdempotentAndOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	if err := SeedCriteria(db); err != nil {
		t.Fatalf("SeedCriteria: %v", err)
	}
	names, err := CriteriaNames(context.Background(), db)
	if err != nil {
		t.Fatalf("CriteriaNames: %v", err)
	}
	if len(names) != len(DefaultCriteria) {
		t.Fatalf("len = %d, want %d", len(names), len(DefaultCriteria))
	}
	for i, want := range DefaultCriteria {
		if names[i] != want {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want)
		}
	}

	// Second run must not duplicate or reorder.
	if err := SeedCriteria(db); err != nil {
		t.Fatalf("second SeedCriteria: %v", err)
	}
	again, _ := CriteriaNames(context.Background(), db)
	if len(again) != len(DefaultCriteria) {
		t.Fatalf("reseed duplicated rows: %d", len(again))
	}
}
