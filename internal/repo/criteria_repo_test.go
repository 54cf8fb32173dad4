package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

func newCriteriaRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("criteria_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := db.AutoMigrate(&domain.Criterion{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestAppendCriterion_AssignsIncreasingPositions(t *testing.T) {
	db := newCriteriaRepoDB(t)
	ctx := context.Background()

	first, err := AppendCriterion(ctx, db, "Communication")
	if err != nil {
		t.Fatalf("AppendCriterion: %v", err)
	}
	second, err := AppendCriterion(ctx, db, "Empathy")
	if err != nil {
		t.Fatalf("AppendCriterion: %v", err)
	}
	if first.Position != 0 || second.Position != 1 {
		t.Fatalf("positions = %d %d", first.Position, second.Position)
	}
}

func TestAppendCriterion_DuplicateName(t *testing.T) {
	db := newCriteriaRepoDB(t)
	ctx := context.Background()
	if _, err := AppendCriterion(ctx, db, "Communication"); err != nil {
		t.Fatalf("AppendCriterion: %v", err)
	}
	_, err := AppendCriterion(ctx, db, "Communication")
	if err == nil || !IsDuplicate(err) {
		t.Fatalf("err = %v, want unique violation", err)
	}
}

func TestListCriteria_OrderedByPosition(t *testing.T) {
	db := newCriteriaRepoDB(t)
	ctx := context.Background()
	for _, n := range []string{"B", "A", "C"} {
		if _, err := AppendCriterion(ctx, db, n); err != nil {
			t.Fatalf("AppendCriterion: %v", err)
		}
	}
	names, err := CriteriaNames(ctx, db)
	if err != nil {
		t.Fatalf("CriteriaNames: %v", err)
	}
	if len(names) != 3 || names[0] != "B" || names[1] != "A" || names[2] != "C" {
		t.Fatalf("names = %v", names)
	}
}

func TestDeleteCriterion_KeepsRelativeOrder(t *testing.T) {
	db := newCriteriaRepoDB(t)
	ctx := context.Background()
	var ids []string
	for _, n := range []string{"A", "B", "C"} {
		c, err := AppendCriterion(ctx, db, n)
		if err != nil {
			t.Fatalf("AppendCriterion: %v", err)
		}
		ids = append(ids, c.ID)
	}
	if err := DeleteCriterion(ctx, db, ids[1]); err != nil {
		t.Fatalf("DeleteCriterion: %v", err)
	}
	names, err := CriteriaNames(ctx, db)
	if err != nil {
		t.Fatalf("CriteriaNames: %v", err)
	}
	if len(names) != 2 || names[0] != "A" || names[1] != "C" {
		t.Fatalf("names = %v", names)
	}
	// Appending after a removal still lands at the end.
	d, err := AppendCriterion(ctx, db, "D")
	if err != nil {
		t.Fatalf("AppendCriterion: %v", err)
	}
	if d.Position != 3 {
		t.Fatalf("position = %d, want 3", d.Position)
	}
}

func TestDeleteCriterion_MissingRow(t *testing.T) {
	db := newCriteriaRepoDB(t)
	if err := DeleteCriterion(context.Background(), db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
