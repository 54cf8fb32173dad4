package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/royalvending/go-coaching-backend/internal/domain"
)

func newUserRepoDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("user_repo_test_%d.db", time.Now().UnixNano()))
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
	if err := db.AutoMigrate(&domain.UserAccount{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func mkUser(t *testing.T, db *gorm.DB, email, name, role string) *domain.UserAccount {
	t.Helper()
	u := &domain.UserAccount{
		ID: uuid.NewString(), Email: email, DisplayName: name,
		PasswordHash: "x", Role: role,
	}
	if err := CreateUser(context.Background(), db, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return u
}

func TestCreateUser_DuplicateEmailRejected(t *testing.T) {
	db := newUserRepoDB(t)
	mkUser(t, db, "a@b.c", "A", domain.RoleAgent)
	err := CreateUser(context.Background(), db, &domain.UserAccount{
		ID: uuid.NewString(), Email: "a@b.c", DisplayName: "B",
		PasswordHash: "x", Role: domain.RoleAgent,
	})
	if err == nil || !IsDuplicate(err) {
		t.Fatalf("err = %v, want unique violation", err)
	}
}

func TestGetUserByEmail(t *testing.T) {
	db := newUserRepoDB(t)
	u := mkUser(t, db, "a@b.c", "A", domain.RoleEvaluator)

	got, err := GetUserByEmail(context.Background(), db, "a@b.c")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != u.ID || got.Role != domain.RoleEvaluator {
		t.Fatalf("got %+v", got)
	}
	if _, err := GetUserByEmail(context.Background(), db, "nobody@b.c"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListUsers_OrderedByDisplayName(t *testing.T) {
	db := newUserRepoDB(t)
	mkUser(t, db, "z@b.c", "Zoe", domain.RoleAgent)
	mkUser(t, db, "a@b.c", "Abel", domain.RoleAgent)

	got, err := ListUsers(context.Background(), db)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(got) != 2 || got[0].DisplayName != "Abel" {
		t.Fatalf("got %+v", got)
	}
}

func TestDeleteUser_RemovesRowForGood(t *testing.T) {
	db := newUserRepoDB(t)
	ctx := context.Background()
	u := mkUser(t, db, "a@b.c", "A", domain.RoleAgent)

	if err := DeleteUser(ctx, db, u.ID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if _, err := GetUser(ctx, db, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted user still visible: %v", err)
	}
	if err := DeleteUser(ctx, db, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete err = %v, want ErrNotFound", err)
	}

	// No tombstone: the id and the email must both be reusable.
	var count int64
	if err := db.Model(&domain.UserAccount{}).Where("id = ?", u.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("tombstone row left behind (count = %d)", count)
	}
	mkUser(t, db, "a@b.c", "A again", domain.RoleAgent)
}
