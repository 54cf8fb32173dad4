package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/repo"
)

// newSvcDB opens a fresh in-memory database migrated for every model.
func newSvcDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Member{}, &domain.UserAccount{}, &domain.Criterion{},
		&domain.Evaluation{}, &domain.CoachingLog{}, &domain.Idempotency{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seedCriteria installs the default criteria sequence.
func seedCriteria(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := repo.SeedCriteria(db); err != nil {
		t.Fatalf("seed criteria: %v", err)
	}
}

// seedMember inserts one live roster member.
func seedMember(t *testing.T, db *gorm.DB, name string) *domain.Member {
	t.Helper()
	m, err := repo.CreateMember(context.Background(), db, name)
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return m
}

var (
	adminActor = Actor{ID: "u-admin", Email: "boss@example.com", Role: domain.RoleAdmin, DisplayName: "Boss"}
	evalActor  = Actor{ID: "u-eval", Email: "eva@example.com", Role: domain.RoleEvaluator, DisplayName: "Eva Luator"}
	agentActor = Actor{ID: "u-agent", Email: "sam@example.com", Role: domain.RoleAgent, DisplayName: "Sam Agent"}
)

// fixedNow returns a clock pinned to the given instant.
func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
