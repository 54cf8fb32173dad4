package services

import (
	"context"
	"errors"
	"testing"
)

func TestCriteriaService_Append_RequiresAdmin(t *testing.T) {
	s := NewCriteriaService(newSvcDB(t))
	if _, err := s.Append(context.Background(), agentActor, "Empathy"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCriteriaService_Append_GoesToEndOfSequence(t *testing.T) {
	db := newSvcDB(t)
	seedCriteria(t, db)
	s := NewCriteriaService(db)
	ctx := context.Background()

	before, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	added, err := s.Append(ctx, adminActor, "Empathy")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	after, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("len = %d, want %d", len(after), len(before)+1)
	}
	if last := after[len(after)-1]; last.Name != "Empathy" || last.ID != added.ID {
		t.Fatalf("last = %+v", last)
	}
}

func TestCriteriaService_Append_Duplicate(t *testing.T) {
	db := newSvcDB(t)
	seedCriteria(t, db)
	s := NewCriteriaService(db)
	ctx := context.Background()
	if _, err := s.Append(ctx, adminActor, "Communication"); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
}

func TestCriteriaService_Remove(t *testing.T) {
	db := newSvcDB(t)
	seedCriteria(t, db)
	s := NewCriteriaService(db)
	ctx := context.Background()

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := s.Remove(ctx, adminActor, all[0].ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := s.Remove(ctx, adminActor, all[0].ID); !errors.Is(err, ErrCriterionNotFound) {
		t.Fatalf("err = %v, want ErrCriterionNotFound", err)
	}
	left, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(left) != len(all)-1 {
		t.Fatalf("len = %d, want %d", len(left), len(all)-1)
	}
}
