package agreement

import (
	"context"
	"errors"
	"testing"
)

func TestApplyOncePerEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	input := ApplyInput{
		UserName:    "Amina",
		UserEmail:   "user@example.com",
		ApartmentNo: "B-7",
		BlockName:   "B",
		FloorNo:     3,
		Rent:        1200,
	}

	agr, err := svc.Apply(ctx, input)
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if agr.Status != StatusPending {
		t.Fatalf("expected pending status, got %q", agr.Status)
	}

	if _, err := svc.Apply(ctx, input); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}

	// The duplicate attempt must not have inserted anything.
	all, err := svc.All(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one agreement, got %d", len(all))
	}
}

func TestByEmailNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if _, err := svc.ByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	agr, err := svc.Apply(ctx, ApplyInput{UserEmail: "user@example.com", ApartmentNo: "B-7", Rent: 1200})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if err := svc.SetStatus(ctx, agr.ID, StatusAccepted); err != nil {
		t.Fatalf("set status: %v", err)
	}

	stored, err := svc.ByEmail(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if stored.Status != StatusAccepted {
		t.Fatalf("expected accepted, got %q", stored.Status)
	}

	if err := svc.SetStatus(ctx, agr.ID, "approved-ish"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if err := svc.SetStatus(ctx, "no-such-id", StatusRejected); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
