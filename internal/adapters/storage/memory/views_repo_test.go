package memory

import (
	"context"
	"errors"
	"testing"

	"dog-breeds-dashboard/internal/domain/dashboard"
)

func TestViewRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewViewRepo()

	v := dashboard.View{ID: "v1", Group: "All", Status: dashboard.StatusLoading}
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, v); !errors.Is(err, ErrViewExists) {
		t.Fatalf("expected ErrViewExists, got %v", err)
	}

	v.Status = dashboard.StatusReady
	v.Generation = 1
	if err := repo.Update(ctx, v); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, "v1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != dashboard.StatusReady || got.Generation != 1 {
		t.Fatalf("unexpected view: %+v", got)
	}

	if err := repo.Delete(ctx, "v1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "v1"); !errors.Is(err, dashboard.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestViewRepo_Errors(t *testing.T) {
	ctx := context.Background()
	repo := NewViewRepo()

	if err := repo.Create(ctx, dashboard.View{ID: " "}); !errors.Is(err, ErrViewIDRequired) {
		t.Fatalf("expected ErrViewIDRequired, got %v", err)
	}
	if err := repo.Update(ctx, dashboard.View{ID: "nope"}); !errors.Is(err, dashboard.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete(ctx, "nope"); !errors.Is(err, dashboard.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
