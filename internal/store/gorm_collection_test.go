package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Runs only against a disposable database:
// TEST_DATABASE_URL=postgres://... go test ./internal/store/
func openTestGorm(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	gdb, err := db.NewDB(dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	t.Cleanup(func() {
		gdb.Exec("DELETE FROM appointments")
		gdb.Exec("DELETE FROM services")
	})
	return NewGorm(gdb)
}

func TestGorm_ServiceLifecycle(t *testing.T) {
	s := openTestGorm(t)
	ctx := context.Background()

	svc, err := s.Services.Create(ctx, models.Service{
		Name:            "Manicure",
		DurationMinutes: 40,
		Price:           decimal.RequireFromString("45.50"),
		Active:          false,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := s.Services.Get(ctx, svc.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Active {
		t.Error("Active = true, want false to survive insert")
	}
	if !got.Price.Equal(decimal.RequireFromString("45.50")) {
		t.Errorf("Price = %s, want 45.50", got.Price)
	}

	if _, err := s.Services.Update(ctx, svc.ID, models.ServicePatch{Active: ptr(true)}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := s.Services.Delete(ctx, svc.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Services.Delete(ctx, svc.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
