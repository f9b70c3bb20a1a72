package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

var now = time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC)

func TestSeedAll(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	res, err := SeedAll(ctx, st, now, zap.NewNop())
	if err != nil {
		t.Fatalf("SeedAll() error = %v", err)
	}
	if res != (Result{Clients: 3, Services: 3, Products: 3, Appointments: 5}) {
		t.Errorf("Result = %+v", res)
	}

	snap, err := stats.LoadSnapshot(ctx, st)
	if err != nil {
		t.Fatal(err)
	}
	dash := stats.Dashboard(snap, now, stats.PriceLive)
	if dash.AppointmentsToday != 2 {
		t.Errorf("AppointmentsToday = %d, want 2", dash.AppointmentsToday)
	}
	if dash.MonthlyRevenue.String() != "35" {
		t.Errorf("MonthlyRevenue = %s, want 35", dash.MonthlyRevenue)
	}
	if n := len(stats.LowStock(snap.Products)); n != 2 {
		t.Errorf("LowStock = %d, want 2", n)
	}
}

type brokenProducts struct {
	store.Products
}

func (brokenProducts) Create(context.Context, models.Product) (models.Product, error) {
	return models.Product{}, &store.TransportError{Op: "create products", Err: errors.New("down")}
}

func TestSeedAll_StopsWithoutRollback(t *testing.T) {
	st := store.NewMemory()
	st.Products = brokenProducts{st.Products}
	ctx := context.Background()

	res, err := SeedAll(ctx, st, now, zap.NewNop())
	if !store.IsTransport(err) {
		t.Fatalf("SeedAll() error = %v, want transport error", err)
	}
	if res.Clients != 3 || res.Services != 3 || res.Products != 0 || res.Appointments != 0 {
		t.Errorf("Result = %+v", res)
	}

	clients, _ := st.Clients.List(ctx)
	if len(clients) != 3 {
		t.Errorf("clients left in store = %d, want 3", len(clients))
	}
}
