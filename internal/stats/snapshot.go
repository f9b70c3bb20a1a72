// Package stats derives the dashboard, report and closing numbers from the
// current contents of the store. Everything except LoadSnapshot is pure.
package stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

type Snapshot struct {
	Clients      []models.Client
	Services     []models.Service
	Products     []models.Product
	Appointments []models.Appointment

	// Failed holds the fetch error of each collection, nil when it loaded.
	Failed Failures
}

type Failures struct {
	Clients      error
	Services     error
	Products     error
	Appointments error
}

// Partial reports whether any collection failed to load.
func (s Snapshot) Partial() bool {
	f := s.Failed
	return f.Clients != nil || f.Services != nil || f.Products != nil || f.Appointments != nil
}

// LoadSnapshot fetches the four collections concurrently. A failed fetch
// leaves its slice empty; the rest of the snapshot is still returned along
// with the first error so callers can aggregate what they have.
func LoadSnapshot(ctx context.Context, s *store.Store) (Snapshot, error) {
	snap := Snapshot{
		Clients:      []models.Client{},
		Services:     []models.Service{},
		Products:     []models.Product{},
		Appointments: []models.Appointment{},
	}

	var g errgroup.Group

	g.Go(func() error {
		recs, err := s.Clients.List(ctx)
		if err != nil {
			snap.Failed.Clients = fmt.Errorf("list clients: %w", err)
			return snap.Failed.Clients
		}
		snap.Clients = recs
		return nil
	})
	g.Go(func() error {
		recs, err := s.Services.List(ctx)
		if err != nil {
			snap.Failed.Services = fmt.Errorf("list services: %w", err)
			return snap.Failed.Services
		}
		snap.Services = recs
		return nil
	})
	g.Go(func() error {
		recs, err := s.Products.List(ctx)
		if err != nil {
			snap.Failed.Products = fmt.Errorf("list products: %w", err)
			return snap.Failed.Products
		}
		snap.Products = recs
		return nil
	})
	g.Go(func() error {
		recs, err := s.Appointments.List(ctx)
		if err != nil {
			snap.Failed.Appointments = fmt.Errorf("list appointments: %w", err)
			return snap.Failed.Appointments
		}
		snap.Appointments = recs
		return nil
	})

	err := g.Wait()
	return snap, err
}

// LoadForAppointments is LoadSnapshot for views built around appointments.
// Only a failed appointments fetch is an error; missing clients or services
// render as placeholders and partial is set.
func LoadForAppointments(ctx context.Context, s *store.Store) (snap Snapshot, partial bool, err error) {
	snap, _ = LoadSnapshot(ctx, s)
	if snap.Failed.Appointments != nil {
		return snap, false, snap.Failed.Appointments
	}
	return snap, snap.Partial(), nil
}
