package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

var now = time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store   *store.Store
	client  models.Client
	service models.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory()

	client, err := st.Clients.Create(ctx, models.Client{Name: "Jane", Phone: "11999998888"})
	if err != nil {
		t.Fatal(err)
	}
	service, err := st.Services.Create(ctx, models.Service{Name: "Cut", Price: decimal.NewFromInt(50), Active: true})
	if err != nil {
		t.Fatal(err)
	}
	return fixture{store: st, client: client, service: service}
}

func (f fixture) book(t *testing.T, date, clock string) *models.Appointment {
	t.Helper()
	ap, err := NewCreateAppointment(f.store, nil).Execute(context.Background(), CreateAppointmentInput{
		ClientID:  f.client.ID,
		ServiceID: f.service.ID,
		Date:      date,
		Time:      clock,
	})
	if err != nil {
		t.Fatalf("book %s %s: %v", date, clock, err)
	}
	return ap
}

func ptr[T any](v T) *T { return &v }

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)

	sink := &countingSink{}
	d := audit.NewDispatcher(sink, nil)

	ap, err := NewCreateAppointment(f.store, d).Execute(context.Background(), CreateAppointmentInput{
		ClientID:     f.client.ID,
		ServiceID:    f.service.ID,
		Date:         "2026-10-16",
		Time:         "14:30:00",
		Observations: "primeira vez",
	})
	d.Close()

	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ap.ID == "" {
		t.Error("ID not assigned")
	}
	if ap.Status != "scheduled" {
		t.Errorf("Status = %q, want scheduled", ap.Status)
	}
	if ap.Time != "14:30" {
		t.Errorf("Time = %q, want 14:30", ap.Time)
	}
	if !ap.BookedPrice.Equal(decimal.NewFromInt(50)) {
		t.Errorf("BookedPrice = %s, want 50", ap.BookedPrice)
	}
	if sink.n != 1 {
		t.Errorf("audit events = %d, want 1", sink.n)
	}
}

func TestCreateAppointment_InitialStatusOverride(t *testing.T) {
	f := newFixture(t)

	ap, err := NewCreateAppointment(f.store, nil).Execute(context.Background(), CreateAppointmentInput{
		ClientID:  f.client.ID,
		ServiceID: f.service.ID,
		Date:      "2026-10-01",
		Time:      "09:00",
		Status:    "concluido",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if ap.Status != "completed" {
		t.Errorf("Status = %q, want completed", ap.Status)
	}
}

type countingSink struct{ n int }

func (s *countingSink) Log(context.Context, audit.Event) error {
	s.n++
	return nil
}

func TestCreateAppointment_Rejections(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		in   CreateAppointmentInput
		code string
	}{
		{"bad date", CreateAppointmentInput{ClientID: f.client.ID, ServiceID: f.service.ID, Date: "16/10/2026", Time: "10:00"}, "invalid_date"},
		{"bad time", CreateAppointmentInput{ClientID: f.client.ID, ServiceID: f.service.ID, Date: "2026-10-16", Time: "25:00"}, "invalid_time"},
		{"unknown client", CreateAppointmentInput{ClientID: "nope", ServiceID: f.service.ID, Date: "2026-10-16", Time: "10:00"}, "client_not_found"},
		{"unknown service", CreateAppointmentInput{ClientID: f.client.ID, ServiceID: "nope", Date: "2026-10-16", Time: "10:00"}, "service_not_found"},
		{"unknown status", CreateAppointmentInput{ClientID: f.client.ID, ServiceID: f.service.ID, Date: "2026-10-16", Time: "10:00", Status: "pending"}, "invalid_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreateAppointment(f.store, nil).Execute(context.Background(), tt.in)
			if !httperr.IsBusiness(err, tt.code) {
				t.Errorf("Execute() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestUpdateAppointmentStatus_AnyToAny(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "2026-10-16", "10:00")
	uc := NewUpdateAppointmentStatus(f.store, nil)
	ctx := context.Background()

	for _, s := range []string{"completed", "scheduled", "canceled", "confirmado", "concluido"} {
		if _, err := uc.Execute(ctx, ap.ID, s); err != nil {
			t.Fatalf("Execute(%q) error = %v", s, err)
		}
	}

	got, _ := f.store.Appointments.Get(ctx, ap.ID)
	if got.Status != "completed" {
		t.Errorf("Status = %q, want completed", got.Status)
	}
}

func TestUpdateAppointmentStatus_Errors(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "2026-10-16", "10:00")
	uc := NewUpdateAppointmentStatus(f.store, nil)

	if _, err := uc.Execute(context.Background(), ap.ID, "archived"); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("error = %v, want invalid_status", err)
	}
	if _, err := uc.Execute(context.Background(), "nope", "completed"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestUpdateAppointment_Reschedule(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "2026-10-16", "10:00")
	uc := NewUpdateAppointment(f.store, nil)
	ctx := context.Background()

	got, err := uc.Execute(ctx, ap.ID, models.AppointmentPatch{Time: ptr("11:15:00")})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.Date != "2026-10-16" || got.Time != "11:15" {
		t.Errorf("slot = %s %s, want 2026-10-16 11:15", got.Date, got.Time)
	}

	if _, err := uc.Execute(ctx, ap.ID, models.AppointmentPatch{ServiceID: ptr("gone")}); !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("error = %v, want service_not_found", err)
	}
	if _, err := uc.Execute(ctx, ap.ID, models.AppointmentPatch{Status: ptr("??")}); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("error = %v, want invalid_status", err)
	}

	got, err = uc.Execute(ctx, ap.ID, models.AppointmentPatch{Status: ptr("Cancelado")})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got.Status != "canceled" {
		t.Errorf("Status = %q, want canceled", got.Status)
	}
}

func TestListAppointmentsByMonth(t *testing.T) {
	f := newFixture(t)
	f.book(t, "2026-10-20", "09:00")
	f.book(t, "2026-10-03", "15:00")
	f.book(t, "2026-10-03", "08:30")
	f.book(t, "2026-11-01", "10:00")

	got, _, err := NewListAppointmentsByMonth(f.store, stats.PriceLive).Execute(context.Background(), 2026, 10)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := []string{"2026-10-03 08:30", "2026-10-03 15:00", "2026-10-20 09:00"}
	if len(got) != len(want) {
		t.Fatalf("got %d views, want %d", len(got), len(want))
	}
	for i, v := range got {
		if v.Date+" "+v.Time != want[i] {
			t.Errorf("[%d] = %s %s, want %s", i, v.Date, v.Time, want[i])
		}
		if v.ClientName != "Jane" || v.ServiceName != "Cut" {
			t.Errorf("[%d] names = %q/%q", i, v.ClientName, v.ServiceName)
		}
	}

	if _, _, err := NewListAppointmentsByMonth(f.store, stats.PriceLive).Execute(context.Background(), 2026, 13); !httperr.IsBusiness(err, "invalid_month") {
		t.Errorf("month 13 error = %v", err)
	}
}

func TestListUpcoming(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, "2026-10-15", "10:00") // past
	done := f.book(t, "2026-10-17", "10:00")
	f.book(t, "2026-10-18", "10:00")
	f.book(t, "2026-10-16", "08:00")

	_, _ = NewUpdateAppointmentStatus(f.store, nil).Execute(ctx, done.ID, "completed")

	got, _, err := NewListUpcoming(f.store, stats.PriceLive).Execute(ctx, now, 10)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(got) != 2 || got[0].Date != "2026-10-16" || got[1].Date != "2026-10-18" {
		t.Errorf("upcoming = %+v", got)
	}

	got, _, _ = NewListUpcoming(f.store, stats.PriceLive).Execute(ctx, now, 1)
	if len(got) != 1 {
		t.Errorf("limit 1 returned %d", len(got))
	}
}

func TestBuildCalendar_ResolvesDanglingReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, "2026-10-16", "10:00")

	if err := f.store.Clients.Delete(ctx, f.client.ID); err != nil {
		t.Fatal(err)
	}

	grid, _, err := NewBuildCalendar(f.store, stats.PriceLive).Execute(ctx, 2026, 10, now)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(grid.Cells) != 42 {
		t.Fatalf("cells = %d, want 42", len(grid.Cells))
	}

	found := 0
	for _, cell := range grid.Cells {
		for _, v := range cell.Appointments {
			found++
			if cell.Date != "2026-10-16" || !cell.IsToday {
				t.Errorf("appointment in cell %s (today=%v)", cell.Date, cell.IsToday)
			}
			if v.ClientName != stats.MissingClient {
				t.Errorf("ClientName = %q, want placeholder", v.ClientName)
			}
		}
	}
	if found != 1 {
		t.Errorf("appointments placed = %d, want 1", found)
	}
}

type failingProducts struct {
	store.Products
}

func (failingProducts) List(context.Context) ([]models.Product, error) {
	return nil, &store.TransportError{Op: "list products", Err: errors.New("down")}
}

type failingServices struct {
	store.Services
}

func (failingServices) List(context.Context) ([]models.Service, error) {
	return nil, &store.TransportError{Op: "list services", Err: errors.New("down")}
}

type failingAppointments struct {
	store.Appointments
}

func (failingAppointments) List(context.Context) ([]models.Appointment, error) {
	return nil, &store.TransportError{Op: "list appointments", Err: errors.New("down")}
}

func TestReadViews_SurviveOtherCollectionFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.book(t, "2026-10-16", "10:00")

	f.store.Products = failingProducts{f.store.Products}
	f.store.Services = failingServices{f.store.Services}

	grid, partial, err := NewBuildCalendar(f.store, stats.PriceLive).Execute(ctx, 2026, 10, now)
	if err != nil {
		t.Fatalf("calendar error = %v", err)
	}
	if !partial {
		t.Error("calendar partial = false, want true")
	}
	placed := 0
	for _, cell := range grid.Cells {
		for _, v := range cell.Appointments {
			placed++
			if v.ServiceName != stats.MissingService || v.ClientName != "Jane" {
				t.Errorf("names = %q/%q", v.ClientName, v.ServiceName)
			}
		}
	}
	if placed != 1 {
		t.Errorf("calendar appointments = %d, want 1", placed)
	}

	upcoming, partial, err := NewListUpcoming(f.store, stats.PriceLive).Execute(ctx, now, 5)
	if err != nil || !partial || len(upcoming) != 1 {
		t.Errorf("upcoming = %d, partial = %v, err = %v", len(upcoming), partial, err)
	}

	month, partial, err := NewListAppointmentsByMonth(f.store, stats.PriceLive).Execute(ctx, 2026, 10)
	if err != nil || !partial || len(month) != 1 {
		t.Errorf("month = %d, partial = %v, err = %v", len(month), partial, err)
	}
}

func TestReadViews_FailWithoutAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.Appointments = failingAppointments{f.store.Appointments}

	if _, _, err := NewBuildCalendar(f.store, stats.PriceLive).Execute(ctx, 2026, 10, now); !store.IsTransport(err) {
		t.Errorf("calendar error = %v, want transport error", err)
	}
	if _, _, err := NewListUpcoming(f.store, stats.PriceLive).Execute(ctx, now, 5); !store.IsTransport(err) {
		t.Errorf("upcoming error = %v, want transport error", err)
	}
	if _, _, err := NewListAppointmentsByMonth(f.store, stats.PriceLive).Execute(ctx, 2026, 10); !store.IsTransport(err) {
		t.Errorf("month error = %v, want transport error", err)
	}
}
