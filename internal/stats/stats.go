package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type DashboardStats struct {
	TotalClients      int             `json:"total_clients"`
	AppointmentsToday int             `json:"appointments_today"`
	MonthlyRevenue    decimal.Decimal `json:"monthly_revenue"`
	CompletedServices int             `json:"completed_services"`
}

type ReportStats struct {
	TotalClients          int `json:"total_clients"`
	CompletedAppointments int `json:"completed_appointments"`
	ActiveServices        int `json:"active_services"`
	TotalProducts         int `json:"total_products"`
}

type ServiceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func inMonth(date string, now time.Time) bool {
	return calendar.CursorFor(now).Contains(date)
}

// Dashboard computes the headline numbers. now is expected in the salon's
// timezone; dates are matched as strings.
func Dashboard(snap Snapshot, now time.Time, mode PriceMode) DashboardStats {
	r := NewResolver(snap, mode)
	today := now.Format(appointment.DateLayout)

	out := DashboardStats{
		TotalClients:   len(snap.Clients),
		MonthlyRevenue: decimal.Zero,
	}

	for _, ap := range snap.Appointments {
		if ap.Date == today {
			out.AppointmentsToday++
		}
		if !appointment.IsCompleted(ap) {
			continue
		}
		out.CompletedServices++
		if inMonth(ap.Date, now) {
			out.MonthlyRevenue = out.MonthlyRevenue.Add(r.Price(ap))
		}
	}

	return out
}

func Report(snap Snapshot) ReportStats {
	out := ReportStats{
		TotalClients:  len(snap.Clients),
		TotalProducts: len(snap.Products),
	}
	for _, ap := range snap.Appointments {
		if appointment.IsCompleted(ap) {
			out.CompletedAppointments++
		}
	}
	for _, s := range snap.Services {
		if s.Active {
			out.ActiveServices++
		}
	}
	return out
}

// TopServices ranks completed appointments by resolved service name. Ties
// keep the order in which names were first seen. n <= 0 returns every name.
func TopServices(snap Snapshot, n int) []ServiceCount {
	return topServices(NewResolver(snap, PriceLive), snap.Appointments, n)
}

func topServices(r *Resolver, appts []models.Appointment, n int) []ServiceCount {
	counts := []ServiceCount{}
	index := map[string]int{}

	for _, ap := range appts {
		if !appointment.IsCompleted(ap) {
			continue
		}
		name := r.ServiceName(ap.ServiceID)
		i, ok := index[name]
		if !ok {
			i = len(counts)
			index[name] = i
			counts = append(counts, ServiceCount{Name: name})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})

	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// LowStock lists products that are low or out of stock, in store order.
func LowStock(products []models.Product) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if inventory.NeedsRestock(p) {
			out = append(out, p)
		}
	}
	return out
}

// LifetimeStats covers every appointment ever booked.
type LifetimeStats struct {
	TotalAppointments int             `json:"total_appointments"`
	Completed         int             `json:"completed"`
	Revenue           decimal.Decimal `json:"revenue"`
	AverageTicket     decimal.Decimal `json:"average_ticket"`
}

func Lifetime(snap Snapshot, mode PriceMode) LifetimeStats {
	r := NewResolver(snap, mode)

	out := LifetimeStats{
		TotalAppointments: len(snap.Appointments),
		Revenue:           decimal.Zero,
		AverageTicket:     decimal.Zero,
	}
	for _, ap := range snap.Appointments {
		if appointment.IsCompleted(ap) {
			out.Completed++
			out.Revenue = out.Revenue.Add(r.Price(ap))
		}
	}
	if out.Completed > 0 {
		out.AverageTicket = out.Revenue.Div(decimal.NewFromInt(int64(out.Completed)))
	}
	return out
}
