package stats

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ClosingTopN is how many services the month closing ranks.
const ClosingTopN = 5

// ClosingStats is the month-end summary ("fechamento do mês").
type ClosingStats struct {
	Month string `json:"month"`

	Revenue        decimal.Decimal `json:"revenue"`
	CompletedCount int             `json:"completed_count"`
	AverageTicket  decimal.Decimal `json:"average_ticket"`

	TotalAppointments int     `json:"total_appointments"`
	CompletionRate    float64 `json:"completion_rate"`
	CanceledCount     int     `json:"canceled_count"`

	TopServices []ServiceCount `json:"top_services"`

	RegisteredClients int `json:"registered_clients"`
	ClientsServed     int `json:"clients_served"`
}

// Closing summarises the appointments dated in now's month. Clients are
// counted over the whole store.
func Closing(snap Snapshot, now time.Time, mode PriceMode) ClosingStats {
	r := NewResolver(snap, mode)

	out := ClosingStats{
		Month:             calendar.CursorFor(now).Title(),
		Revenue:           decimal.Zero,
		AverageTicket:     decimal.Zero,
		RegisteredClients: len(snap.Clients),
	}

	month := []models.Appointment{}
	served := map[string]struct{}{}

	for _, ap := range snap.Appointments {
		if !inMonth(ap.Date, now) {
			continue
		}
		month = append(month, ap)

		switch {
		case appointment.IsCompleted(ap):
			out.CompletedCount++
			out.Revenue = out.Revenue.Add(r.Price(ap))
			served[ap.ClientID] = struct{}{}
		case appointment.IsCanceled(ap):
			out.CanceledCount++
		}
	}

	out.TotalAppointments = len(month)
	out.ClientsServed = len(served)
	out.TopServices = topServices(r, month, ClosingTopN)

	if out.CompletedCount > 0 {
		out.AverageTicket = out.Revenue.Div(decimal.NewFromInt(int64(out.CompletedCount)))
	}
	if out.TotalAppointments > 0 {
		rate := float64(out.CompletedCount) / float64(out.TotalAppointments) * 100
		out.CompletionRate = math.Round(rate*10) / 10
	}

	return out
}
