package appointment

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

type ListAppointmentsByMonth struct {
	store *store.Store
	mode  stats.PriceMode
}

func NewListAppointmentsByMonth(
	st *store.Store,
	mode stats.PriceMode,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		store: st,
		mode:  mode,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.AppointmentView, bool, error) {

	if month < 1 || month > 12 {
		return nil, false, httperr.ErrBusiness("invalid_month")
	}
	cur := calendar.Cursor{Year: year, Month: month}

	snap, partial, err := stats.LoadForAppointments(ctx, uc.store)
	if err != nil {
		return nil, false, err
	}

	inMonth := []models.Appointment{}
	for _, ap := range snap.Appointments {
		if cur.Contains(ap.Date) {
			inMonth = append(inMonth, ap)
		}
	}
	sortBySlot(inMonth)

	return dto.NewAppointmentViews(inMonth, stats.NewResolver(snap, uc.mode)), partial, nil
}

// sortBySlot orders by date then time; both are fixed-width strings.
func sortBySlot(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		if appts[i].Date != appts[j].Date {
			return appts[i].Date < appts[j].Date
		}
		return appts[i].Time < appts[j].Time
	})
}
