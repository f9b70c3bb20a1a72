package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

type BuildCalendar struct {
	store *store.Store
	mode  stats.PriceMode
}

func NewBuildCalendar(
	st *store.Store,
	mode stats.PriceMode,
) *BuildCalendar {
	return &BuildCalendar{
		store: st,
		mode:  mode,
	}
}

// Execute builds the month grid. partial is set when clients or services
// could not be loaded and names show as placeholders.
func (uc *BuildCalendar) Execute(
	ctx context.Context,
	year int,
	month int,
	now time.Time,
) (calendar.Grid[dto.AppointmentView], bool, error) {

	if month < 1 || month > 12 {
		return calendar.Grid[dto.AppointmentView]{}, false, httperr.ErrBusiness("invalid_month")
	}

	snap, partial, err := stats.LoadForAppointments(ctx, uc.store)
	if err != nil {
		return calendar.Grid[dto.AppointmentView]{}, false, err
	}

	sortBySlot(snap.Appointments)
	views := dto.NewAppointmentViews(snap.Appointments, stats.NewResolver(snap, uc.mode))

	return calendar.BuildGrid(
		calendar.Cursor{Year: year, Month: month},
		now,
		views,
		func(v dto.AppointmentView) string { return v.Date },
	), partial, nil
}
