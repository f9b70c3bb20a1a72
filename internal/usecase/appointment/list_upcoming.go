package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

const DefaultUpcomingLimit = 5

type ListUpcoming struct {
	store *store.Store
	mode  stats.PriceMode
}

func NewListUpcoming(
	st *store.Store,
	mode stats.PriceMode,
) *ListUpcoming {
	return &ListUpcoming{
		store: st,
		mode:  mode,
	}
}

// Execute returns the next open appointments from today on. Completed and
// canceled ones are skipped; earlier times today are still included.
func (uc *ListUpcoming) Execute(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]dto.AppointmentView, bool, error) {

	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	today := now.Format(domain.DateLayout)

	snap, partial, err := stats.LoadForAppointments(ctx, uc.store)
	if err != nil {
		return nil, false, err
	}

	open := []models.Appointment{}
	for _, ap := range snap.Appointments {
		if ap.Date < today || domain.CurrentStatus(ap).Terminal() {
			continue
		}
		open = append(open, ap)
	}
	sortBySlot(open)

	if len(open) > limit {
		open = open[:limit]
	}

	return dto.NewAppointmentViews(open, stats.NewResolver(snap, uc.mode)), partial, nil
}
