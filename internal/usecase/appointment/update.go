package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

type UpdateAppointment struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	st *store.Store,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		store: st,
		audit: audit,
	}
}

// Execute applies an edit. Changed references must resolve, the slot is
// re-validated when date or time change, and a status goes through the
// same parsing as a status update.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	patch models.AppointmentPatch,
) (*models.Appointment, error) {

	current, err := uc.store.Appointments.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if patch.ClientID != nil {
		if _, err := uc.store.Clients.Get(ctx, *patch.ClientID); err != nil {
			return nil, missing(err, "client_not_found")
		}
	}
	if patch.ServiceID != nil {
		if _, err := uc.store.Services.Get(ctx, *patch.ServiceID); err != nil {
			return nil, missing(err, "service_not_found")
		}
	}

	if patch.Date != nil || patch.Time != nil {
		date, clock := current.Date, current.Time
		if patch.Date != nil {
			date = *patch.Date
		}
		if patch.Time != nil {
			clock = *patch.Time
		}

		date, clock, err = domain.ValidateSlot(date, clock)
		if err != nil {
			return nil, err
		}
		patch.Date, patch.Time = &date, &clock
	}

	if patch.Status != nil {
		st, err := domain.ParseStatus(*patch.Status)
		if err != nil {
			return nil, err
		}
		s := string(st)
		patch.Status = &s
	}

	updated, err := uc.store.Appointments.Update(ctx, appointmentID, patch)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: updated.ID,
	})

	return &updated, nil
}
