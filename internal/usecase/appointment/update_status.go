package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

type UpdateAppointmentStatus struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	st *store.Store,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		store: st,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID string,
	status string,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.store.Appointments.Get(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	prev := domain.CurrentStatus(ap)

	if err := domain.SetStatus(&ap, next); err != nil {
		return nil, err
	}

	updated, err := uc.store.Appointments.Update(ctx, appointmentID, models.AppointmentPatch{
		Status: &ap.Status,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: updated.ID,
		Metadata: map[string]string{"from": string(prev), "to": string(next)},
	})

	return &updated, nil
}
