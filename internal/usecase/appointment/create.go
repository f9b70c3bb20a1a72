package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  string
	ServiceID string

	Date string
	Time string

	Observations string

	// Status is optional; empty means the initial status.
	Status string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	st *store.Store,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		store: st,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora
	// --------------------------------------------------
	date, clock, err := domain.ValidateSlot(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		if status, err = domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2️⃣ Cliente e serviço precisam existir agora
	// --------------------------------------------------
	if _, err := uc.store.Clients.Get(ctx, in.ClientID); err != nil {
		return nil, missing(err, "client_not_found")
	}

	service, err := uc.store.Services.Get(ctx, in.ServiceID)
	if err != nil {
		return nil, missing(err, "service_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Criação (status inicial + preço do momento)
	// --------------------------------------------------
	ap, err := uc.store.Appointments.Create(ctx, models.Appointment{
		ClientID:     in.ClientID,
		ServiceID:    in.ServiceID,
		Date:         date,
		Time:         clock,
		Status:       string(status),
		Observations: in.Observations,
		BookedPrice:  service.Price,
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"date": ap.Date, "time": ap.Time},
	})

	return &ap, nil
}

// missing turns a NotFound from a referenced collection into a business
// error; anything else is returned unchanged.
func missing(err error, code string) error {
	if errors.Is(err, store.ErrNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
