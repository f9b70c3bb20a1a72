package appointment

import (
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

var aliases = map[string]Status{
	"scheduled":  StatusScheduled,
	"agendado":   StatusScheduled,
	"confirmed":  StatusConfirmed,
	"confirmado": StatusConfirmed,
	"completed":  StatusCompleted,
	"concluido":  StatusCompleted,
	"concluído":  StatusCompleted,
	"canceled":   StatusCanceled,
	"cancelled":  StatusCanceled,
	"cancelado":  StatusCanceled,
}

var labels = map[Status]string{
	StatusScheduled: "Agendado",
	StatusConfirmed: "Confirmado",
	StatusCompleted: "Concluído",
	StatusCanceled:  "Cancelado",
}

// ParseStatus accepts the English values and the legacy Portuguese labels.
func ParseStatus(s string) (Status, error) {
	if st, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func (s Status) Valid() bool {
	_, ok := labels[s]
	return ok
}

func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// InitialStatus is the status every new appointment starts in.
func InitialStatus() Status {
	return StatusScheduled
}

// Terminal reports whether the status is meant as an end state. Nothing
// stops a terminal appointment from moving again.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}
