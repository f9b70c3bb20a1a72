package appointment

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStatus moves ap to next. Every transition between valid statuses is
// allowed, including out of completed and canceled.
func SetStatus(ap *models.Appointment, next Status) error {
	if !next.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}

	ap.Status = string(next)
	return nil
}

// CurrentStatus reads the stored status, treating an empty value as the
// initial one.
func CurrentStatus(ap models.Appointment) Status {
	if ap.Status == "" {
		return InitialStatus()
	}
	if st, err := ParseStatus(ap.Status); err == nil {
		return st
	}
	return Status(ap.Status)
}

func IsCompleted(ap models.Appointment) bool {
	return CurrentStatus(ap) == StatusCompleted
}

func IsCanceled(ap models.Appointment) bool {
	return CurrentStatus(ap) == StatusCanceled
}
