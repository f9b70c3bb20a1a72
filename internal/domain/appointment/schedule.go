package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ValidateSlot checks the date and time-of-day strings of a booking and
// returns them in canonical form. A trailing ":SS" on the time is dropped.
func ValidateSlot(date, clock string) (string, string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", "", httperr.ErrBusiness("invalid_date")
	}

	if len(clock) == len("15:04:05") {
		clock = clock[:5]
	}
	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return "", "", httperr.ErrBusiness("invalid_time")
	}

	return d.Format(DateLayout), t.Format(TimeLayout), nil
}
