package timezone

import (
	"testing"
	"time"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	if got := Location("Not/AZone"); got.String() != DefaultTimezone && got != time.UTC {
		t.Errorf("Location() = %s", got)
	}
	if got := Location("UTC"); got.String() != "UTC" {
		t.Errorf("Location(UTC) = %s", got)
	}
}

func TestSalonClock_UsesLocation(t *testing.T) {
	now := SalonClock("UTC")()
	if now.Location().String() != "UTC" {
		t.Errorf("location = %s, want UTC", now.Location())
	}
}

func TestFixed(t *testing.T) {
	at := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)
	if got := Fixed(at)(); !got.Equal(at) {
		t.Errorf("Fixed()() = %v, want %v", got, at)
	}
}
