package appointment

import (
	"testing"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"scheduled", StatusScheduled, false},
		{"agendado", StatusScheduled, false},
		{" Confirmed ", StatusConfirmed, false},
		{"confirmado", StatusConfirmed, false},
		{"completed", StatusCompleted, false},
		{"concluido", StatusCompleted, false},
		{"canceled", StatusCanceled, false},
		{"cancelled", StatusCanceled, false},
		{"cancelado", StatusCanceled, false},
		{"", "", true},
		{"no-show", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !httperr.IsBusiness(err, "invalid_status") {
				t.Errorf("error = %v, want invalid_status", err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusScheduled {
		t.Errorf("InitialStatus() = %q, want %q", InitialStatus(), StatusScheduled)
	}
}

func TestSetStatus_AnyToAny(t *testing.T) {
	all := []Status{StatusScheduled, StatusConfirmed, StatusCompleted, StatusCanceled}

	for _, from := range all {
		for _, to := range all {
			ap := models.Appointment{Status: string(from)}
			if err := SetStatus(&ap, to); err != nil {
				t.Errorf("SetStatus(%s -> %s) error = %v", from, to, err)
			}
			if ap.Status != string(to) {
				t.Errorf("SetStatus(%s -> %s) left status %q", from, to, ap.Status)
			}
		}
	}
}

func TestSetStatus_RejectsUnknown(t *testing.T) {
	ap := models.Appointment{Status: string(StatusConfirmed)}

	err := SetStatus(&ap, Status("lost"))
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("SetStatus() error = %v, want invalid_status", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Errorf("status changed to %q on rejected transition", ap.Status)
	}
}

func TestCurrentStatus(t *testing.T) {
	if got := CurrentStatus(models.Appointment{}); got != StatusScheduled {
		t.Errorf("empty status = %q, want scheduled", got)
	}
	if !IsCompleted(models.Appointment{Status: "concluido"}) {
		t.Error("legacy concluido not treated as completed")
	}
	if !IsCanceled(models.Appointment{Status: "canceled"}) {
		t.Error("canceled not detected")
	}
}

func TestStatus_TerminalAndLabel(t *testing.T) {
	if StatusScheduled.Terminal() || StatusConfirmed.Terminal() {
		t.Error("open statuses reported as terminal")
	}
	if !StatusCompleted.Terminal() || !StatusCanceled.Terminal() {
		t.Error("completed/canceled not reported as terminal")
	}
	if StatusCompleted.Label() != "Concluído" {
		t.Errorf("Label() = %q", StatusCompleted.Label())
	}
}

func TestValidateSlot(t *testing.T) {
	tests := []struct {
		date, clock string
		wantDate    string
		wantTime    string
		wantCode    string
	}{
		{"2026-10-16", "09:30", "2026-10-16", "09:30", ""},
		{"2026-10-16", "09:30:00", "2026-10-16", "09:30", ""},
		{"16/10/2026", "09:30", "", "", "invalid_date"},
		{"2026-02-30", "09:30", "", "", "invalid_date"},
		{"2026-10-16", "25:00", "", "", "invalid_time"},
	}

	for _, tt := range tests {
		d, c, err := ValidateSlot(tt.date, tt.clock)
		if tt.wantCode != "" {
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("ValidateSlot(%q, %q) error = %v, want %s", tt.date, tt.clock, err, tt.wantCode)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateSlot(%q, %q) error = %v", tt.date, tt.clock, err)
			continue
		}
		if d != tt.wantDate || c != tt.wantTime {
			t.Errorf("ValidateSlot(%q, %q) = %s %s", tt.date, tt.clock, d, c)
		}
	}
}
