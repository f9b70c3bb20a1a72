package models

import "github.com/shopspring/decimal"

// Appointment references its client and service by id only. Either may be
// deleted later; readers must treat the reference as possibly dangling.
type Appointment struct {
	Base

	ClientID  string `gorm:"size:36;index" json:"client_id"`
	ServiceID string `gorm:"size:36;index" json:"service_id"`

	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Observations string `gorm:"size:255" json:"observations"`

	BookedPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"booked_price"`
}

type AppointmentPatch struct {
	ClientID     *string `json:"client_id,omitempty"`
	ServiceID    *string `json:"service_id,omitempty"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	Status       *string `json:"status,omitempty"`
	Observations *string `json:"observations,omitempty"`
}

func (p AppointmentPatch) Apply(a *Appointment) {
	if p.ClientID != nil {
		a.ClientID = *p.ClientID
	}
	if p.ServiceID != nil {
		a.ServiceID = *p.ServiceID
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Observations != nil {
		a.Observations = *p.Observations
	}
}
