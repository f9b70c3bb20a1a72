package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
)

// AppointmentView is an appointment with its references resolved for
// display. Dangling references carry the placeholder names.
type AppointmentView struct {
	ID           string          `json:"id"`
	ClientID     string          `json:"client_id"`
	ClientName   string          `json:"client_name"`
	ServiceID    string          `json:"service_id"`
	ServiceName  string          `json:"service_name"`
	Date         string          `json:"date"`
	Time         string          `json:"time"`
	Status       string          `json:"status"`
	StatusLabel  string          `json:"status_label"`
	Price        decimal.Decimal `json:"price"`
	Observations string          `json:"observations"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewAppointmentView(ap models.Appointment, r *stats.Resolver) AppointmentView {
	st := appointment.CurrentStatus(ap)

	return AppointmentView{
		ID:           ap.ID,
		ClientID:     ap.ClientID,
		ClientName:   r.ClientName(ap.ClientID),
		ServiceID:    ap.ServiceID,
		ServiceName:  r.ServiceName(ap.ServiceID),
		Date:         ap.Date,
		Time:         ap.Time,
		Status:       string(st),
		StatusLabel:  st.Label(),
		Price:        r.Price(ap),
		Observations: ap.Observations,
		CreatedAt:    ap.CreatedAt,
	}
}

func NewAppointmentViews(appts []models.Appointment, r *stats.Resolver) []AppointmentView {
	out := make([]AppointmentView, 0, len(appts))
	for _, ap := range appts {
		out = append(out, NewAppointmentView(ap, r))
	}
	return out
}

// ProductView adds the derived stock status, which is never stored.
type ProductView struct {
	models.Product

	StockStatus inventory.StockStatus `json:"stock_status"`
	StockLabel  string                `json:"stock_label"`
}

func NewProductView(p models.Product) ProductView {
	st := inventory.Of(p)
	return ProductView{Product: p, StockStatus: st, StockLabel: st.Label()}
}

func NewProductViews(products []models.Product) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductView(p))
	}
	return out
}
