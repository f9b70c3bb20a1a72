package stats

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Placeholders rendered for references that no longer resolve.
const (
	MissingClient  = "Cliente não encontrado"
	MissingService = "Serviço não encontrado"
)

// PriceMode decides which price a completed appointment contributes.
type PriceMode string

const (
	// PriceLive follows the service reference to its current price, so a
	// price change restates past revenue.
	PriceLive PriceMode = "live"
	// PriceBooked uses the price captured when the appointment was created,
	// falling back to the live price when nothing was captured.
	PriceBooked PriceMode = "booked"
)

// Resolver looks up the clients and services an appointment points to.
type Resolver struct {
	clients  map[string]models.Client
	services map[string]models.Service
	mode     PriceMode
}

func NewResolver(snap Snapshot, mode PriceMode) *Resolver {
	r := &Resolver{
		clients:  make(map[string]models.Client, len(snap.Clients)),
		services: make(map[string]models.Service, len(snap.Services)),
		mode:     mode,
	}
	for _, c := range snap.Clients {
		r.clients[c.ID] = c
	}
	for _, s := range snap.Services {
		r.services[s.ID] = s
	}
	return r
}

func (r *Resolver) Client(id string) (models.Client, bool) {
	c, ok := r.clients[id]
	return c, ok
}

func (r *Resolver) Service(id string) (models.Service, bool) {
	s, ok := r.services[id]
	return s, ok
}

func (r *Resolver) ClientName(id string) string {
	if c, ok := r.clients[id]; ok {
		return c.Name
	}
	return MissingClient
}

func (r *Resolver) ServiceName(id string) string {
	if s, ok := r.services[id]; ok {
		return s.Name
	}
	return MissingService
}

// Price is what ap is worth under the resolver's mode. A dangling service
// is worth zero in live mode.
func (r *Resolver) Price(ap models.Appointment) decimal.Decimal {
	if r.mode == PriceBooked && !ap.BookedPrice.IsZero() {
		return ap.BookedPrice
	}
	if s, ok := r.services[ap.ServiceID]; ok {
		return s.Price
	}
	return decimal.Zero
}
