package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

// Result counts what was created, including when seeding stops early.
type Result struct {
	Clients      int `json:"clients"`
	Services     int `json:"services"`
	Products     int `json:"products"`
	Appointments int `json:"appointments"`
}

var exampleClients = []models.Client{
	{Name: "Maria Silva", Phone: "11987654321", Email: "maria@example.com", BirthDate: "1988-03-14"},
	{Name: "Ana Souza", Phone: "11976543210", Email: "ana@example.com"},
	{Name: "Juliana Costa", Phone: "11965432109", Notes: "Prefere horários pela manhã"},
}

var exampleServices = []models.Service{
	{Name: "Corte Feminino", Category: "Cabelo", DurationMinutes: 60, Price: decimal.NewFromInt(80), Active: true},
	{Name: "Manicure", Category: "Unhas", DurationMinutes: 40, Price: decimal.NewFromInt(35), Active: true},
	{Name: "Limpeza de Pele", Category: "Estética", DurationMinutes: 90, Price: decimal.NewFromInt(150), Active: true},
}

var exampleProducts = []models.Product{
	{Name: "Shampoo Profissional", Category: "Cabelo", Quantity: 12, MinimumStock: 5, Price: decimal.RequireFromString("45.90")},
	{Name: "Esmalte Vermelho", Category: "Unhas", Quantity: 2, MinimumStock: 5, Price: decimal.RequireFromString("12.50")},
	{Name: "Máscara Facial", Category: "Estética", Quantity: 0, MinimumStock: 3, Price: decimal.NewFromInt(60)},
}

// SeedAll creates the example data one record at a time. There is no
// rollback: on failure the records created so far stay in the store.
func SeedAll(ctx context.Context, st *store.Store, now time.Time, logger *zap.Logger) (Result, error) {
	var res Result

	clients := make([]models.Client, 0, len(exampleClients))
	for _, c := range exampleClients {
		created, err := st.Clients.Create(ctx, c)
		if err != nil {
			return res, fmt.Errorf("seed client %q: %w", c.Name, err)
		}
		clients = append(clients, created)
		res.Clients++
	}

	services := make([]models.Service, 0, len(exampleServices))
	for _, s := range exampleServices {
		created, err := st.Services.Create(ctx, s)
		if err != nil {
			return res, fmt.Errorf("seed service %q: %w", s.Name, err)
		}
		services = append(services, created)
		res.Services++
	}

	for _, p := range exampleProducts {
		if _, err := st.Products.Create(ctx, p); err != nil {
			return res, fmt.Errorf("seed product %q: %w", p.Name, err)
		}
		res.Products++
	}

	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(appointment.DateLayout)
	}
	appts := []models.Appointment{
		{ClientID: clients[0].ID, ServiceID: services[0].ID, Date: day(0), Time: "10:00", Status: string(appointment.StatusConfirmed)},
		{ClientID: clients[1].ID, ServiceID: services[1].ID, Date: day(0), Time: "14:30", Status: string(appointment.StatusScheduled)},
		{ClientID: clients[2].ID, ServiceID: services[2].ID, Date: day(1), Time: "09:00", Status: string(appointment.StatusScheduled)},
		{ClientID: clients[0].ID, ServiceID: services[1].ID, Date: day(-1), Time: "16:00", Status: string(appointment.StatusCompleted)},
		{ClientID: clients[1].ID, ServiceID: services[0].ID, Date: day(-2), Time: "11:00", Status: string(appointment.StatusCanceled)},
	}
	for _, ap := range appts {
		for _, s := range services {
			if s.ID == ap.ServiceID {
				ap.BookedPrice = s.Price
			}
		}
		if _, err := st.Appointments.Create(ctx, ap); err != nil {
			return res, fmt.Errorf("seed appointment %s %s: %w", ap.Date, ap.Time, err)
		}
		res.Appointments++
	}

	logger.Info("seeded example data",
		zap.Int("clients", res.Clients),
		zap.Int("services", res.Services),
		zap.Int("products", res.Products),
		zap.Int("appointments", res.Appointments),
	)
	return res, nil
}
