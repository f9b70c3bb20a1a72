package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// fallbackCollection sends every call to primary and repeats it on fallback
// only when primary fails with a TransportError. NotFound and validation
// errors from primary are returned as they are. Nothing is reconciled when
// primary comes back.
type fallbackCollection[T any, P Patch[T]] struct {
	primary  Collection[T, P]
	fallback Collection[T, P]
	name     string
	log      *zap.Logger
}

func (c *fallbackCollection[T, P]) degrade(op string, err error) bool {
	if !IsTransport(err) {
		return false
	}
	c.log.Warn("primary store unavailable, using fallback",
		zap.String("collection", c.name),
		zap.String("op", op),
		zap.Error(err),
	)
	return true
}

func (c *fallbackCollection[T, P]) List(ctx context.Context) ([]T, error) {
	recs, err := c.primary.List(ctx)
	if err != nil && c.degrade("list", err) {
		return c.fallback.List(ctx)
	}
	return recs, err
}

func (c *fallbackCollection[T, P]) Get(ctx context.Context, id string) (T, error) {
	rec, err := c.primary.Get(ctx, id)
	if err != nil && c.degrade("get", err) {
		return c.fallback.Get(ctx, id)
	}
	return rec, err
}

func (c *fallbackCollection[T, P]) Create(ctx context.Context, rec T) (T, error) {
	out, err := c.primary.Create(ctx, rec)
	if err != nil && c.degrade("create", err) {
		return c.fallback.Create(ctx, rec)
	}
	return out, err
}

func (c *fallbackCollection[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	out, err := c.primary.Update(ctx, id, patch)
	if err != nil && c.degrade("update", err) {
		return c.fallback.Update(ctx, id, patch)
	}
	return out, err
}

func (c *fallbackCollection[T, P]) Delete(ctx context.Context, id string) error {
	err := c.primary.Delete(ctx, id)
	if err != nil && c.degrade("delete", err) {
		return c.fallback.Delete(ctx, id)
	}
	return err
}

func withFallback[T any, P Patch[T]](primary, fallback Collection[T, P], name string, log *zap.Logger) Collection[T, P] {
	return &fallbackCollection[T, P]{primary: primary, fallback: fallback, name: name, log: log}
}

// WithFallback wraps primary so transport failures are served by fallback.
func WithFallback(primary, fallback *Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		Clients:      withFallback[models.Client, models.ClientPatch](primary.Clients, fallback.Clients, NamespaceClients, log),
		Services:     withFallback[models.Service, models.ServicePatch](primary.Services, fallback.Services, NamespaceServices, log),
		Products:     withFallback[models.Product, models.ProductPatch](primary.Products, fallback.Products, NamespaceProducts, log),
		Appointments: withFallback[models.Appointment, models.AppointmentPatch](primary.Appointments, fallback.Appointments, NamespaceAppointments, log),
	}
}
