// Package store holds the Entity Store: the four salon collections behind a
// swappable backend (key-value, postgres, or a remote REST API).
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var ErrNotFound = errors.New("record not found")

// TransportError is a failure of the backing mechanism itself: network,
// non-2xx response, driver error. It is never retried here.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Patch is a typed partial update for records of type T.
type Patch[T any] interface {
	Apply(*T)
}

type Collection[T any, P Patch[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) error
}

type (
	Clients      = Collection[models.Client, models.ClientPatch]
	Services     = Collection[models.Service, models.ServicePatch]
	Products     = Collection[models.Product, models.ProductPatch]
	Appointments = Collection[models.Appointment, models.AppointmentPatch]
)

type Store struct {
	Clients      Clients
	Services     Services
	Products     Products
	Appointments Appointments
}

// Namespaces used by key-value and REST backends, one per collection.
const (
	NamespaceClients      = "clients"
	NamespaceServices     = "services"
	NamespaceProducts     = "products"
	NamespaceAppointments = "appointments"
)

var nowFunc = time.Now

// stamp assigns the identity of a record being created.
func stamp[T any, PT interface {
	*T
	models.Identified
}](rec *T) {
	b := PT(rec).Identity()
	b.ID = uuid.NewString()
	b.CreatedAt = nowFunc().UTC()
}

func idOf[T any, PT interface {
	*T
	models.Identified
}](rec *T) string {
	return PT(rec).Identity().ID
}
