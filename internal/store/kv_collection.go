package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// kvCollection keeps a whole collection as one JSON array under key and
// rewrites it on every change. Last write wins.
type kvCollection[T any, PT interface {
	*T
	models.Identified
}, P Patch[T]] struct {
	kv  KV
	key string
	mu  sync.Mutex
}

func newKVCollection[T any, PT interface {
	*T
	models.Identified
}, P Patch[T]](kv KV, key string) *kvCollection[T, PT, P] {
	return &kvCollection[T, PT, P]{kv: kv, key: key}
}

func (c *kvCollection[T, PT, P]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var recs []T
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, &TransportError{Op: "GET " + c.key, Err: fmt.Errorf("decode: %w", err)}
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

func (c *kvCollection[T, PT, P]) save(ctx context.Context, recs []T) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.kv.Set(ctx, c.key, raw)
}

func (c *kvCollection[T, PT, P]) indexOf(recs []T, id string) int {
	for i := range recs {
		if idOf[T, PT](&recs[i]) == id {
			return i
		}
	}
	return -1
}

func (c *kvCollection[T, PT, P]) List(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

func (c *kvCollection[T, PT, P]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	recs, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	i := c.indexOf(recs, id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return recs[i], nil
}

func (c *kvCollection[T, PT, P]) Create(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	recs, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	stamp[T, PT](&rec)
	recs = append(recs, rec)

	if err := c.save(ctx, recs); err != nil {
		return zero, err
	}
	return rec, nil
}

func (c *kvCollection[T, PT, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	recs, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	i := c.indexOf(recs, id)
	if i < 0 {
		return zero, ErrNotFound
	}
	patch.Apply(&recs[i])

	if err := c.save(ctx, recs); err != nil {
		return zero, err
	}
	return recs[i], nil
}

func (c *kvCollection[T, PT, P]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	recs, err := c.load(ctx)
	if err != nil {
		return err
	}

	i := c.indexOf(recs, id)
	if i < 0 {
		return ErrNotFound
	}
	recs = append(recs[:i], recs[i+1:]...)

	return c.save(ctx, recs)
}

// NewKV builds a Store on a key-value backend. prefix namespaces the keys,
// e.g. "salon:" gives "salon:clients".
func NewKV(kv KV, prefix string) *Store {
	return &Store{
		Clients:      newKVCollection[models.Client, *models.Client, models.ClientPatch](kv, prefix+NamespaceClients),
		Services:     newKVCollection[models.Service, *models.Service, models.ServicePatch](kv, prefix+NamespaceServices),
		Products:     newKVCollection[models.Product, *models.Product, models.ProductPatch](kv, prefix+NamespaceProducts),
		Appointments: newKVCollection[models.Appointment, *models.Appointment, models.AppointmentPatch](kv, prefix+NamespaceAppointments),
	}
}

func NewMemory() *Store {
	return NewKV(NewMemoryKV(), "")
}
