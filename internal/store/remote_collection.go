package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// restCollection talks to GET/POST {base}/{ns} and GET/PUT/DELETE
// {base}/{ns}/{id}. Ids and timestamps are assigned by the remote side.
type restCollection[T any, P Patch[T]] struct {
	client *http.Client
	base   string
	ns     string
}

func newRESTCollection[T any, P Patch[T]](client *http.Client, base, ns string) *restCollection[T, P] {
	return &restCollection[T, P]{client: client, base: strings.TrimRight(base, "/"), ns: ns}
}

func (c *restCollection[T, P]) url(id string) string {
	if id == "" {
		return c.base + "/" + c.ns
	}
	return c.base + "/" + c.ns + "/" + url.PathEscape(id)
}

func (c *restCollection[T, P]) do(ctx context.Context, method, target string, body any, out any) error {
	op := method + " " + target

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s: %w", op, err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return fmt.Errorf("build %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("%s", http.StatusText(resp.StatusCode))}
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	// Accept both {"data": ...} and a bare payload.
	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && len(env.Data) > 0 {
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

func (c *restCollection[T, P]) List(ctx context.Context) ([]T, error) {
	recs := []T{}
	if err := c.do(ctx, http.MethodGet, c.url(""), nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *restCollection[T, P]) Get(ctx context.Context, id string) (T, error) {
	var rec T
	if err := c.do(ctx, http.MethodGet, c.url(id), nil, &rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (c *restCollection[T, P]) Create(ctx context.Context, rec T) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPost, c.url(""), rec, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *restCollection[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var out T
	if err := c.do(ctx, http.MethodPut, c.url(id), patch, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (c *restCollection[T, P]) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.url(id), nil, nil)
}

// NewRemote builds a Store backed by a REST API rooted at baseURL
// (for example "https://host/api").
func NewRemote(baseURL string, timeout time.Duration) *Store {
	client := &http.Client{Timeout: timeout}

	return &Store{
		Clients:      newRESTCollection[models.Client, models.ClientPatch](client, baseURL, NamespaceClients),
		Services:     newRESTCollection[models.Service, models.ServicePatch](client, baseURL, NamespaceServices),
		Products:     newRESTCollection[models.Product, models.ProductPatch](client, baseURL, NamespaceProducts),
		Appointments: newRESTCollection[models.Appointment, models.AppointmentPatch](client, baseURL, NamespaceAppointments),
	}
}
