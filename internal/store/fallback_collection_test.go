package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestWithFallback_TransportFailureUsesFallback(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(down.Close)

	core, logs := observer.New(zap.WarnLevel)
	local := NewMemory()
	s := WithFallback(NewRemote(down.URL, time.Second), local, zap.New(core))
	ctx := context.Background()

	created, err := s.Clients.Create(ctx, models.Client{Name: "Jane"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list, err := local.Clients.List(ctx)
	if err != nil || len(list) != 1 || list[0].ID != created.ID {
		t.Errorf("fallback store = %+v, %v", list, err)
	}

	if logs.Len() == 0 {
		t.Error("no warning logged for degraded call")
	}
}

func TestWithFallback_NotFoundIsNotRetried(t *testing.T) {
	primary := NewMemory()
	local := NewMemory()
	ctx := context.Background()

	c, _ := local.Clients.Create(ctx, models.Client{Name: "only-local"})

	s := WithFallback(primary, local, nil)

	if _, err := s.Clients.Get(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound from primary", err)
	}
}
