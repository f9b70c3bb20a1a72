package jobs

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/report"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

type memArchiver struct {
	name string
	body []byte
}

func (m *memArchiver) Archive(_ context.Context, name string, body []byte) (string, error) {
	m.name, m.body = name, body
	return "closing/" + name, nil
}

func TestScanLowStock(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()
	_, _ = st.Products.Create(ctx, models.Product{Name: "Esmalte", Quantity: 1, MinimumStock: 3})
	_, _ = st.Products.Create(ctx, models.Product{Name: "Shampoo", Quantity: 10, MinimumStock: 3})

	core, logs := observer.New(zap.WarnLevel)
	s := New(st, report.NewBuilder("Estética", stats.PriceLive), nil, time.UTC, zap.New(core))

	low, err := s.ScanLowStock(ctx)
	if err != nil {
		t.Fatalf("ScanLowStock() error = %v", err)
	}
	if len(low) != 1 || low[0].Name != "Esmalte" {
		t.Errorf("low = %+v", low)
	}
	if logs.FilterMessage("product needs restock").Len() != 1 {
		t.Errorf("warnings = %d, want 1", logs.Len())
	}
}

func TestArchiveClosing(t *testing.T) {
	st := store.NewMemory()
	arch := &memArchiver{}
	s := New(st, report.NewBuilder("Estética", stats.PriceLive), arch, time.UTC, zap.NewNop())

	now := time.Date(2026, time.October, 31, 23, 55, 0, 0, time.UTC)
	key, err := s.ArchiveClosing(context.Background(), now)
	if err != nil {
		t.Fatalf("ArchiveClosing() error = %v", err)
	}
	if key != "closing/Relatorio_Geral_2026-10-31.xlsx" {
		t.Errorf("key = %q", key)
	}

	f, err := excelize.OpenReader(bytes.NewReader(arch.body))
	if err != nil {
		t.Fatalf("archived body is not a workbook: %v", err)
	}
	defer f.Close()
	if f.GetSheetList()[0] != "Fechamento" {
		t.Errorf("first sheet = %q", f.GetSheetList()[0])
	}
}

func TestArchiveClosing_WithoutArchiver(t *testing.T) {
	s := New(store.NewMemory(), report.NewBuilder("Estética", stats.PriceLive), nil, time.UTC, zap.NewNop())

	key, err := s.ArchiveClosing(context.Background(), time.Now())
	if err != nil || key != "" {
		t.Errorf("ArchiveClosing() = %q, %v", key, err)
	}
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2026-10-31", true},
		{"2026-10-30", false},
		{"2028-02-28", false},
		{"2028-02-29", true},
		{"2026-12-31", true},
	}
	for _, tt := range tests {
		d, _ := time.Parse("2006-01-02", tt.date)
		if got := LastDayOfMonth(d); got != tt.want {
			t.Errorf("LastDayOfMonth(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestStart_RejectsBadSpec(t *testing.T) {
	s := New(store.NewMemory(), report.NewBuilder("Estética", stats.PriceLive), nil, time.UTC, zap.NewNop())
	if err := s.Start("not a cron", ""); err == nil {
		t.Error("Start() accepted an invalid spec")
	}
}
