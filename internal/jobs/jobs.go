package jobs

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/report"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

// Archiver stores a generated report and returns where it went.
type Archiver interface {
	Archive(ctx context.Context, name string, body []byte) (string, error)
}

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

const jobTimeout = 2 * time.Minute

type Scheduler struct {
	sched    *cron.Cron
	store    *store.Store
	builder  *report.Builder
	archiver Archiver
	loc      *time.Location
	log      *zap.Logger
}

// New builds the scheduler. archiver may be nil, in which case the month
// closing is only logged.
func New(st *store.Store, builder *report.Builder, archiver Archiver, loc *time.Location, log *zap.Logger) *Scheduler {
	return &Scheduler{
		sched:    cron.New(cron.WithLocation(loc), cron.WithParser(cronParser)),
		store:    st,
		builder:  builder,
		archiver: archiver,
		loc:      loc,
		log:      log.Named("jobs"),
	}
}

// Start registers both jobs and starts the cron loop. An empty spec
// disables that job.
func (s *Scheduler) Start(lowStockSpec, closingSpec string) error {
	if lowStockSpec != "" {
		if _, err := s.sched.AddFunc(lowStockSpec, s.run("low_stock", func(ctx context.Context) error {
			_, err := s.ScanLowStock(ctx)
			return err
		})); err != nil {
			return fmt.Errorf("low stock job %q: %w", lowStockSpec, err)
		}
	}

	if closingSpec != "" {
		if _, err := s.sched.AddFunc(closingSpec, s.run("month_closing", func(ctx context.Context) error {
			now := time.Now().In(s.loc)
			if !LastDayOfMonth(now) {
				return nil
			}
			_, err := s.ArchiveClosing(ctx, now)
			return err
		})); err != nil {
			return fmt.Errorf("closing job %q: %w", closingSpec, err)
		}
	}

	s.sched.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.sched.Stop().Done()
}

func (s *Scheduler) run(name string, job func(ctx context.Context) error) func() {
	return func() {
		defer func() {
			if err := recover(); err != nil {
				s.log.Error("job panic", zap.String("job", name), zap.Any("panic", err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := job(ctx); err != nil {
			s.log.Error("job failed", zap.String("job", name), zap.Error(err))
		}
	}
}

// ScanLowStock logs every product that needs restocking and returns them.
func (s *Scheduler) ScanLowStock(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	low := stats.LowStock(products)
	for _, p := range low {
		s.log.Warn("product needs restock",
			zap.String("product_id", p.ID),
			zap.String("name", p.Name),
			zap.Int("quantity", p.Quantity),
			zap.Int("minimum_stock", p.MinimumStock),
		)
	}
	s.log.Info("low stock scan done", zap.Int("products", len(products)), zap.Int("low", len(low)))
	return low, nil
}

// ArchiveClosing builds the general report for now's month and hands it to
// the archiver. Partial snapshots are archived too; the fetch error is
// logged.
func (s *Scheduler) ArchiveClosing(ctx context.Context, now time.Time) (string, error) {
	snap, err := stats.LoadSnapshot(ctx, s.store)
	if err != nil {
		s.log.Warn("closing built from partial data", zap.Error(err))
	}

	wb := s.builder.General(snap, now)

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, wb); err != nil {
		return "", err
	}

	name := report.FileName(report.KindGeneral, now, "xlsx")
	if s.archiver == nil {
		s.log.Info("month closing generated, no archive configured",
			zap.String("file", name), zap.Int("bytes", buf.Len()))
		return "", nil
	}

	key, err := s.archiver.Archive(ctx, name, buf.Bytes())
	if err != nil {
		return "", err
	}
	s.log.Info("month closing archived", zap.String("key", key))
	return key, nil
}

// LastDayOfMonth is true when the next calendar day is in another month.
func LastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}
