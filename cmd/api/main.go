package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/jobs"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/report"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogMode, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	// ======================================================
	// 🗄️ STORE
	// ======================================================
	st, db, err := openStore(cfg, zl)
	if err != nil {
		zl.Fatal("failed to open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}

	// ======================================================
	// 📝 AUDIT
	// ======================================================
	var sink audit.Sink = audit.NewZap(zl)
	if db != nil {
		sink = audit.New(db)
	}
	dispatcher := audit.NewDispatcher(sink, zl)

	// ======================================================
	// 📊 REPORTS / JOBS
	// ======================================================
	loc := timezone.Location(cfg.Timezone)
	mode := stats.PriceMode(cfg.RevenuePricing)
	builder := report.NewBuilder(cfg.SalonName, mode)

	deps := routes.Deps{
		Store:            st,
		DB:               db,
		Audit:            dispatcher,
		Clock:            timezone.SalonClock(cfg.Timezone),
		Mode:             mode,
		Builder:          builder,
		Log:              zl,
		CheckEmailDomain: cfg.CheckEmailDomain,
	}

	var archiver jobs.Archiver
	if cfg.ReportBucket != "" {
		s3 := report.NewS3Archiver(report.S3Config{
			Bucket:    cfg.ReportBucket,
			Region:    cfg.AWSRegion,
			KeyID:     cfg.AWSKeyID,
			Secret:    cfg.AWSSecret,
			Endpoint:  cfg.S3Endpoint,
			KeyPrefix: "reports/",
		})
		archiver = s3
		deps.Archiver = s3
	}

	scheduler := jobs.New(st, builder, archiver, loc, zl)
	if err := scheduler.Start(cfg.LowStockCron, cfg.ClosingCron); err != nil {
		zl.Fatal("failed to schedule jobs", zap.Error(err))
	}

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(
		middleware.Recovery(zl),
		middleware.RequestLogger(zl, "/health"),
		middleware.CORSMiddleware(),
	)

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("backend", cfg.StoreBackend),
			zap.String("revenue_pricing", cfg.RevenuePricing),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}
	scheduler.Stop()
	dispatcher.Close()
}

// openStore builds the configured backend. The *gorm.DB is only returned
// for postgres.
func openStore(cfg *config.Config, zl *zap.Logger) (*store.Store, *gorm.DB, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := dbpkg.NewDB(cfg.DBUrl, zl)
		if err != nil {
			return nil, nil, err
		}
		if err := dbpkg.Migrate(db); err != nil {
			return nil, nil, err
		}
		return store.NewGorm(db), db, nil

	case config.BackendRedis:
		kv, err := openRedis(cfg)
		if err != nil {
			return nil, nil, err
		}
		return store.NewKV(kv, cfg.KVPrefix), nil, nil

	case config.BackendRemote:
		remote := store.NewRemote(cfg.RemoteURL, cfg.RemoteTimeout)
		if !cfg.RemoteFallback {
			return remote, nil, nil
		}

		// Redis when reachable, otherwise this process' memory.
		var fallback *store.Store
		if kv, err := openRedis(cfg); err == nil {
			fallback = store.NewKV(kv, cfg.KVPrefix)
		} else {
			zl.Warn("redis fallback unavailable, using memory", zap.Error(err))
			fallback = store.NewMemory()
		}
		return store.WithFallback(remote, fallback, zl), nil, nil

	default:
		return store.NewMemory(), nil, nil
	}
}

func openRedis(cfg *config.Config) (*store.RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return store.NewRedisKV(client), nil
}
