package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/seed"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type SeedHandler struct {
	store *store.Store
	audit *audit.Dispatcher
	clock timezone.Clock
	log   *zap.Logger
}

func NewSeedHandler(st *store.Store, audit *audit.Dispatcher, clock timezone.Clock, log *zap.Logger) *SeedHandler {
	return &SeedHandler{store: st, audit: audit, clock: clock, log: log}
}

// Seed loads the example data. On failure whatever was already created
// stays and the counts are returned with the error.
func (h *SeedHandler) Seed(c *gin.Context) {
	res, err := seed.SeedAll(c.Request.Context(), h.store, h.clock(), h.log)
	if err != nil {
		_ = c.Error(err)
		h.log.Error("seed stopped early", zap.Any("created", res), zap.Error(err))

		status := http.StatusInternalServerError
		if store.IsTransport(err) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error_code": "seed_failed",
			"message":    "Falha ao carregar dados de exemplo.",
			"created":    res,
		})
		return
	}

	writeAudit(h.audit, "seed_loaded", "store", "", res)
	c.JSON(http.StatusCreated, gin.H{"data": res})
}
