package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// StatsHandler serves the aggregates. A failing collection does not fail
// the request: the numbers are computed over what was fetched and the
// response is flagged partial.
type StatsHandler struct {
	store *store.Store
	clock timezone.Clock
	mode  stats.PriceMode
	log   *zap.Logger
}

func NewStatsHandler(st *store.Store, clock timezone.Clock, mode stats.PriceMode, log *zap.Logger) *StatsHandler {
	return &StatsHandler{store: st, clock: clock, mode: mode, log: log}
}

func (h *StatsHandler) snapshot(c *gin.Context) (stats.Snapshot, bool) {
	snap, err := stats.LoadSnapshot(c.Request.Context(), h.store)
	if err != nil {
		h.log.Warn("aggregating over partial data", zap.String("path", c.FullPath()), zap.Error(err))
		return snap, true
	}
	return snap, false
}

func (h *StatsHandler) Dashboard(c *gin.Context) {
	snap, partial := h.snapshot(c)
	httpresp.Partial(c, stats.Dashboard(snap, h.clock(), h.mode), partial)
}

func (h *StatsHandler) Report(c *gin.Context) {
	snap, partial := h.snapshot(c)
	httpresp.Partial(c, stats.Report(snap), partial)
}

// TopServices ranks completed appointments by service (?n=, default 5).
func (h *StatsHandler) TopServices(c *gin.Context) {
	n := intQuery(c.Query("n"), stats.ClosingTopN)

	snap, partial := h.snapshot(c)
	httpresp.Partial(c, stats.TopServices(snap, n), partial)
}

func (h *StatsHandler) Closing(c *gin.Context) {
	snap, partial := h.snapshot(c)
	httpresp.Partial(c, stats.Closing(snap, h.clock(), h.mode), partial)
}

func (h *StatsHandler) Lifetime(c *gin.Context) {
	snap, partial := h.snapshot(c)
	httpresp.Partial(c, stats.Lifetime(snap, h.mode), partial)
}
