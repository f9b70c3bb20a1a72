package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/report"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// ReportArchiver keeps a copy of an exported file.
type ReportArchiver interface {
	Archive(ctx context.Context, name string, body []byte) (string, error)
}

type ReportHandler struct {
	store    *store.Store
	builder  *report.Builder
	archiver ReportArchiver
	clock    timezone.Clock
	log      *zap.Logger
}

// NewReportHandler builds the export handler. archiver may be nil.
func NewReportHandler(
	st *store.Store,
	builder *report.Builder,
	archiver ReportArchiver,
	clock timezone.Clock,
	log *zap.Logger,
) *ReportHandler {
	return &ReportHandler{
		store:    st,
		builder:  builder,
		archiver: archiver,
		clock:    clock,
		log:      log,
	}
}

// Export streams the report as a download.
// ?kind=general|detailed ?format=xlsx|csv ?sheet= (csv only) ?archive=true
func (h *ReportHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.clock()

	kind, ok := report.ParseKind(c.Query("kind"))
	if !ok {
		httperr.BadRequest(c, "invalid_report_kind", "Tipo de relatório inválido.")
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	if format != "xlsx" && format != "csv" {
		httperr.BadRequest(c, "invalid_report_format", "Formato de relatório inválido.")
		return
	}

	snap, err := stats.LoadSnapshot(ctx, h.store)
	if err != nil {
		h.log.Warn("exporting over partial data", zap.String("kind", string(kind)), zap.Error(err))
	}

	wb := h.builder.Build(kind, snap, now)

	// --------------------------------------------------
	// Render
	// --------------------------------------------------

	var (
		buf         bytes.Buffer
		name        string
		contentType string
	)

	switch format {
	case "csv":
		sheet := wb.Sheets[0]
		if s := c.Query("sheet"); s != "" {
			found, ok := wb.Sheet(s)
			if !ok {
				httperr.NotFound(c, "sheet_not_found", "Aba não encontrada.")
				return
			}
			sheet = found
		}

		if err := report.WriteCSV(&buf, sheet); err != nil {
			h.fail(c, err)
			return
		}
		name = csvFileName(kind, now, sheet.Name)
		contentType = contentTypeCSV

	default:
		if err := report.WriteXLSX(&buf, wb); err != nil {
			h.fail(c, err)
			return
		}
		name = report.FileName(kind, now, "xlsx")
		contentType = contentTypeXLSX
	}

	// --------------------------------------------------
	// Archive (optional)
	// --------------------------------------------------

	if c.Query("archive") == "true" {
		if h.archiver == nil {
			httperr.BadRequest(c, "archive_not_configured", "Armazenamento de relatórios não configurado.")
			return
		}

		location, err := h.archiver.Archive(ctx, name, buf.Bytes())
		if err != nil {
			_ = c.Error(err)
			httperr.BadGateway(c, "archive_failed", "Falha ao arquivar relatório.")
			return
		}
		c.Header("X-Report-Location", location)
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *ReportHandler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	h.log.Error("report render failed", zap.Error(err))
	httperr.Internal(c, "report_failed", "Erro ao gerar relatório.")
}

// csvFileName appends the sheet so several tabs of the same day do not
// overwrite each other.
func csvFileName(kind report.Kind, now time.Time, sheet string) string {
	base := strings.TrimSuffix(report.FileName(kind, now, "csv"), ".csv")
	return fmt.Sprintf("%s_%s.csv", base, strings.ReplaceAll(sheet, " ", "_"))
}
