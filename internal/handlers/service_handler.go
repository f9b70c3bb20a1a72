package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

type ServiceHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewServiceHandler(st *store.Store, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{store: st, audit: audit}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name            string          `json:"name" binding:"required"`
	Category        string          `json:"category"`
	DurationMinutes int             `json:"duration_minutes" binding:"min=0"`
	Price           decimal.Decimal `json:"price"`
	Description     string          `json:"description"`
	Active          *bool           `json:"active"` // ausente = true
}

// --------- Handlers ---------
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.store.Services.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	out := []models.Service{}
	for _, s := range services {
		if category != "" && strings.ToLower(s.Category) != category {
			continue
		}
		if activeStr == "true" && !s.Active || activeStr == "false" && s.Active {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(strings.ToLower(s.Description), query) {
			continue
		}
		out = append(out, s)
	}

	httpresp.List(c, out)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.store.Services.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}
	httpresp.Item(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", businessMessages["invalid_price"])
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	service, err := h.store.Services.Create(c.Request.Context(), models.Service{
		Name:            strings.TrimSpace(req.Name),
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Description:     req.Description,
		Active:          active,
	})
	if err != nil {
		writeError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}

	writeAudit(h.audit, "service_created", "service", service.ID, nil)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var patch models.ServicePatch
	if err := bindJSON(c, &patch); err != nil {
		badRequest(c, err)
		return
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", businessMessages["invalid_price"])
		return
	}
	if patch.DurationMinutes != nil && *patch.DurationMinutes < 0 {
		httperr.BadRequest(c, "invalid_request", "Duração inválida.")
		return
	}

	service, err := h.store.Services.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}

	// preço novo reprecifica o faturamento passado no modo "live"
	writeAudit(h.audit, "service_updated", "service", service.ID, patch)
	httpresp.Item(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Services.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}

	writeAudit(h.audit, "service_deleted", "service", id, nil)
	c.Status(http.StatusNoContent)
}
