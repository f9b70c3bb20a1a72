package handlers

import (
	"net/http"
	"strings"

	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type ClientHandler struct {
	store       *store.Store
	audit       *audit.Dispatcher
	checkDomain bool
}

func NewClientHandler(st *store.Store, audit *audit.Dispatcher, checkEmailDomain bool) *ClientHandler {
	return &ClientHandler{store: st, audit: audit, checkDomain: checkEmailDomain}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

// ======================================================
// LIST CLIENTS
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.store.Clients.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query != "" {
		digits := validators.NormalizePhone(query)
		filtered := []models.Client{}
		for _, cl := range clients {
			if strings.Contains(strings.ToLower(cl.Name), query) ||
				strings.Contains(strings.ToLower(cl.Email), query) ||
				(digits != "" && strings.Contains(cl.Phone, digits)) {
				filtered = append(filtered, cl)
			}
		}
		clients = filtered
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.store.Clients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}
	httpresp.Item(c, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	patch := models.ClientPatch{
		Phone:     &req.Phone,
		Email:     &req.Email,
		BirthDate: &req.BirthDate,
	}
	if err := h.normalize(&patch); err != nil {
		writeError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	client, err := h.store.Clients.Create(c.Request.Context(), models.Client{
		Name:      strings.TrimSpace(req.Name),
		Phone:     *patch.Phone,
		Email:     *patch.Email,
		BirthDate: *patch.BirthDate,
		Address:   req.Address,
		Notes:     req.Notes,
	})
	if err != nil {
		writeError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	writeAudit(h.audit, "client_created", "client", client.ID, nil)
	httpresp.Created(c, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var patch models.ClientPatch
	if err := bindJSON(c, &patch); err != nil {
		badRequest(c, err)
		return
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		httperr.BadRequest(c, "invalid_request", "Nome é obrigatório.")
		return
	}

	if err := h.normalize(&patch); err != nil {
		writeError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	client, err := h.store.Clients.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	writeAudit(h.audit, "client_updated", "client", client.ID, nil)
	httpresp.Item(c, client)
}

// Delete leaves appointments of the client in place; they resolve to the
// "not found" placeholder from then on.
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Clients.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	writeAudit(h.audit, "client_deleted", "client", id, nil)
	c.Status(http.StatusNoContent)
}

// normalize validates the contact fields present in p and rewrites them in
// stored form: phone as digits, birth date as YYYY-MM-DD.
func (h *ClientHandler) normalize(p *models.ClientPatch) error {
	if p.Phone != nil {
		if !validators.IsPhoneValid(*p.Phone) {
			return httperr.ErrBusiness("invalid_phone")
		}
		digits := validators.NormalizePhone(*p.Phone)
		p.Phone = &digits
	}

	if p.Email != nil && *p.Email != "" {
		email := strings.ToLower(strings.TrimSpace(*p.Email))
		if !validators.IsEmailSyntaxValid(email) {
			return httperr.ErrBusiness("invalid_email")
		}
		if h.checkDomain && !validators.IsEmailDomainValid(email) {
			return httperr.ErrBusiness("invalid_email_domain")
		}
		p.Email = &email
	}

	if p.BirthDate != nil && strings.TrimSpace(*p.BirthDate) != "" {
		t, err := dateparse.ParseAny(strings.TrimSpace(*p.BirthDate))
		if err != nil {
			return httperr.ErrBusiness("invalid_birth_date")
		}
		d := t.Format("2006-01-02")
		p.BirthDate = &d
	}

	return nil
}
