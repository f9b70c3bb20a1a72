package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/inventory"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
)

type ProductHandler struct {
	store *store.Store
	audit *audit.Dispatcher
}

func NewProductHandler(st *store.Store, audit *audit.Dispatcher) *ProductHandler {
	return &ProductHandler{store: st, audit: audit}
}

type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	MinimumStock int             `json:"minimum_stock"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
}

// List accepts ?stock=out_of_stock|low_stock|in_stock.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.Products.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}

	views := dto.NewProductViews(products)

	if stock := inventory.StockStatus(strings.TrimSpace(c.Query("stock"))); stock != "" {
		filtered := []dto.ProductView{}
		for _, v := range views {
			if v.StockStatus == stock {
				filtered = append(filtered, v)
			}
		}
		views = filtered
	}

	httpresp.List(c, views)
}

func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.store.Products.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}
	httpresp.List(c, dto.NewProductViews(stats.LowStock(products)))
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.store.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}
	httpresp.Item(c, dto.NewProductView(product))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if req.Quantity < 0 || req.MinimumStock < 0 {
		httperr.BadRequest(c, "invalid_quantity", businessMessages["invalid_quantity"])
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", businessMessages["invalid_price"])
		return
	}

	product, err := h.store.Products.Create(c.Request.Context(), models.Product{
		Name:         strings.TrimSpace(req.Name),
		Category:     req.Category,
		Quantity:     req.Quantity,
		MinimumStock: req.MinimumStock,
		Price:        req.Price,
		Description:  req.Description,
	})
	if err != nil {
		writeError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}

	writeAudit(h.audit, "product_created", "product", product.ID, nil)
	httpresp.Created(c, dto.NewProductView(product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	var patch models.ProductPatch
	if err := bindJSON(c, &patch); err != nil {
		badRequest(c, err)
		return
	}
	if patch.Quantity != nil && *patch.Quantity < 0 || patch.MinimumStock != nil && *patch.MinimumStock < 0 {
		httperr.BadRequest(c, "invalid_quantity", businessMessages["invalid_quantity"])
		return
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		httperr.BadRequest(c, "invalid_price", businessMessages["invalid_price"])
		return
	}

	product, err := h.store.Products.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}

	writeAudit(h.audit, "product_updated", "product", product.ID, nil)
	httpresp.Item(c, dto.NewProductView(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Products.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}

	writeAudit(h.audit, "product_deleted", "product", id, nil)
	c.Status(http.StatusNoContent)
}
