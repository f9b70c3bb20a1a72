package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	store *store.Store
	audit *audit.Dispatcher
	clock timezone.Clock
	mode  stats.PriceMode

	createUC       *ucAppointment.CreateAppointment
	updateUC       *ucAppointment.UpdateAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	listByMonthUC  *ucAppointment.ListAppointmentsByMonth
	upcomingUC     *ucAppointment.ListUpcoming
}

func NewAppointmentHandler(
	st *store.Store,
	audit *audit.Dispatcher,
	clock timezone.Clock,
	mode stats.PriceMode,
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
	upcomingUC *ucAppointment.ListUpcoming,
) *AppointmentHandler {
	return &AppointmentHandler{
		store:          st,
		audit:          audit,
		clock:          clock,
		mode:           mode,
		createUC:       createUC,
		updateUC:       updateUC,
		updateStatusUC: updateStatusUC,
		listByMonthUC:  listByMonthUC,
		upcomingUC:     upcomingUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ServiceID    string `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Time         string `json:"time" binding:"required"`
	Observations string `json:"observations"`
	Status       string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST (?date=YYYY-MM-DD, ?status=)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	snap, partial, err := stats.LoadForAppointments(c.Request.Context(), h.store)
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	date := strings.TrimSpace(c.Query("date"))

	var status domain.Status
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if status, err = domain.ParseStatus(s); err != nil {
			writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
	}

	filtered := []models.Appointment{}
	for _, ap := range snap.Appointments {
		if date != "" && ap.Date != date {
			continue
		}
		if status != "" && domain.CurrentStatus(ap) != status {
			continue
		}
		filtered = append(filtered, ap)
	}

	httpresp.PartialList(c, dto.NewAppointmentViews(filtered, stats.NewResolver(snap, h.mode)), partial)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	ap, err := h.store.Appointments.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	snap, partial, err := stats.LoadForAppointments(ctx, h.store)
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.Partial(c, dto.NewAppointmentView(ap, stats.NewResolver(snap, h.mode)), partial)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:     req.ClientID,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Observations: req.Observations,
		Status:       req.Status,
	})
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE / STATUS
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var patch models.AppointmentPatch
	if err := bindJSON(c, &patch); err != nil {
		badRequest(c, err)
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.Item(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.Item(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Appointments.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	writeAudit(h.audit, "appointment_deleted", "appointment", id, nil)
	c.Status(http.StatusNoContent)
}

// ======================================================
// MONTH / UPCOMING
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, month, err := yearMonth(c.Param("year"), c.Param("month"), h.clock())
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	views, partial, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.PartialList(c, views, partial)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	limit := intQuery(c.Query("limit"), ucAppointment.DefaultUpcomingLimit)

	views, partial, err := h.upcomingUC.Execute(c.Request.Context(), h.clock(), limit)
	if err != nil {
		writeError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.PartialList(c, views, partial)
}
