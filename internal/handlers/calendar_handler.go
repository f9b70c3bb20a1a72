package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

type CalendarHandler struct {
	clock     timezone.Clock
	buildGrid *ucAppointment.BuildCalendar
}

func NewCalendarHandler(clock timezone.Clock, buildGrid *ucAppointment.BuildCalendar) *CalendarHandler {
	return &CalendarHandler{clock: clock, buildGrid: buildGrid}
}

// Get returns the 42-cell grid for ?year=&month=, defaulting to the current
// month. prev/next in the response are the navigation cursors. Only a
// failed appointments fetch fails the request.
func (h *CalendarHandler) Get(c *gin.Context) {
	now := h.clock()

	year, month, err := yearMonth(c.Query("year"), c.Query("month"), now)
	if err != nil {
		writeError(c, err, "calendar_not_found", "Mês não encontrado.")
		return
	}

	grid, partial, err := h.buildGrid.Execute(c.Request.Context(), year, month, now)
	if err != nil {
		writeError(c, err, "calendar_not_found", "Mês não encontrado.")
		return
	}

	httpresp.Partial(c, grid, partial)
}
