package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/report"
	"github.com/BruksfildServices01/salon-scheduler/internal/stats"
	"github.com/BruksfildServices01/salon-scheduler/internal/store"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// Deps is everything the API needs. DB is only set for the postgres
// backend and enables the audit log listing. Archiver may be nil.
type Deps struct {
	Store    *store.Store
	DB       *gorm.DB
	Audit    *audit.Dispatcher
	Clock    timezone.Clock
	Mode     stats.PriceMode
	Builder  *report.Builder
	Archiver handlers.ReportArchiver
	Log      *zap.Logger

	CheckEmailDomain bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🧠 USE CASES · APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Store, d.Audit)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(d.Store, d.Audit)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(d.Store, d.Audit)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(d.Store, d.Mode)
	listUpcomingUC := ucAppointment.NewListUpcoming(d.Store, d.Mode)
	buildCalendarUC := ucAppointment.NewBuildCalendar(d.Store, d.Mode)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(d.Store, d.Audit, d.CheckEmailDomain)
	serviceHandler := handlers.NewServiceHandler(d.Store, d.Audit)
	productHandler := handlers.NewProductHandler(d.Store, d.Audit)

	appointmentHandler := handlers.NewAppointmentHandler(
		d.Store,
		d.Audit,
		d.Clock,
		d.Mode,
		createAppointmentUC,
		updateAppointmentUC,
		updateStatusUC,
		listAppointmentsByMonthUC,
		listUpcomingUC,
	)

	calendarHandler := handlers.NewCalendarHandler(d.Clock, buildCalendarUC)
	statsHandler := handlers.NewStatsHandler(d.Store, d.Clock, d.Mode, d.Log)
	reportHandler := handlers.NewReportHandler(d.Store, d.Builder, d.Archiver, d.Clock, d.Log)
	seedHandler := handlers.NewSeedHandler(d.Store, d.Audit, d.Clock, d.Log)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTS
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients/:id", clientHandler.Get)
		api.PUT("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)

		// ------------------------------
		// SERVICES
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.GET("/services/:id", serviceHandler.Get)
		api.PUT("/services/:id", serviceHandler.Update)
		api.DELETE("/services/:id", serviceHandler.Delete)

		// ------------------------------
		// PRODUCTS
		// ------------------------------
		api.GET("/products", productHandler.List)
		api.GET("/products/low-stock", productHandler.LowStock)
		api.POST("/products", productHandler.Create)
		api.GET("/products/:id", productHandler.Get)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/upcoming", appointmentHandler.Upcoming)
		api.GET("/appointments/month/:year/:month", appointmentHandler.ListByMonth)
		api.GET("/appointments/:id", appointmentHandler.Get)
		api.PUT("/appointments/:id", appointmentHandler.Update)
		api.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)

		api.GET("/calendar", calendarHandler.Get)

		// ------------------------------
		// DASHBOARD / REPORTS
		// ------------------------------
		api.GET("/dashboard/stats", statsHandler.Dashboard)
		api.GET("/reports/stats", statsHandler.Report)
		api.GET("/reports/top-services", statsHandler.TopServices)
		api.GET("/reports/closing", statsHandler.Closing)
		api.GET("/reports/lifetime", statsHandler.Lifetime)
		api.GET("/reports/export", reportHandler.Export)

		api.POST("/seed", seedHandler.Seed)

		if d.DB != nil {
			api.GET("/audit-logs", handlers.NewAuditLogsHandler(d.DB).List)
		}
	}
}
