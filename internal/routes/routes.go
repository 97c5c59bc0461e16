package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fsanztor01/TrimTime/internal/audit"
	"github.com/fsanztor01/TrimTime/internal/cache"
	"github.com/fsanztor01/TrimTime/internal/config"
	appointmentdomain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	ratingdomain "github.com/fsanztor01/TrimTime/internal/domain/rating"
	"github.com/fsanztor01/TrimTime/internal/handlers"
	infraRepo "github.com/fsanztor01/TrimTime/internal/infra/repository"
	"github.com/fsanztor01/TrimTime/internal/middleware"
	ucAppointment "github.com/fsanztor01/TrimTime/internal/usecase/appointment"
	ucRating "github.com/fsanztor01/TrimTime/internal/usecase/rating"
	"github.com/fsanztor01/TrimTime/internal/usecase/statistics"
)

// RegisterRoutes wires the whole API. db may be nil: the process then runs on
// the in-memory store, which is the local development mode.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================

	var (
		appointmentRepo appointmentdomain.Repository
		ratingRepo      ratingdomain.Repository
		userStore       handlers.UserStore
		catalogStore    handlers.CatalogStore
		auditSink       audit.Sink
	)

	if db != nil {
		gormRepo := infraRepo.NewAppointmentGormRepository(db)
		appointmentRepo = gormRepo
		catalogStore = gormRepo
		ratingRepo = infraRepo.NewRatingGormRepository(db)
		userStore = infraRepo.NewUserGormRepository(db)
		auditSink = audit.New(db)
	} else {
		mem := infraRepo.NewMemoryRepository()
		appointmentRepo = mem
		catalogStore = mem
		ratingRepo = mem
		userStore = mem
		auditSink = audit.ZapSink{}
	}

	availCache := cache.NewAvailabilityCache(cfg.RedisAddr)
	auditDispatcher := audit.NewDispatcher(auditSink)

	sched := appointmentdomain.Schedule{
		OpenTime:       cfg.Shop.OpenTime,
		CloseTime:      cfg.Shop.CloseTime,
		SlotMinutes:    cfg.Shop.SlotMinutes,
		ClosedWeekdays: cfg.Shop.ClosedWeekdays,
	}

	// ======================================================
	// USE CASES
	// ======================================================

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availCache,
		sched,
	)

	confirmBookingUC := ucAppointment.NewConfirmBooking(
		appointmentRepo,
		availCache,
		auditDispatcher,
		sched,
		cfg.Shop.MaxBookingDaysAhead,
		nil,
	)

	transitionUC := ucAppointment.NewTransition(
		appointmentRepo,
		availCache,
		auditDispatcher,
		cfg.Timezone,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	statisticsUC := statistics.NewCompute(appointmentRepo)

	submitRatingUC := ucRating.NewSubmit(ratingRepo, auditDispatcher)
	listRatingsUC := ucRating.NewList(ratingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(userStore, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogStore)
	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		confirmBookingUC,
		listAppointmentsUC,
	)
	adminHandler := handlers.NewAppointmentAdminHandler(
		transitionUC,
		listAppointmentsUC,
	)
	statsHandler := handlers.NewStatsHandler(statisticsUC)
	ratingHandler := handlers.NewRatingHandler(submitRatingUC, listRatingsUC)

	// ======================================================
	// API (JSON)
	// ======================================================

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/services", catalogHandler.ListServices)
		api.GET("/barbers", catalogHandler.ListBarbers)
		api.GET("/barbers/:id/ratings", ratingHandler.ListByBarber)

		api.GET("/availability", bookingHandler.Availability)
		api.POST("/booking/advance", bookingHandler.Advance)
		api.POST("/booking/retreat", bookingHandler.Retreat)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)

			secured.POST("/booking/confirm", bookingHandler.Confirm)
			secured.GET("/me/appointments", bookingHandler.ListMine)

			secured.POST("/ratings", ratingHandler.Submit)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/appointments", adminHandler.List)
				admin.PATCH("/appointments/:id/confirm", adminHandler.Confirm)
				admin.PATCH("/appointments/:id/complete", adminHandler.Complete)
				admin.PATCH("/appointments/:id/cancel", adminHandler.Cancel)
				admin.DELETE("/appointments/:id", adminHandler.SoftDelete)

				admin.POST("/services", catalogHandler.SaveService)
				admin.PUT("/services/:id", catalogHandler.SaveService)
				admin.POST("/barbers", catalogHandler.SaveBarber)
				admin.PUT("/barbers/:id", catalogHandler.SaveBarber)

				admin.GET("/statistics", statsHandler.Report)
				admin.GET("/ratings", ratingHandler.ListAll)

				if db != nil {
					auditLogsHandler := handlers.NewAuditLogsHandler(db)
					admin.GET("/audit-logs", auditLogsHandler.List)
				}
			}
		}
	}
}
