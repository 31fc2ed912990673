package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/salonika/salon-marketplace/internal/audit"
	"github.com/salonika/salon-marketplace/internal/cache"
	"github.com/salonika/salon-marketplace/internal/config"
	"github.com/salonika/salon-marketplace/internal/handlers"
	infraRepo "github.com/salonika/salon-marketplace/internal/infra/repository"
	"github.com/salonika/salon-marketplace/internal/media"
	"github.com/salonika/salon-marketplace/internal/middleware"
	"github.com/salonika/salon-marketplace/internal/notify"
	ucAppointment "github.com/salonika/salon-marketplace/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyDispatcher := notify.NewDispatcher(notify.LogNotifier{})

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	availCache := cache.New(rdb)

	mediaStore := media.NewStore(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		availCache,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		notifyDispatcher,
		availCache,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
		availCache,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listByDateUC := ucAppointment.NewListSalonAppointmentsByDate(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	marketplaceHandler := handlers.NewMarketplaceHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
	)

	ownerHandler := handlers.NewOwnerHandler(
		db,
		listByDateUC,
		confirmAppointmentUC,
		completeAppointmentUC,
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	salonPhotoHandler := handlers.NewSalonPhotoHandler(db, mediaStore)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// VITRINE PÚBLICA
		// ------------------------------
		api.GET("/categories", marketplaceHandler.ListCategories)
		api.GET("/salons", marketplaceHandler.ListSalons)
		api.GET("/salons/:id", marketplaceHandler.GetSalon)
		api.GET("/salons/:id/services/:serviceID/slots", bookingHandler.Slots)

		// ------------------------------
		// API PRIVADA (cliente autenticado)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.MyBookings)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// PAINEL DO DONO
			// ------------------------------
			owner := secured.Group("/me/salon")
			owner.Use(middleware.RequireRole("owner"))
			{
				owner.GET("/bookings", ownerHandler.ListByDate)
				owner.PATCH("/bookings/:id/confirm", ownerHandler.Confirm)
				owner.PATCH("/bookings/:id/complete", ownerHandler.Complete)

				owner.GET("/working-hours", workingHoursHandler.Get)
				owner.PUT("/working-hours", workingHoursHandler.Update)

				owner.POST("/photos", salonPhotoHandler.Upload)

				owner.GET("/audit-logs", ownerHandler.ListAuditLogs)
			}
		}
	}
}
