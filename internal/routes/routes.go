package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/claudiolibanez/fullstack-week-barber/internal/audit"
	"github.com/claudiolibanez/fullstack-week-barber/internal/cache"
	"github.com/claudiolibanez/fullstack-week-barber/internal/config"
	"github.com/claudiolibanez/fullstack-week-barber/internal/handlers"
	infraRepo "github.com/claudiolibanez/fullstack-week-barber/internal/infra/repository"
	"github.com/claudiolibanez/fullstack-week-barber/internal/media"
	"github.com/claudiolibanez/fullstack-week-barber/internal/middleware"
	ucBooking "github.com/claudiolibanez/fullstack-week-barber/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var availCache ucBooking.AvailabilityCache
	if c := cache.NewAvailability(cfg.RedisAddr); c != nil {
		availCache = c
	}

	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, availCache)

	reserveUC := ucBooking.NewReserve(
		bookingRepo,
		auditDispatcher,
		availCache,
	)

	listBookingsByDayUC := ucBooking.NewListBookingsByDay(bookingRepo)
	listBookingsByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, getAvailabilityUC, reserveUC)

	bookingHandler := handlers.NewBookingHandler(
		db,
		bookingRepo,
		listBookingsByDayUC,
		listBookingsByMonthUC,
	)

	barbershopHandler := handlers.NewBarbershopHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetBarbershop)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)

			// reservar exige cliente autenticado
			publicAPI.POST(
				"/:slug/bookings",
				middleware.AuthMiddleware(cfg),
				publicHandler.CreateBooking,
			)
		}

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/bookings", bookingHandler.ListMine)

			owner := secured.Group("/me")
			owner.Use(middleware.RequireOwner())
			{
				owner.GET("/barbershop", barbershopHandler.GetMeBarbershop)
				owner.PATCH("/barbershop", barbershopHandler.UpdateMeBarbershop)

				owner.GET("/bookings/day", bookingHandler.ListByDay)
				owner.GET("/bookings/month", bookingHandler.ListByMonth)

				owner.GET("/services", serviceHandler.List)
				owner.POST("/services", serviceHandler.Create)
				owner.PATCH("/services/:id", serviceHandler.Update)
				owner.POST("/services/:id/image", serviceHandler.UploadImage)

				owner.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
