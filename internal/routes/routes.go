package routes

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/LotusWellness01/spa-scheduler/internal/audit"
	"github.com/LotusWellness01/spa-scheduler/internal/calendar"
	"github.com/LotusWellness01/spa-scheduler/internal/config"
	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/handlers"
	infraRepo "github.com/LotusWellness01/spa-scheduler/internal/infra/repository"
	"github.com/LotusWellness01/spa-scheduler/internal/middleware"
	ucBooking "github.com/LotusWellness01/spa-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// The busy source is optional; the guard below keeps the interface nil
	// instead of holding a typed nil pointer.
	var busySource domain.BusySource
	googleSource, err := calendar.NewGoogleBusySource(context.Background(), cfg, cfg.GoogleCalendarID)
	if err != nil {
		zap.L().Warn("google calendar integration disabled", zap.Error(err))
	} else if googleSource != nil {
		busySource = googleSource
	}

	publicLimiter := middleware.NewRedisRateLimiter(rdb, 60, time.Minute, "public")

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	resolveAvailabilityUC := ucBooking.NewResolveAvailability(
		bookingRepo,
		busySource,
	)

	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		auditDispatcher,
	)

	confirmReservationUC := ucBooking.NewConfirmReservation(
		bookingRepo,
		auditDispatcher,
	)

	cancelReservationUC := ucBooking.NewCancelReservation(
		bookingRepo,
		auditDispatcher,
	)

	completeReservationUC := ucBooking.NewCompleteReservation(
		bookingRepo,
		auditDispatcher,
	)

	listReservationsByDateUC := ucBooking.NewListReservationsByDate(
		bookingRepo,
	)

	listReservationsByMonthUC := ucBooking.NewListReservationsByMonth(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	studioHandler := handlers.NewStudioHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	productHandler := handlers.NewProductHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	windowHandler := handlers.NewWindowHandler(db)
	discountHandler := handlers.NewDiscountHandler(db)
	orderHandler := handlers.NewOrderHandler(db, auditDispatcher)

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		confirmReservationUC,
		cancelReservationUC,
		completeReservationUC,
		listReservationsByDateUC,
		listReservationsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		resolveAvailabilityUC,
		createReservationUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(publicLimiter.Middleware())
		{
			publicAPI.GET("/:slug", publicHandler.GetStudio)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/reservations", publicHandler.CreateReservation)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/studio", studioHandler.GetMeStudio)
			secured.PATCH("/me/studio", studioHandler.UpdateMeStudio)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/products", productHandler.List)
			secured.POST("/me/products", productHandler.Create)
			secured.PATCH("/me/products/:id", productHandler.Update)

			secured.GET("/me/availability-windows", windowHandler.Get)
			secured.PUT("/me/availability-windows", windowHandler.Update)

			secured.GET("/me/discount-codes", discountHandler.List)
			secured.POST("/me/discount-codes", discountHandler.Create)
			secured.PATCH("/me/discount-codes/:id", discountHandler.Update)

			secured.GET("/me/orders", orderHandler.List)
			secured.POST("/me/orders", orderHandler.Create)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.POST("/me/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", reservationHandler.ListByDate)
			secured.GET("/me/reservations/month", reservationHandler.ListByMonth)
			secured.PATCH("/me/reservations/:id/confirm", reservationHandler.Confirm)
			secured.PATCH("/me/reservations/:id/cancel", reservationHandler.Cancel)
			secured.PATCH("/me/reservations/:id/complete", reservationHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
