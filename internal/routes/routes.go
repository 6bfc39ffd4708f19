package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/bookwise/booking-calendar/internal/audit"
	"github.com/bookwise/booking-calendar/internal/cache"
	"github.com/bookwise/booking-calendar/internal/config"
	"github.com/bookwise/booking-calendar/internal/handlers"
	infraRepo "github.com/bookwise/booking-calendar/internal/infra/repository"
	"github.com/bookwise/booking-calendar/internal/middleware"
	ucBooking "github.com/bookwise/booking-calendar/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	slotRepo := infraRepo.NewTimeSlotGormRepository(db)

	bookingCache := cache.NewRedisBookingCache(rdb, log)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	createUC := ucBooking.NewCreate(bookingRepo, bookingCache, auditDispatcher)
	updateUC := ucBooking.NewUpdate(bookingRepo, bookingCache, auditDispatcher)
	deleteUC := ucBooking.NewDelete(bookingRepo, bookingCache, auditDispatcher)
	getUC := ucBooking.NewGet(bookingRepo, bookingCache)
	listUC := ucBooking.NewList(bookingRepo, bookingCache)
	transitionUC := ucBooking.NewTransitionStatus(bookingRepo, bookingCache, auditDispatcher)

	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, slotRepo)
	calendarUC := ucBooking.NewCalendar(bookingRepo, slotRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	bookingHandler := handlers.NewBookingHandler(
		createUC,
		updateUC,
		deleteUC,
		getUC,
		listUC,
		transitionUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC)
	calendarHandler := handlers.NewCalendarHandler(calendarUC)
	timeSlotHandler := handlers.NewTimeSlotHandler(slotRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
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
			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id", bookingHandler.Update)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			// ------------------------------
			// CALENDAR
			// ------------------------------
			secured.GET("/availability", availabilityHandler.Get)
			secured.GET("/calendar/month", calendarHandler.Month)
			secured.GET("/calendar/week", calendarHandler.Week)

			// ------------------------------
			// TIME SLOTS
			// ------------------------------
			secured.GET("/time-slots", timeSlotHandler.List)
			secured.PUT("/time-slots", timeSlotHandler.Replace)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
