package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"superlife/config"
	"superlife/cron"
	"superlife/database"
	blockedRepoPkg "superlife/database/repository/blocked"
	bookingRepoPkg "superlife/database/repository/booking"
	clientRepoPkg "superlife/database/repository/client"
	ruleRepoPkg "superlife/database/repository/rule"
	tokenRepoPkg "superlife/database/repository/token"
	"superlife/handlers"
	"superlife/routes"
	"superlife/services/availability"
	"superlife/services/booking"
	"superlife/services/calendar"
	"superlife/services/notification"
	"superlife/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	ruleRepo := ruleRepoPkg.NewMongoRuleRepo()
	blockedRepo := blockedRepoPkg.NewMongoBlockedDateRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	tokenRepo := tokenRepoPkg.NewMongoTokenRepo()

	// services.
	calendarService := calendar.NewGoogleCalendarService(tokenRepo, calendar.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURI:  config.AppConfig.GoogleRedirectURI,
		CalendarID:   config.AppConfig.GoogleCalendarID,
		Timezone:     config.AppConfig.BookingTimezone,
	})

	availabilityService := &availability.DefaultAvailabilityService{
		Rules:    ruleRepo,
		Blocked:  blockedRepo,
		Bookings: bookingRepo,
		Calendar: calendarService,
		Cfg: availability.Config{
			Timezone:      config.AppConfig.BookingTimezone,
			TimezoneLabel: config.AppConfig.BookingTimezoneLabel,
			SlotStepMin:   config.AppConfig.SlotStepMinutes,
		},
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Clients:  clientRepo,
		Calendar: calendarService,
		Payments: booking.NewStripePaymentVerifier(logger),
		Queue:    queueClient,
		Cfg: booking.Config{
			Timezone: config.AppConfig.BookingTimezone,
			Currency: "gbp",
		},
	}

	notificationService, err := notification.NewSMTPNotificationService(notification.SMTPConfig{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUsername,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.EmailFrom,
		Admin:    config.AppConfig.AdminEmail,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// handlers.
	handlers.AvailabilityService = availabilityService
	handlers.BookingService = bookingService
	handlers.CalendarService = calendarService

	routes.RegisterRoutes(router)

	// Background workers and monitors.
	cron.InitEmailWorker(notificationService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
