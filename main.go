// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	doctorRepoPkg "medibook/database/repository/doctor"
	schedulerRepoPkg "medibook/database/repository/scheduler"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/models"
	"medibook/routes"
	"medibook/services/booking"
	"medibook/services/doctor"
	"medibook/services/notification"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	docRepo := doctorRepoPkg.NewMongoDoctorRepo()
	schedRepo := schedulerRepoPkg.NewMongoSchedulerRepo()
	if err := schedRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure scheduler indexes: %v", err)
	}

	// Task queue client for deferred appointment completion.
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	defer taskClient.Close()

	// services.
	notificationService := &notification.LogNotificationService{}

	bookingService := &booking.DefaultBookingService{
		DoctorRepo: docRepo,
		Scheduler:  schedRepo,
		Notifier:   notificationService,
		Cache:      utils.GetCacheClient(),
		Tasks:      taskClient,
		Horizon:    config.AppConfig.BookingHorizonDays,
		FallbackHours: models.WorkingHours{
			StartHour:    config.AppConfig.SlotStartHour,
			EndHour:      config.AppConfig.SlotEndHour,
			SlotDuration: config.AppConfig.SlotIntervalMin,
		},
	}

	doctorService := &doctor.DefaultDoctorService{
		Repo: docRepo,
	}

	doctorHandler := handlers.NewDoctorHandler(doctorService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetDoctorsHandler:     doctorHandler.GetDoctorsHandler,
		GetDoctorHandler:      doctorHandler.GetDoctorHandler,
		GetDoctorSlotsHandler: bookingHandler.GetDoctorSlotsHandler,

		ReserveAppointmentHandler: bookingHandler.ReserveAppointmentHandler,
		ListMyAppointmentsHandler: bookingHandler.ListMyAppointmentsHandler,
		CancelAppointmentHandler:  bookingHandler.CancelAppointmentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitCompletionWorker(bookingService)
	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetAuthCacheClient(), database.MongoClient)

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
