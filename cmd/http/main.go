package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"panchkarma-service/internal/app/config"
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/delivery/http/routers"
	"panchkarma-service/internal/app/drivers/database"
	"panchkarma-service/internal/app/drivers/logger"
	"panchkarma-service/internal/app/services/core/appointments"
	"panchkarma-service/internal/app/services/core/auth"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/app/services/core/feedbacks"
	"panchkarma-service/internal/app/services/core/notifications"
	"panchkarma-service/internal/app/services/core/prescriptions"
	"panchkarma-service/internal/app/services/core/therapy"
	"panchkarma-service/internal/app/services/core/users"
	"panchkarma-service/internal/app/services/shared/locker"
	"panchkarma-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, log)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, accessLogger *logrus.Logger) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Shared services
	entityStore := entities.NewEntityStore(redisRepository)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Notification
	notificationUsecase := notifications.NewNotificationUsecase(entityStore, bootstrap.Logger)
	notificationController := notifications.NewNotificationController(bootstrap.Logger, notificationUsecase)

	// Therapy
	therapyUsecase := therapy.NewTherapyUsecase(entityStore, notificationUsecase, lockService, bootstrap.Logger)
	therapyController := therapy.NewTherapyController(bootstrap.Logger, therapyUsecase)

	// Feedback
	feedbackUsecase := feedbacks.NewFeedbackUsecase(entityStore, notificationUsecase, bootstrap.Logger)
	feedbackController := feedbacks.NewFeedbackController(bootstrap.Logger, feedbackUsecase)

	// Prescription
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(entityStore, notificationUsecase, bootstrap.Logger)
	prescriptionController := prescriptions.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(entityStore, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// User
	userUsecase := users.NewUserUsecase(entityStore, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(entityStore, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.Logger,
		accessLogger,
		middlewares,
		authController,
		userController,
		therapyController,
		feedbackController,
		prescriptionController,
		appointmentController,
		notificationController,
	)
}
