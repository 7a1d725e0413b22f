package routers

import (
	"net/http"
	"panchkarma-service/internal/app/config"
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/services/core/appointments"
	"panchkarma-service/internal/app/services/core/auth"
	"panchkarma-service/internal/app/services/core/feedbacks"
	"panchkarma-service/internal/app/services/core/notifications"
	"panchkarma-service/internal/app/services/core/prescriptions"
	"panchkarma-service/internal/app/services/core/therapy"
	"panchkarma-service/internal/app/services/core/users"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/responses"
	"panchkarma-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	accessLogger *logrus.Logger,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	therapyController *therapy.TherapyController,
	feedbackController *feedbacks.FeedbackController,
	prescriptionController *prescriptions.PrescriptionController,
	appointmentController *appointments.AppointmentController,
	notificationController *notifications.NotificationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	// Per-IP token bucket with temporary blocking, on top of httprate.
	router.Use(middlewares.RateLimiter.Limit)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLogger))

	router.Get("/health", healthHandler(internalConfig))

	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController, userController)
	})

	router.Route("/therapy", func(r chi.Router) {
		attachTherapyRoutes(r, middlewares, therapyController)
	})

	router.Route("/doctor/{doctorId}", func(r chi.Router) {
		attachDoctorRoutes(r, middlewares, therapyController, feedbackController, prescriptionController, appointmentController, userController)
	})

	router.Route("/patient/{patientId}", func(r chi.Router) {
		attachPatientRoutes(r, middlewares, therapyController, prescriptionController, appointmentController)
	})

	router.Route("/feedback", func(r chi.Router) {
		attachFeedbackRoutes(r, middlewares, feedbackController)
	})

	router.Route("/prescriptions", func(r chi.Router) {
		attachPrescriptionRoutes(r, middlewares, prescriptionController)
	})

	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, middlewares, appointmentController)
	})

	router.Route("/notifications", func(r chi.Router) {
		attachNotificationRoutes(r, middlewares, notificationController)
	})
}

func healthHandler(internalConfig *config.InternalConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, responses.Health{
			Status:  "ok",
			Version: internalConfig.App.Version,
		})
	}
}
