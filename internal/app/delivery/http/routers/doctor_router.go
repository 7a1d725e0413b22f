package routers

import (
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/services/core/appointments"
	"panchkarma-service/internal/app/services/core/feedbacks"
	"panchkarma-service/internal/app/services/core/prescriptions"
	"panchkarma-service/internal/app/services/core/therapy"
	"panchkarma-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	therapyController *therapy.TherapyController,
	feedbackController *feedbacks.FeedbackController,
	prescriptionController *prescriptions.PrescriptionController,
	appointmentController *appointments.AppointmentController,
	userController *users.UserController,
) {
	router.With(middlewares.Authenticate).Get("/therapy-requests", therapyController.GetDoctorRequests)
	router.With(middlewares.Authenticate).Get("/appointments", appointmentController.GetDoctorAppointments)
	router.With(middlewares.Authenticate).Get("/prescriptions", prescriptionController.GetDoctorPrescriptions)
	router.With(middlewares.Authenticate).Get("/patients", userController.GetDoctorPatients)
	router.With(middlewares.Authenticate).Get("/pending-feedback", feedbackController.GetPendingFeedback)
}
