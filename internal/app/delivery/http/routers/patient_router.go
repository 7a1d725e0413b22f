package routers

import (
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/services/core/appointments"
	"panchkarma-service/internal/app/services/core/prescriptions"
	"panchkarma-service/internal/app/services/core/therapy"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	therapyController *therapy.TherapyController,
	prescriptionController *prescriptions.PrescriptionController,
	appointmentController *appointments.AppointmentController,
) {
	router.With(middlewares.Authenticate).Get("/therapy-requests", therapyController.GetPatientRequests)
	router.With(middlewares.Authenticate).Get("/appointments", appointmentController.GetPatientAppointments)
	router.With(middlewares.Authenticate).Get("/prescriptions", prescriptionController.GetPatientPrescriptions)
}
