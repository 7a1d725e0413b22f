package routers

import (
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.CreateAppointment)
}
