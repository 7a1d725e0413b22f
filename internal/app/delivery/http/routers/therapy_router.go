package routers

import (
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/services/core/therapy"

	"github.com/go-chi/chi/v5"
)

func attachTherapyRoutes(router chi.Router, middlewares *middlewares.Middlewares, therapyController *therapy.TherapyController) {
	router.With(middlewares.Authenticate).Post("/request", therapyController.SubmitRequest)
	router.With(middlewares.Authenticate).Post("/accept", therapyController.AcceptRequest)
	router.With(middlewares.Authenticate).Post("/reject", therapyController.RejectRequest)
	router.With(middlewares.Authenticate).Get("/pending", therapyController.GetPendingRequests)
}
