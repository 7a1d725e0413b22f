package routers

import (
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/services/core/feedbacks"

	"github.com/go-chi/chi/v5"
)

func attachFeedbackRoutes(router chi.Router, middlewares *middlewares.Middlewares, feedbackController *feedbacks.FeedbackController) {
	router.With(middlewares.Authenticate).Post("/", feedbackController.SubmitFeedback)
	router.With(middlewares.Authenticate).Get("/{userId}", feedbackController.GetUserFeedback)
	router.With(middlewares.Authenticate).Put("/{userId}/{feedbackId}", feedbackController.ReviewFeedback)
}
