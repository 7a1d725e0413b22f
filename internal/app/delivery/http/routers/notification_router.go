package routers

import (
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.With(middlewares.Authenticate).Post("/", notificationController.SendNotification)
	router.With(middlewares.Authenticate).Get("/{userId}", notificationController.GetUserNotifications)
	router.With(middlewares.Authenticate).Put("/{notificationId}/read", notificationController.MarkNotificationRead)
}
