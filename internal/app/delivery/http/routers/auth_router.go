package routers

import (
	"panchkarma-service/internal/app/delivery/http/middlewares"
	"panchkarma-service/internal/app/services/core/auth"
	"panchkarma-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController, userController *users.UserController) {
	router.Post("/signup", authController.SignUp)
	router.Post("/signin", authController.SignIn)
	router.With(middlewares.Authenticate).Get("/user/{userId}", userController.GetProfile)
}
