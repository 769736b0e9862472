package routers

import (
	"yuktah-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *auth.AuthController) {
	router.Post("/signup", authController.Signup)
	router.Post("/login", authController.Login)
	router.Post("/logout", authController.Logout)
	router.Get("/me", authController.Me)
}
