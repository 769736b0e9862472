package routers

import (
	"yuktah-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *users.UserController) {
	router.Get("/", userController.GetProfile)
	router.Put("/", userController.UpdateProfile)
	router.Delete("/", userController.DeleteProfile)
}
