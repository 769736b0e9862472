package routers

import (
	"yuktah-service/internal/app/services/facilities"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, facilityController *facilities.FacilityController) {
	router.Route("/facilities", func(r chi.Router) {
		r.Post("/", facilityController.CreateFacility)
		r.Get("/", facilityController.ListFacilities)
		r.Get("/{facilityID}", facilityController.GetFacility)
		r.Put("/{facilityID}", facilityController.UpdateFacility)
		r.Post("/{facilityID}/enable", facilityController.EnableFacility)
		r.Post("/{facilityID}/disable", facilityController.DisableFacility)
	})
}
