package routers

import (
	"yuktah-service/internal/app/services/medicines"
	"yuktah-service/internal/app/services/staff"

	"github.com/go-chi/chi/v5"
)

func attachFacilityRoutes(router chi.Router, staffController *staff.StaffController, medicineController *medicines.MedicineController) {
	router.Route("/staff", func(r chi.Router) {
		r.Post("/", staffController.CreateStaff)
		r.Get("/", staffController.ListStaff)
		r.Put("/{staffID}", staffController.UpdateStaff)
		r.Delete("/{staffID}", staffController.DeleteStaff)
	})

	router.Route("/prescriptions", func(r chi.Router) {
		r.Post("/", medicineController.CreatePrescription)
		r.Get("/", medicineController.ListPrescriptions)
	})

	router.Route("/dispenses", func(r chi.Router) {
		r.Post("/", medicineController.CreateDispense)
		r.Get("/", medicineController.ListDispenses)
	})
}
