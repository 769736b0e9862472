package routers

import (
	"yuktah-service/internal/app/services/medicines"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, medicineController *medicines.MedicineController) {
	router.Post("/", medicineController.CreateMedicine)
	router.Get("/", medicineController.ListMedicines)
	router.Put("/{medicineID}", medicineController.UpdateMedicine)
	router.Delete("/{medicineID}", medicineController.DeleteMedicine)
}
