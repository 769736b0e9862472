package routers

import (
	"yuktah-service/internal/app/services/medicalinfo"

	"github.com/go-chi/chi/v5"
)

func attachMedicalInfoRoutes(router chi.Router, medicalInfoController *medicalinfo.MedicalInfoController) {
	router.Get("/", medicalInfoController.GetMedicalInfo)
	router.Put("/", medicalInfoController.UpsertMedicalInfo)
}
