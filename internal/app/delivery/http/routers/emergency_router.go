package routers

import (
	"yuktah-service/internal/app/services/emergencytokens"

	"github.com/go-chi/chi/v5"
)

func attachEmergencyRoutes(router chi.Router, emergencyTokenController *emergencytokens.EmergencyTokenController) {
	// Token management is the patient's; resolution is anonymous.
	router.Post("/emergency-token", emergencyTokenController.IssueToken)
	router.Delete("/emergency-token", emergencyTokenController.RevokeToken)
	router.Get("/emergency/{token}", emergencyTokenController.ResolveToken)
}
