package routers

import (
	"fmt"
	"net/http"
	"time"
	"yuktah-service/internal/app/config"
	"yuktah-service/internal/app/delivery/http/middlewares"
	"yuktah-service/internal/app/services/auth"
	"yuktah-service/internal/app/services/emergencytokens"
	"yuktah-service/internal/app/services/facilities"
	"yuktah-service/internal/app/services/labreports"
	"yuktah-service/internal/app/services/medicalinfo"
	"yuktah-service/internal/app/services/medicines"
	"yuktah-service/internal/app/services/staff"
	"yuktah-service/internal/app/services/users"
	"yuktah-service/internal/pkg/constvars"
	"yuktah-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// DefaultRouteRules is the gate's static route table. The order here does not
// matter; precedence is decided by route class, then prefix length.
func DefaultRouteRules(internalConfig *config.InternalConfig) []middlewares.RouteRule {
	apiPrefix := fmt.Sprintf("/%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)
	gate := internalConfig.Gate

	return []middlewares.RouteRule{
		// Fully public surfaces.
		{Prefix: "/health", Class: middlewares.ClassPublic},
		{Prefix: "/qr", Class: middlewares.ClassPublic},
		{Prefix: apiPrefix + "/auth/signup", Class: middlewares.ClassPublic},
		{Prefix: apiPrefix + "/auth/login", Class: middlewares.ClassPublic},
		{Prefix: apiPrefix + "/auth/logout", Class: middlewares.ClassPublic},
		{Prefix: apiPrefix + "/emergency", Class: middlewares.ClassPublic},
		{Prefix: gate.PatientLoginPath, Class: middlewares.ClassPublic},
		{Prefix: gate.AdminLoginPath, Class: middlewares.ClassPublic},
		{Prefix: gate.FacilityLoginPath, Class: middlewares.ClassPublic},

		// Role-restricted API sections. Prescribing and dispensing carry a
		// capability requirement on top of the facility role; the longer
		// prefixes win over the plain facility rule.
		{Prefix: apiPrefix + "/admin", Class: middlewares.ClassRoleRestricted, Role: constvars.RoleAdmin, Shape: middlewares.ShapeAPI},
		{Prefix: apiPrefix + "/facility", Class: middlewares.ClassRoleRestricted, Role: constvars.RoleFacility, Shape: middlewares.ShapeAPI},
		{Prefix: apiPrefix + "/facility/prescriptions", Class: middlewares.ClassRoleRestricted, Role: constvars.RoleFacility, Capability: constvars.CapabilityPrescribe, Shape: middlewares.ShapeAPI},
		{Prefix: apiPrefix + "/facility/dispenses", Class: middlewares.ClassRoleRestricted, Role: constvars.RoleFacility, Capability: constvars.CapabilityDispense, Shape: middlewares.ShapeAPI},
		{Prefix: apiPrefix + "/emergency-token", Class: middlewares.ClassRoleRestricted, Role: constvars.RolePatient, Shape: middlewares.ShapeAPI},

		// Everything else under the API prefix needs some valid session.
		{Prefix: apiPrefix, Class: middlewares.ClassAuthenticated, Shape: middlewares.ShapeAPI},

		// Browser page sections get redirects instead of JSON errors.
		{Prefix: "/admin", Class: middlewares.ClassRoleRestricted, Role: constvars.RoleAdmin, Shape: middlewares.ShapePage},
		{Prefix: "/facility", Class: middlewares.ClassRoleRestricted, Role: constvars.RoleFacility, Shape: middlewares.ShapePage},
		{Prefix: "/dashboard", Class: middlewares.ClassAuthenticated, Shape: middlewares.ShapePage},
	}
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	facilityController *facilities.FacilityController,
	staffController *staff.StaffController,
	medicineController *medicines.MedicineController,
	medicalInfoController *medicalinfo.MedicalInfoController,
	labReportController *labreports.LabReportController,
	emergencyTokenController *emergencytokens.EmergencyTokenController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(mw.RequestIDMiddleware)
	router.Use(mw.Logging)
	router.Use(mw.ErrorHandler)
	router.Use(mw.AuthorizationGate)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "ok", nil)
	})

	// Deprecated alias kept for QR codes printed before the emergency
	// endpoint moved under the API prefix.
	router.Get("/qr/{token}", emergencyTokenController.ResolveToken)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, authController)
			})

			r.Route("/profile", func(r chi.Router) {
				attachUserRoutes(r, userController)
			})

			r.Route("/medicines", func(r chi.Router) {
				attachMedicineRoutes(r, medicineController)
			})

			r.Route("/medical-info", func(r chi.Router) {
				attachMedicalInfoRoutes(r, medicalInfoController)
			})

			r.Route("/lab-reports", func(r chi.Router) {
				attachLabReportRoutes(r, labReportController)
			})

			attachEmergencyRoutes(r, emergencyTokenController)

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, facilityController)
			})

			r.Route("/facility", func(r chi.Router) {
				attachFacilityRoutes(r, staffController, medicineController)
			})
		})
	})
}
