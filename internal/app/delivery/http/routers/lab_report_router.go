package routers

import (
	"yuktah-service/internal/app/services/labreports"

	"github.com/go-chi/chi/v5"
)

func attachLabReportRoutes(router chi.Router, labReportController *labreports.LabReportController) {
	router.Post("/", labReportController.UploadLabReport)
	router.Get("/", labReportController.ListLabReports)
	router.Delete("/{reportID}", labReportController.DeleteLabReport)
	router.Post("/{reportID}/summarize", labReportController.SummarizeLabReport)
}
