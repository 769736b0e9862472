package contracts

import (
	"context"
	"yuktah-service/internal/app/models"
)

type LabReportRepository interface {
	CreateLabReport(ctx context.Context, report *models.LabReport) (reportID string, err error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.LabReport, error)
	FindByID(ctx context.Context, reportID string) (*models.LabReport, error)
	UpdateSummary(ctx context.Context, reportID, summary string) error
	DeleteByID(ctx context.Context, reportID string) error
}
