package labreports

import (
	"context"
	"io"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
)

type LabReportUsecase interface {
	Upload(ctx context.Context, patientID, title, contentType string, size int64, file io.Reader) (*responses.LabReport, error)
	// List returns the patient's reports with short-lived download links.
	List(ctx context.Context, patientID string) ([]responses.LabReport, error)
	Delete(ctx context.Context, patientID, reportID string) error
	// Summarize sends the extracted report text to the summarizer model and
	// stores the result on the report.
	Summarize(ctx context.Context, patientID, reportID string, request *requests.SummarizeLabReport) (*responses.LabReportSummary, error)
}
