package labreports

import (
	"context"
	"fmt"
	"io"
	"time"
	"yuktah-service/internal/app/contracts"
	"yuktah-service/internal/app/models"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
	"yuktah-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const downloadURLExpiry = 15 * time.Minute

type labReportUsecase struct {
	Log                 *zap.Logger
	LabReportRepository contracts.LabReportRepository
	ObjectStorage       contracts.ObjectStorage
	Summarizer          contracts.Summarizer
}

func NewLabReportUsecase(
	log *zap.Logger,
	labReportRepository contracts.LabReportRepository,
	objectStorage contracts.ObjectStorage,
	summarizer contracts.Summarizer,
) LabReportUsecase {
	return &labReportUsecase{
		Log:                 log,
		LabReportRepository: labReportRepository,
		ObjectStorage:       objectStorage,
		Summarizer:          summarizer,
	}
}

func (uc *labReportUsecase) Upload(ctx context.Context, patientID, title, contentType string, size int64, file io.Reader) (*responses.LabReport, error) {
	objectName := fmt.Sprintf("lab-reports/%s/%s", patientID, uuid.NewString())

	if err := uc.ObjectStorage.PutObject(ctx, objectName, file, size, contentType); err != nil {
		return nil, err
	}

	report := &models.LabReport{
		PatientID:   patientID,
		Title:       title,
		ObjectName:  objectName,
		ContentType: contentType,
		SizeInBytes: size,
	}
	report.SetCreatedAtUpdatedAt()

	reportID, err := uc.LabReportRepository.CreateLabReport(ctx, report)
	if err != nil {
		// Do not leave an orphan object behind a failed insert.
		if removeErr := uc.ObjectStorage.RemoveObject(ctx, objectName); removeErr != nil {
			uc.Log.Warn("failed to remove orphan lab report object", zap.Error(removeErr))
		}
		return nil, err
	}
	report.ID = reportID

	return uc.buildLabReportResponse(ctx, report), nil
}

func (uc *labReportUsecase) List(ctx context.Context, patientID string) ([]responses.LabReport, error) {
	reports, err := uc.LabReportRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.LabReport, 0, len(reports))
	for i := range reports {
		result = append(result, *uc.buildLabReportResponse(ctx, &reports[i]))
	}
	return result, nil
}

func (uc *labReportUsecase) Delete(ctx context.Context, patientID, reportID string) error {
	report, err := uc.fetchOwned(ctx, patientID, reportID)
	if err != nil {
		return err
	}
	if err := uc.LabReportRepository.DeleteByID(ctx, reportID); err != nil {
		return err
	}
	if err := uc.ObjectStorage.RemoveObject(ctx, report.ObjectName); err != nil {
		uc.Log.Warn("failed to remove lab report object", zap.Error(err))
	}
	return nil
}

func (uc *labReportUsecase) Summarize(ctx context.Context, patientID, reportID string, request *requests.SummarizeLabReport) (*responses.LabReportSummary, error) {
	if _, err := uc.fetchOwned(ctx, patientID, reportID); err != nil {
		return nil, err
	}

	summary, err := uc.Summarizer.Summarize(ctx, request.Text)
	if err != nil {
		return nil, err
	}

	if err := uc.LabReportRepository.UpdateSummary(ctx, reportID, summary); err != nil {
		return nil, err
	}

	return &responses.LabReportSummary{ID: reportID, Summary: summary}, nil
}

func (uc *labReportUsecase) fetchOwned(ctx context.Context, patientID, reportID string) (*models.LabReport, error) {
	report, err := uc.LabReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil || report.PatientID != patientID {
		return nil, exceptions.ErrDocumentNotFound(nil)
	}
	return report, nil
}

func (uc *labReportUsecase) buildLabReportResponse(ctx context.Context, report *models.LabReport) *responses.LabReport {
	response := &responses.LabReport{
		ID:          report.ID,
		Title:       report.Title,
		ContentType: report.ContentType,
		SizeInBytes: report.SizeInBytes,
		Summary:     report.Summary,
	}
	url, err := uc.ObjectStorage.PresignedGetURL(ctx, report.ObjectName, downloadURLExpiry)
	if err != nil {
		uc.Log.Warn("failed to presign lab report download url", zap.Error(err))
		return response
	}
	response.DownloadURL = url
	return response
}
