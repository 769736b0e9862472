package medicalinfo

import (
	"context"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
)

type MedicalInfoUsecase interface {
	// Upsert replaces the patient's whole snapshot in one write.
	Upsert(ctx context.Context, patientID string, request *requests.UpsertMedicalInfo) (*responses.MedicalInfo, error)
	// Get returns the snapshot, or an empty one when nothing was saved yet.
	Get(ctx context.Context, patientID string) (*responses.MedicalInfo, error)
}
