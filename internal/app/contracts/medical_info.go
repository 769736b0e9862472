package contracts

import (
	"context"
	"yuktah-service/internal/app/models"
)

type MedicalInfoRepository interface {
	// UpsertByPatientID overwrites the patient's snapshot; there is no history.
	UpsertByPatientID(ctx context.Context, info *models.MedicalInfo) error
	FindByPatientID(ctx context.Context, patientID string) (*models.MedicalInfo, error)
}
