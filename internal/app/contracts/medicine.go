package contracts

import (
	"context"
	"yuktah-service/internal/app/models"
)

type MedicineRepository interface {
	CreateMedicine(ctx context.Context, medicine *models.Medicine) (medicineID string, err error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Medicine, error)
	FindByID(ctx context.Context, medicineID string) (*models.Medicine, error)
	UpdateMedicine(ctx context.Context, medicine *models.Medicine) error
	DeleteByID(ctx context.Context, medicineID string) error
}

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (prescriptionID string, err error)
	FindByFacilityID(ctx context.Context, facilityID string) ([]models.Prescription, error)
}

type DispenseRepository interface {
	CreateDispense(ctx context.Context, dispense *models.Dispense) (dispenseID string, err error)
	FindByFacilityID(ctx context.Context, facilityID string) ([]models.Dispense, error)
}
