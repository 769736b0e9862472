package medicines

import (
	"context"
	"yuktah-service/internal/pkg/dto/requests"
	"yuktah-service/internal/pkg/dto/responses"
)

// MedicineUsecase covers the patient's own medication list plus the facility
// side: prescriptions and dispenses. The capability checks live in the
// controllers because they are request-authorization concerns, not domain
// rules.
type MedicineUsecase interface {
	CreateMedicine(ctx context.Context, patientID string, request *requests.CreateMedicine) (*responses.Medicine, error)
	ListMedicines(ctx context.Context, patientID string) ([]responses.Medicine, error)
	UpdateMedicine(ctx context.Context, patientID, medicineID string, request *requests.UpdateMedicine) (*responses.Medicine, error)
	DeleteMedicine(ctx context.Context, patientID, medicineID string) error

	CreatePrescription(ctx context.Context, facilityID string, request *requests.CreatePrescription) (*responses.Prescription, error)
	ListPrescriptions(ctx context.Context, facilityID string) ([]responses.Prescription, error)
	CreateDispense(ctx context.Context, facilityID string, request *requests.CreateDispense) (*responses.Dispense, error)
	ListDispenses(ctx context.Context, facilityID string) ([]responses.Dispense, error)
}
